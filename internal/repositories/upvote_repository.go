package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type upvoteRepository struct {
	db *sql.DB
}

// NewUpvoteRepository creates a new upvote repository
func NewUpvoteRepository(db *sql.DB) *upvoteRepository {
	return &upvoteRepository{db: db}
}

// Toggle flips the upvote of userID on a study material and returns the new
// state and counter.
//
// The material row is locked for the whole toggle, so concurrent toggles on
// the same material run one after another. The counter is recomputed from
// the upvote rows instead of being incremented.
func (r *upvoteRepository) Toggle(ctx context.Context, userID string, materialID int) (bool, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID int
	err = tx.QueryRowContext(ctx, `SELECT id FROM study_materials WHERE id = ? FOR UPDATE`, materialID).Scan(&lockedID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, 0, fmt.Errorf("study material %d: %w", materialID, ErrNotFound)
	}
	if err != nil {
		return false, 0, fmt.Errorf("failed to lock study material: %w", err)
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_upvotes WHERE user_id = ? AND study_material_id = ?)`,
		userID, materialID,
	).Scan(&exists)
	if err != nil {
		return false, 0, fmt.Errorf("failed to check upvote: %w", err)
	}

	if exists {
		_, err = tx.ExecContext(ctx, `DELETE FROM user_upvotes WHERE user_id = ? AND study_material_id = ?`, userID, materialID)
	} else {
		_, err = tx.ExecContext(ctx, `INSERT INTO user_upvotes (user_id, study_material_id) VALUES (?, ?)`, userID, materialID)
	}
	if err != nil {
		return false, 0, fmt.Errorf("failed to toggle upvote: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE study_materials
		SET upvotes = (SELECT COUNT(*) FROM user_upvotes WHERE study_material_id = ?)
		WHERE id = ?
	`, materialID, materialID); err != nil {
		return false, 0, fmt.Errorf("failed to update upvote counter: %w", err)
	}

	var upvotes int
	if err := tx.QueryRowContext(ctx, `SELECT upvotes FROM study_materials WHERE id = ?`, materialID).Scan(&upvotes); err != nil {
		return false, 0, fmt.Errorf("failed to read upvote counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return !exists, upvotes, nil
}

// Exists reports whether userID upvoted the study material
func (r *upvoteRepository) Exists(ctx context.Context, userID string, materialID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_upvotes WHERE user_id = ? AND study_material_id = ?)`,
		userID, materialID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check upvote: %w", err)
	}
	return exists, nil
}
