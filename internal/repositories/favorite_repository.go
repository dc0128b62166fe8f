package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type favoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *sql.DB) *favoriteRepository {
	return &favoriteRepository{db: db}
}

// Toggle flips the favorite of userID on courseID and returns the new state
func (r *favoriteRepository) Toggle(ctx context.Context, userID, courseID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM favorites WHERE user_id = ? AND course_id = ? FOR UPDATE`,
		userID, courseID,
	).Scan(&id)

	favorited := false
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx, `INSERT INTO favorites (user_id, course_id) VALUES (?, ?)`, userID, courseID); err != nil {
			if !isDuplicateKey(err) {
				return false, fmt.Errorf("failed to add favorite: %w", err)
			}
		}
		favorited = true
	case err != nil:
		return false, fmt.Errorf("failed to check favorite: %w", err)
	default:
		if _, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id); err != nil {
			return false, fmt.Errorf("failed to remove favorite: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return favorited, nil
}

// Exists reports whether userID favorited courseID
func (r *favoriteRepository) Exists(ctx context.Context, userID, courseID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = ? AND course_id = ?)`,
		userID, courseID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// ListCourseIDs returns the course ids favorited by userID, newest first
func (r *favoriteRepository) ListCourseIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_id FROM favorites WHERE user_id = ? ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return ids, nil
}
