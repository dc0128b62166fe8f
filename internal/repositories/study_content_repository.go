package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/studyforge/backend/internal/models"
)

type studyContentRepository struct {
	db *sql.DB
}

// NewStudyContentRepository creates a new study type content repository
func NewStudyContentRepository(db *sql.DB) *studyContentRepository {
	return &studyContentRepository{db: db}
}

func scanStudyContent(s rowScanner) (*models.StudyTypeContent, error) {
	c := &models.StudyTypeContent{}
	var content []byte
	if err := s.Scan(&c.ID, &c.CourseID, &c.Type, &content, &c.Status); err != nil {
		return nil, err
	}
	if len(content) > 0 {
		c.Content = json.RawMessage(content)
	}
	return c, nil
}

// Create inserts a content row in the Generating state
func (r *studyContentRepository) Create(ctx context.Context, content *models.StudyTypeContent) error {
	query := `
		INSERT INTO study_type_contents (course_id, type, status)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, content.CourseID, content.Type, content.Status)
	if err != nil {
		return fmt.Errorf("failed to create study type content: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	content.ID = int(id)
	return nil
}

// GetByID retrieves a content row by id
func (r *studyContentRepository) GetByID(ctx context.Context, id int) (*models.StudyTypeContent, error) {
	query := `
		SELECT id, course_id, type, content, status
		FROM study_type_contents
		WHERE id = ?
		LIMIT 1
	`

	c, err := scanStudyContent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("study type content %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get study type content: %w", err)
	}
	return c, nil
}

// GetLatest retrieves the most recent row of a type for a course
func (r *studyContentRepository) GetLatest(ctx context.Context, courseID string, studyType models.StudyType) (*models.StudyTypeContent, error) {
	query := `
		SELECT id, course_id, type, content, status
		FROM study_type_contents
		WHERE course_id = ? AND type = ?
		ORDER BY id DESC
		LIMIT 1
	`

	c, err := scanStudyContent(r.db.QueryRowContext(ctx, query, courseID, studyType))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("study type content %s: %w", studyType, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get study type content: %w", err)
	}
	return c, nil
}

// ListStatuses returns the type and status of every content row of a course
func (r *studyContentRepository) ListStatuses(ctx context.Context, courseID string) ([]models.StudyTypeContent, error) {
	query := `
		SELECT id, course_id, type, status
		FROM study_type_contents
		WHERE course_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query study type content: %w", err)
	}
	defer rows.Close()

	contents := make([]models.StudyTypeContent, 0)
	for rows.Next() {
		var c models.StudyTypeContent
		if err := rows.Scan(&c.ID, &c.CourseID, &c.Type, &c.Status); err != nil {
			return nil, fmt.Errorf("failed to scan study type content: %w", err)
		}
		contents = append(contents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return contents, nil
}

// MarkReady stores generated content and flips the row to Ready.
// Returns false when the row is no longer Generating.
func (r *studyContentRepository) MarkReady(ctx context.Context, id int, content json.RawMessage) (bool, error) {
	query := `
		UPDATE study_type_contents
		SET content = ?, status = ?
		WHERE id = ? AND status = ?
	`
	return r.transition(ctx, query, []byte(content), models.StatusReady, id, models.StatusGenerating)
}

// MarkError flips a Generating row to Error
func (r *studyContentRepository) MarkError(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE study_type_contents
		SET status = ?
		WHERE id = ? AND status = ?
	`
	return r.transition(ctx, query, models.StatusError, id, models.StatusGenerating)
}

func (r *studyContentRepository) transition(ctx context.Context, query string, args ...any) (bool, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update study type content: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}
