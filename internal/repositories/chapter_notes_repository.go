package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyforge/backend/internal/models"
)

type chapterNotesRepository struct {
	db *sql.DB
}

// NewChapterNotesRepository creates a new chapter notes repository
func NewChapterNotesRepository(db *sql.DB) *chapterNotesRepository {
	return &chapterNotesRepository{db: db}
}

// Upsert stores notes for a chapter, replacing notes from an earlier run
func (r *chapterNotesRepository) Upsert(ctx context.Context, notes *models.ChapterNotes) error {
	query := `
		INSERT INTO chapter_notes (course_id, chapter_id, notes)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			notes = VALUES(notes)
	`

	if _, err := r.db.ExecContext(ctx, query, notes.CourseID, notes.ChapterID, notes.Notes); err != nil {
		return fmt.Errorf("failed to upsert chapter notes: %w", err)
	}
	return nil
}

// GetByCourseAndChapter retrieves notes for one chapter
func (r *chapterNotesRepository) GetByCourseAndChapter(ctx context.Context, courseID string, chapterID int) (*models.ChapterNotes, error) {
	query := `
		SELECT id, course_id, chapter_id, notes
		FROM chapter_notes
		WHERE course_id = ? AND chapter_id = ?
		LIMIT 1
	`

	notes := &models.ChapterNotes{}
	err := r.db.QueryRowContext(ctx, query, courseID, chapterID).Scan(&notes.ID, &notes.CourseID, &notes.ChapterID, &notes.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chapter notes: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chapter notes: %w", err)
	}
	return notes, nil
}

// ListByCourse returns all notes of a course ordered by chapter
func (r *chapterNotesRepository) ListByCourse(ctx context.Context, courseID string) ([]models.ChapterNotes, error) {
	query := `
		SELECT id, course_id, chapter_id, notes
		FROM chapter_notes
		WHERE course_id = ?
		ORDER BY chapter_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapter notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.ChapterNotes, 0)
	for rows.Next() {
		var n models.ChapterNotes
		if err := rows.Scan(&n.ID, &n.CourseID, &n.ChapterID, &n.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan chapter notes: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return notes, nil
}
