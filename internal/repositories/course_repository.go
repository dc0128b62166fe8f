package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/studyforge/backend/internal/models"
)

const courseColumns = `id, course_id, course_type, topic, difficulty_level, course_layout,
		created_by, status, is_public, public_slug, upvotes, created_at`

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course (study material) repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{db: db}
}

func scanCourse(s rowScanner) (*models.Course, error) {
	course := &models.Course{}
	var layout []byte
	var slug sql.NullString
	if err := s.Scan(
		&course.ID,
		&course.CourseID,
		&course.CourseType,
		&course.Topic,
		&course.DifficultyLevel,
		&layout,
		&course.CreatedBy,
		&course.Status,
		&course.IsPublic,
		&slug,
		&course.Upvotes,
		&course.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(layout) > 0 {
		course.CourseLayout = &models.CourseLayout{}
		if err := json.Unmarshal(layout, course.CourseLayout); err != nil {
			return nil, fmt.Errorf("failed to decode course layout: %w", err)
		}
	}
	if slug.Valid {
		course.PublicSlug = &slug.String
	}
	return course, nil
}

func (r *courseRepository) getOne(ctx context.Context, where string, arg any) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM study_materials WHERE ` + where + ` LIMIT 1`

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("course: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

func (r *courseRepository) list(ctx context.Context, query string, args ...any) ([]models.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return courses, nil
}

// Create inserts a new course
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	layout, err := json.Marshal(course.CourseLayout)
	if err != nil {
		return fmt.Errorf("failed to encode course layout: %w", err)
	}

	query := `
		INSERT INTO study_materials (course_id, course_type, topic, difficulty_level, course_layout, created_by, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		course.CourseID,
		course.CourseType,
		course.Topic,
		course.DifficultyLevel,
		layout,
		course.CreatedBy,
		course.Status,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("course %s: %w", course.CourseID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	course.ID = int(id)
	return nil
}

// GetByCourseID retrieves a course by its client generated id
func (r *courseRepository) GetByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	return r.getOne(ctx, "course_id = ?", courseID)
}

// GetByID retrieves a course by its numeric id
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetPublicBySlug retrieves a published course by its slug
func (r *courseRepository) GetPublicBySlug(ctx context.Context, slug string) (*models.Course, error) {
	return r.getOne(ctx, "public_slug = ? AND is_public = TRUE", slug)
}

// ListByCreator returns a page of a creator's courses, newest first
func (r *courseRepository) ListByCreator(ctx context.Context, createdBy string, limit, offset int) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + `
		FROM study_materials
		WHERE created_by = ?
		ORDER BY id DESC
		LIMIT ? OFFSET ?`
	return r.list(ctx, query, createdBy, limit, offset)
}

// CountByCreator counts a creator's courses
func (r *courseRepository) CountByCreator(ctx context.Context, createdBy string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_materials WHERE created_by = ?`, createdBy).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// publicFilter builds the WHERE clause shared by marketplace list and count
func publicFilter(search string) (string, []any) {
	where := "WHERE is_public = TRUE"
	var args []any
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		where += " AND (topic LIKE ? OR created_by LIKE ? OR course_type LIKE ? OR difficulty_level LIKE ?)"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	return where, args
}

func marketplaceOrder(sortBy models.MarketplaceSort) string {
	switch sortBy {
	case models.SortOldest:
		return "created_at ASC, id ASC"
	case models.SortPopular:
		return "upvotes DESC, id DESC"
	case models.SortTitle:
		return "topic ASC, id ASC"
	default:
		return "created_at DESC, id DESC"
	}
}

// ListPublic returns a page of published courses
func (r *courseRepository) ListPublic(ctx context.Context, search string, sortBy models.MarketplaceSort, limit, offset int) ([]models.Course, error) {
	where, args := publicFilter(search)
	query := fmt.Sprintf(`SELECT %s
		FROM study_materials
		%s
		ORDER BY %s
		LIMIT ? OFFSET ?`, courseColumns, where, marketplaceOrder(sortBy))
	args = append(args, limit, offset)
	return r.list(ctx, query, args...)
}

// CountPublic counts published courses matching search
func (r *courseRepository) CountPublic(ctx context.Context, search string) (int, error) {
	where, args := publicFilter(search)
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_materials `+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count public courses: %w", err)
	}
	return count, nil
}

// TransitionStatus moves a course from one status to another.
// Returns false when the course was not in the from status.
func (r *courseRepository) TransitionStatus(ctx context.Context, courseID string, from, to models.GenerationStatus) (bool, error) {
	query := `UPDATE study_materials SET status = ? WHERE course_id = ? AND status = ?`

	result, err := r.db.ExecContext(ctx, query, to, courseID, from)
	if err != nil {
		return false, fmt.Errorf("failed to update course status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// Publish makes the course public under slug, but only while it is private,
// every required type has a Ready record and none has a Generating one.
// Returns false when a condition failed at write time. A slug collision returns ErrDuplicate.
func (r *courseRepository) Publish(ctx context.Context, id int, slug string) (bool, error) {
	required := models.RequiredPublishTypes
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(required)), ", ")
	query := fmt.Sprintf(`
		UPDATE study_materials
		SET is_public = TRUE, public_slug = ?
		WHERE id = ? AND is_public = FALSE
		AND (
			SELECT COUNT(DISTINCT stc.type)
			FROM study_type_contents stc
			WHERE stc.course_id = study_materials.course_id
			AND stc.status = ?
			AND stc.type IN (%s)
		) = ?
		AND NOT EXISTS (
			SELECT 1
			FROM study_type_contents stc
			WHERE stc.course_id = study_materials.course_id
			AND stc.status = ?
			AND stc.type IN (%s)
		)
	`, placeholders, placeholders)

	args := []any{slug, id, models.StatusReady}
	for _, t := range required {
		args = append(args, t)
	}
	args = append(args, len(required), models.StatusGenerating)
	for _, t := range required {
		args = append(args, t)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicateKey(err) {
			return false, fmt.Errorf("slug %s: %w", slug, ErrDuplicate)
		}
		return false, fmt.Errorf("failed to publish course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// Unpublish hides the course, clears its slug and removes every upvote and
// favorite pointing at it, in one transaction.
func (r *courseRepository) Unpublish(ctx context.Context, course *models.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE study_materials SET is_public = FALSE, public_slug = NULL, upvotes = 0 WHERE id = ?`,
		course.ID,
	); err != nil {
		return fmt.Errorf("failed to unpublish course: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_upvotes WHERE study_material_id = ?`, course.ID); err != nil {
		return fmt.Errorf("failed to delete upvotes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE course_id = ?`, course.CourseID); err != nil {
		return fmt.Errorf("failed to delete favorites: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteCascade removes the course and everything that references it.
// Dependents go first and the whole delete is one transaction, so a failure
// leaves the course intact.
func (r *courseRepository) DeleteCascade(ctx context.Context, course *models.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	steps := []struct {
		what  string
		query string
		arg   any
	}{
		{"chapter notes", `DELETE FROM chapter_notes WHERE course_id = ?`, course.CourseID},
		{"study type content", `DELETE FROM study_type_contents WHERE course_id = ?`, course.CourseID},
		{"upvotes", `DELETE FROM user_upvotes WHERE study_material_id = ?`, course.ID},
		{"favorites", `DELETE FROM favorites WHERE course_id = ?`, course.CourseID},
		{"youtube recommendations", `DELETE FROM youtube_recommendations WHERE course_id = ?`, course.CourseID},
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step.query, step.arg); err != nil {
			return fmt.Errorf("failed to delete %s: %w", step.what, err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM study_materials WHERE id = ?`, course.ID)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if err := requireRow(result, "course "+course.CourseID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ReconcileUpvotes recomputes every public course's counter from its
// upvote rows and returns how many counters changed.
func (r *courseRepository) ReconcileUpvotes(ctx context.Context) (int64, error) {
	query := `
		UPDATE study_materials sm
		LEFT JOIN (
			SELECT study_material_id, COUNT(*) AS total
			FROM user_upvotes
			GROUP BY study_material_id
		) uv ON uv.study_material_id = sm.id
		SET sm.upvotes = COALESCE(uv.total, 0)
		WHERE sm.is_public = TRUE AND sm.upvotes <> COALESCE(uv.total, 0)
	`

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile upvotes: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}
