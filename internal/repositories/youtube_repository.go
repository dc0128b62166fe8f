package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/studyforge/backend/internal/models"
)

type youtubeRepository struct {
	db *sql.DB
}

// NewYouTubeRepository creates a new YouTube recommendation repository
func NewYouTubeRepository(db *sql.DB) *youtubeRepository {
	return &youtubeRepository{db: db}
}

// ListByCourse returns cached recommendations ordered by score
func (r *youtubeRepository) ListByCourse(ctx context.Context, courseID string) ([]models.YouTubeRecommendation, error) {
	query := `
		SELECT id, course_id, video_id, title, description, channel_title, thumbnail_url, published_at, similarity_score
		FROM youtube_recommendations
		WHERE course_id = ?
		ORDER BY similarity_score DESC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	recs := make([]models.YouTubeRecommendation, 0)
	for rows.Next() {
		var rec models.YouTubeRecommendation
		var publishedAt sql.NullTime
		if err := rows.Scan(
			&rec.ID,
			&rec.CourseID,
			&rec.VideoID,
			&rec.Title,
			&rec.Description,
			&rec.ChannelTitle,
			&rec.ThumbnailURL,
			&publishedAt,
			&rec.SimilarityScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		if publishedAt.Valid {
			rec.PublishedAt = publishedAt.Time
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return recs, nil
}

// CreateBatch stores recommendations. Rows already cached for the same
// course and video are left untouched.
func (r *youtubeRepository) CreateBatch(ctx context.Context, recs []models.YouTubeRecommendation) error {
	if len(recs) == 0 {
		return nil
	}

	placeholders := make([]string, len(recs))
	args := make([]any, 0, len(recs)*8)
	for i, rec := range recs {
		placeholders[i] = "(?, ?, ?, ?, ?, ?, ?, ?)"
		var publishedAt sql.NullTime
		if !rec.PublishedAt.IsZero() {
			publishedAt = sql.NullTime{Time: rec.PublishedAt, Valid: true}
		}
		args = append(args,
			rec.CourseID,
			rec.VideoID,
			rec.Title,
			rec.Description,
			rec.ChannelTitle,
			rec.ThumbnailURL,
			publishedAt,
			rec.SimilarityScore,
		)
	}

	query := fmt.Sprintf(`
		INSERT IGNORE INTO youtube_recommendations
			(course_id, video_id, title, description, channel_title, thumbnail_url, published_at, similarity_score)
		VALUES %s
	`, strings.Join(placeholders, ","))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to store recommendations: %w", err)
	}
	return nil
}
