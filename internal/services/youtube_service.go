package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	videoSearchResults  = 10
	recommendationCount = 5
	embedConcurrency    = 4
	recommendLockTTL    = 2 * time.Minute
)

// VideoSearcher finds videos for a query
type VideoSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.YouTubeVideo, error)
}

// Embedder turns text into an embedding vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// RecommendationRepository is the interface that wraps the recommendation cache
type RecommendationRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.YouTubeRecommendation, error)
	// CreateBatch inserts recommendations, ignoring ones already cached
	CreateBatch(ctx context.Context, recs []models.YouTubeRecommendation) error
}

type youtubeService struct {
	courses  CourseRepository
	repo     RecommendationRepository
	searcher VideoSearcher
	embedder Embedder
	locker   Locker
	logger   *zap.Logger
}

// NewYouTubeService creates a new video recommendation service
func NewYouTubeService(
	courses CourseRepository,
	repo RecommendationRepository,
	searcher VideoSearcher,
	embedder Embedder,
	locker Locker,
	logger *zap.Logger,
) *youtubeService {
	return &youtubeService{
		courses:  courses,
		repo:     repo,
		searcher: searcher,
		embedder: embedder,
		locker:   locker,
		logger:   logger,
	}
}

// Get returns the cached recommendations of a course
func (s *youtubeService) Get(ctx context.Context, courseID string) (*models.RecommendationsResponse, error) {
	if courseID == "" {
		return nil, validationError("courseId is required")
	}
	recs, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	if recs == nil {
		recs = []models.YouTubeRecommendation{}
	}
	return &models.RecommendationsResponse{Recommendations: recs}, nil
}

// Generate ranks videos for the course topic by embedding similarity and
// caches the best ones. Once cached, recommendations never change.
func (s *youtubeService) Generate(ctx context.Context, req *models.RecommendationRequest) (*models.RecommendationsResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByCourseID(ctx, req.CourseID); err != nil {
		return nil, notFound(err, "course")
	}

	cached, err := s.Get(ctx, req.CourseID)
	if err != nil || len(cached.Recommendations) > 0 {
		return cached, err
	}

	var resp *models.RecommendationsResponse
	err = withLock(ctx, s.locker, s.logger, "youtube:"+req.CourseID, recommendLockTTL, func() error {
		// Another request may have filled the cache while we waited
		cached, err := s.Get(ctx, req.CourseID)
		if err != nil || len(cached.Recommendations) > 0 {
			resp = cached
			return err
		}
		recs, err := s.rank(ctx, req)
		if err != nil {
			return err
		}
		if len(recs) > 0 {
			if err := s.repo.CreateBatch(ctx, recs); err != nil {
				return fmt.Errorf("failed to store recommendations: %w", err)
			}
		}
		resp, err = s.Get(ctx, req.CourseID)
		return err
	})
	return resp, err
}

func (s *youtubeService) rank(ctx context.Context, req *models.RecommendationRequest) ([]models.YouTubeRecommendation, error) {
	videos, err := s.searcher.Search(ctx, req.Topic, videoSearchResults)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	if len(videos) == 0 {
		return nil, nil
	}

	topicVec, err := s.embedder.Embed(ctx, req.Topic)
	if err != nil {
		return nil, fmt.Errorf("failed to embed topic: %w", err)
	}

	scores := make([]float64, len(videos))
	embedded := make([]bool, len(videos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)
	for i, video := range videos {
		g.Go(func() error {
			vec, err := s.embedder.Embed(gctx, strings.TrimSpace(video.Title+" "+video.Description))
			if err != nil {
				// A video we cannot embed is simply not ranked
				s.logger.Warn("failed to embed video", zap.String("video_id", video.VideoID), zap.Error(err))
				return nil
			}
			scores[i] = cosineSimilarity(topicVec, vec)
			embedded[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recs := make([]models.YouTubeRecommendation, 0, len(videos))
	for i, video := range videos {
		if !embedded[i] {
			continue
		}
		recs = append(recs, models.YouTubeRecommendation{
			CourseID:        req.CourseID,
			VideoID:         video.VideoID,
			Title:           video.Title,
			Description:     video.Description,
			ChannelTitle:    video.ChannelTitle,
			ThumbnailURL:    video.ThumbnailURL,
			PublishedAt:     video.PublishedAt,
			SimilarityScore: int(math.Round(scores[i] * 100)),
		})
	}
	sort.SliceStable(recs, func(a, b int) bool {
		return recs[a].SimilarityScore > recs[b].SimilarityScore
	})
	if len(recs) > recommendationCount {
		recs = recs[:recommendationCount]
	}
	return recs, nil
}

// cosineSimilarity returns 0 for vectors of different length or zero norm
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
