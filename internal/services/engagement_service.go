package services

import (
	"context"
	"fmt"

	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// UpvoteRepository is the interface that wraps upvote persistence
type UpvoteRepository interface {
	// Toggle flips the user's upvote and returns the new state with the
	// recounted total. repositories.ErrNotFound is returned for an unknown material.
	Toggle(ctx context.Context, userID string, materialID int) (bool, int, error)
	Exists(ctx context.Context, userID string, materialID int) (bool, error)
}

// FavoriteRepository is the interface that wraps favorite persistence
type FavoriteRepository interface {
	// Toggle flips the user's favorite and returns the new state
	Toggle(ctx context.Context, userID, courseID string) (bool, error)
	Exists(ctx context.Context, userID, courseID string) (bool, error)
	ListCourseIDs(ctx context.Context, userID string) ([]string, error)
}

type engagementService struct {
	courses   CourseRepository
	upvotes   UpvoteRepository
	favorites FavoriteRepository
	logger    *zap.Logger
}

// NewEngagementService creates a new upvote and favorite service
func NewEngagementService(courses CourseRepository, upvotes UpvoteRepository, favorites FavoriteRepository, logger *zap.Logger) *engagementService {
	return &engagementService{
		courses:   courses,
		upvotes:   upvotes,
		favorites: favorites,
		logger:    logger,
	}
}

// ToggleUpvote flips the user's upvote on a study material
func (s *engagementService) ToggleUpvote(ctx context.Context, req *models.UpvoteRequest) (*models.UpvoteResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	upvoted, count, err := s.upvotes.Toggle(ctx, req.UserID, req.StudyMaterialID)
	if err != nil {
		return nil, notFound(err, "study material")
	}

	message := "Upvote removed"
	if upvoted {
		message = "Upvoted"
	}
	return &models.UpvoteResponse{
		Success:   true,
		Upvotes:   count,
		IsUpvoted: upvoted,
		Message:   message,
	}, nil
}

// UpvoteStatus reports whether the user upvoted the material
func (s *engagementService) UpvoteStatus(ctx context.Context, userID string, materialID int) (*models.UpvoteStatusResponse, error) {
	if userID == "" || materialID <= 0 {
		return nil, validationError("userId and studyMaterialId are required")
	}
	upvoted, err := s.upvotes.Exists(ctx, userID, materialID)
	if err != nil {
		return nil, fmt.Errorf("failed to read upvote: %w", err)
	}
	return &models.UpvoteStatusResponse{IsUpvoted: upvoted}, nil
}

// ToggleFavorite flips the user's favorite on a course
func (s *engagementService) ToggleFavorite(ctx context.Context, req *models.FavoriteRequest) (*models.FavoriteResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByCourseID(ctx, req.CourseID); err != nil {
		return nil, notFound(err, "course")
	}

	favorited, err := s.favorites.Toggle(ctx, req.UserID, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	message := "Removed from favorites"
	if favorited {
		message = "Added to favorites"
	}
	return &models.FavoriteResponse{
		Success:   true,
		Favorited: favorited,
		Message:   message,
	}, nil
}

// FavoriteStatus reports whether the user favorited the course
func (s *engagementService) FavoriteStatus(ctx context.Context, userID, courseID string) (*models.FavoriteStatusResponse, error) {
	if userID == "" || courseID == "" {
		return nil, validationError("userId and courseId are required")
	}
	favorited, err := s.favorites.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to read favorite: %w", err)
	}
	return &models.FavoriteStatusResponse{Favorited: favorited}, nil
}

// ListFavorites returns the ids of the courses the user favorited
func (s *engagementService) ListFavorites(ctx context.Context, userID string) (*models.FavoritesListResponse, error) {
	if userID == "" {
		return nil, validationError("userId is required")
	}
	ids, err := s.favorites.ListCourseIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return &models.FavoritesListResponse{Favorites: ids}, nil
}
