package services

import (
	"context"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/repositories"
	"go.uber.org/zap"
)

const (
	defaultMarketplacePageSize = 12
	slugAlphabet               = "0123456789abcdefghijklmnopqrstuvwxyz"
	slugLength                 = 12
	publishAttempts            = 3
)

// MarketplaceRepository is the interface that wraps public catalogue persistence
type MarketplaceRepository interface {
	// GetByID retrieves a course by its numeric study material id
	GetByID(ctx context.Context, id int) (*models.Course, error)
	// GetPublicBySlug retrieves a public course by its slug
	GetPublicBySlug(ctx context.Context, slug string) (*models.Course, error)
	// ListPublic retrieves a page of public courses matching search
	ListPublic(ctx context.Context, search string, sortBy models.MarketplaceSort, limit, offset int) ([]models.Course, error)
	// CountPublic counts public courses matching search
	CountPublic(ctx context.Context, search string) (int, error)
	// Publish makes the course public under slug if it is private and all
	// required content is Ready. It reports whether the course was published.
	Publish(ctx context.Context, id int, slug string) (bool, error)
	// Unpublish makes the course private and clears its upvotes and favorites
	Unpublish(ctx context.Context, course *models.Course) error
}

// ContentStatusRepository lists study content statuses of a course
type ContentStatusRepository interface {
	ListStatuses(ctx context.Context, courseID string) ([]models.StudyTypeContent, error)
}

type marketplaceService struct {
	repo     MarketplaceRepository
	statuses ContentStatusRepository
	newSlug  func() (string, error)
	logger   *zap.Logger
}

// NewMarketplaceService creates a new marketplace service
func NewMarketplaceService(repo MarketplaceRepository, statuses ContentStatusRepository, logger *zap.Logger) *marketplaceService {
	return &marketplaceService{
		repo:     repo,
		statuses: statuses,
		newSlug:  newPublicSlug,
		logger:   logger,
	}
}

func newPublicSlug() (string, error) {
	return gonanoid.Generate(slugAlphabet, slugLength)
}

// publishReadiness sorts the required types into missing and still
// generating. A type with a Generating record is pending even when an older
// record is Ready. A type with neither a Ready nor a Generating record is missing.
func publishReadiness(records []models.StudyTypeContent) (missing, pending []models.StudyType) {
	ready := make(map[models.StudyType]bool)
	generating := make(map[models.StudyType]bool)
	for _, rec := range records {
		switch rec.Status {
		case models.StatusReady:
			ready[rec.Type] = true
		case models.StatusGenerating:
			generating[rec.Type] = true
		}
	}
	for _, t := range models.RequiredPublishTypes {
		switch {
		case generating[t]:
			pending = append(pending, t)
		case !ready[t]:
			missing = append(missing, t)
		}
	}
	return missing, pending
}

// Publish makes a course public under a fresh random slug once its flashcards,
// quiz and Q&A are all Ready. Publishing an already public course returns its
// current slug.
func (s *marketplaceService) Publish(ctx context.Context, req *models.PublishRequest) (*models.PublishResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	course, err := s.repo.GetByID(ctx, req.StudyMaterialID)
	if err != nil {
		return nil, notFound(err, "course")
	}

	for attempt := 0; attempt < publishAttempts; attempt++ {
		if course.IsPublic && course.PublicSlug != nil {
			return publishResponse(*course.PublicSlug), nil
		}

		records, err := s.statuses.ListStatuses(ctx, course.CourseID)
		if err != nil {
			return nil, fmt.Errorf("failed to read content statuses: %w", err)
		}
		missing, pending := publishReadiness(records)
		if len(missing) > 0 {
			return nil, &IncompleteContentError{Types: missing}
		}
		if len(pending) > 0 {
			return nil, &StillGeneratingError{Types: pending}
		}

		slug, err := s.newSlug()
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		published, err := s.repo.Publish(ctx, course.ID, slug)
		if errors.Is(err, repositories.ErrDuplicate) {
			s.logger.Warn("public slug collision", zap.String("slug", slug))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to publish course: %w", err)
		}
		if published {
			s.logger.Info("Course published", zap.String("course_id", course.CourseID), zap.String("slug", slug))
			return publishResponse(slug), nil
		}

		// Lost a race or content changed; decide again on fresh state
		if course, err = s.repo.GetByID(ctx, req.StudyMaterialID); err != nil {
			return nil, notFound(err, "course")
		}
	}

	return nil, fmt.Errorf("failed to publish course %d after %d attempts", req.StudyMaterialID, publishAttempts)
}

func publishResponse(slug string) *models.PublishResponse {
	return &models.PublishResponse{
		Success:    true,
		PublicSlug: slug,
		Message:    "Course published to marketplace",
	}
}

// Unpublish withdraws a course from the marketplace, resetting its slug,
// upvotes and favorites
func (s *marketplaceService) Unpublish(ctx context.Context, req *models.UnpublishRequest) (*models.MessageResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	course, err := s.repo.GetByID(ctx, req.StudyMaterialID)
	if err != nil {
		return nil, notFound(err, "course")
	}
	if err := s.repo.Unpublish(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to unpublish course: %w", err)
	}

	s.logger.Info("Course unpublished",
		zap.String("course_id", course.CourseID),
		zap.String("user_id", req.UserID),
	)
	return &models.MessageResponse{Success: true, Message: "Course removed from marketplace"}, nil
}

// List returns a page of public courses
func (s *marketplaceService) List(ctx context.Context, query *models.MarketplaceQuery) (*models.MarketplaceListResponse, error) {
	page, limit := pageDefaults(query.Page, query.Limit, defaultMarketplacePageSize, maxPageSize)

	sortBy := query.SortBy
	switch sortBy {
	case "":
		sortBy = models.SortNewest
	case models.SortNewest, models.SortOldest, models.SortPopular, models.SortTitle:
	default:
		return nil, validationError("sortBy must be one of newest, oldest, popular, title")
	}

	courses, err := s.repo.ListPublic(ctx, query.Search, sortBy, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list marketplace: %w", err)
	}
	total, err := s.repo.CountPublic(ctx, query.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to count marketplace: %w", err)
	}

	return &models.MarketplaceListResponse{
		Courses:    courses,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// GetBySlug returns a public course by its slug
func (s *marketplaceService) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	if slug == "" {
		return nil, validationError("slug is required")
	}
	course, err := s.repo.GetPublicBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "course")
	}
	return course, nil
}
