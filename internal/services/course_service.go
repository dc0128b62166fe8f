package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/repositories"
	"go.uber.org/zap"
)

const (
	defaultCoursePageSize = 6
	maxPageSize           = 50
)

// CourseRepository is the interface that wraps course persistence
type CourseRepository interface {
	// Create inserts a course. repositories.ErrDuplicate is returned when the
	// course id is taken.
	Create(ctx context.Context, course *models.Course) error
	// GetByCourseID retrieves a course by its client generated id
	GetByCourseID(ctx context.Context, courseID string) (*models.Course, error)
	// ListByCreator retrieves a page of a creator's courses, newest first
	ListByCreator(ctx context.Context, createdBy string, limit, offset int) ([]models.Course, error)
	// CountByCreator counts a creator's courses
	CountByCreator(ctx context.Context, createdBy string) (int, error)
	// TransitionStatus moves a course between statuses if it is in "from"
	TransitionStatus(ctx context.Context, courseID string, from, to models.GenerationStatus) (bool, error)
	// DeleteCascade removes a course after all of its dependents in one transaction
	DeleteCascade(ctx context.Context, course *models.Course) error
}

// OutlineGenerator produces a course layout with the AI model
type OutlineGenerator interface {
	Outline(ctx context.Context, topic, courseType, difficulty string) (*models.CourseLayout, error)
}

// NotesEnqueuer queues the notes job of a new course
type NotesEnqueuer interface {
	EnqueueGenerateNotes(ctx context.Context, course *models.Course) error
}

type courseService struct {
	courses   CourseRepository
	users     UserRepository
	ledger    *Ledger
	generator OutlineGenerator
	enqueuer  NotesEnqueuer
	locker    Locker
	lockTTL   time.Duration
	logger    *zap.Logger
}

// NewCourseService creates a new course service
//
// lockTTL bounds how long one creator's outline request blocks the next one
// and should exceed the AI timeout.
func NewCourseService(
	courses CourseRepository,
	users UserRepository,
	ledger *Ledger,
	generator OutlineGenerator,
	enqueuer NotesEnqueuer,
	locker Locker,
	lockTTL time.Duration,
	logger *zap.Logger,
) *courseService {
	return &courseService{
		courses:   courses,
		users:     users,
		ledger:    ledger,
		generator: generator,
		enqueuer:  enqueuer,
		locker:    locker,
		lockTTL:   lockTTL,
		logger:    logger,
	}
}

// GenerateOutline generates and stores a new course, charges the creator one
// credit and queues the generation of its chapter notes.
//
// Re-submitting a course id the creator already owns returns that course
// without charging again.
func (s *courseService) GenerateOutline(ctx context.Context, req *models.GenerateOutlineRequest) (*models.GenerateOutlineResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp *models.GenerateOutlineResponse
	err := withLock(ctx, s.locker, s.logger, "outline:"+req.CreatedBy, s.lockTTL, func() error {
		var err error
		resp, err = s.generateOutline(ctx, req)
		return err
	})
	return resp, err
}

func (s *courseService) generateOutline(ctx context.Context, req *models.GenerateOutlineRequest) (*models.GenerateOutlineResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.CreatedBy)
	if err != nil {
		return nil, notFound(err, "user")
	}

	existing, err := s.courses.GetByCourseID(ctx, req.CourseID)
	switch {
	case err == nil:
		if existing.CreatedBy != req.CreatedBy {
			return nil, validationError("courseId %s is already taken", req.CourseID)
		}
		return outlineResponse(existing, user), nil
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	if !CanGenerate(user) {
		return nil, ErrNoCredits
	}

	layout, err := s.generator.Outline(ctx, req.Topic, req.CourseType, req.DifficultyLevel)
	if err != nil {
		s.logger.Warn("outline generation failed", zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, err
	}

	course := &models.Course{
		CourseID:        req.CourseID,
		CourseType:      req.CourseType,
		Topic:           req.Topic,
		DifficultyLevel: req.DifficultyLevel,
		CourseLayout:    layout,
		CreatedBy:       req.CreatedBy,
		Status:          models.StatusGenerating,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, validationError("courseId %s is already taken", req.CourseID)
		}
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	if err := s.ledger.Debit(ctx, user); err != nil {
		// The course must not outlive a failed charge
		if delErr := s.courses.DeleteCascade(ctx, course); delErr != nil {
			s.logger.Error("failed to remove uncharged course", zap.String("course_id", course.CourseID), zap.Error(delErr))
		}
		return nil, err
	}

	if err := s.enqueuer.EnqueueGenerateNotes(ctx, course); err != nil {
		s.logger.Error("failed to enqueue notes generation", zap.String("course_id", course.CourseID), zap.Error(err))
		if _, err := s.courses.TransitionStatus(ctx, course.CourseID, models.StatusGenerating, models.StatusError); err != nil {
			s.logger.Error("failed to mark course as failed", zap.String("course_id", course.CourseID), zap.Error(err))
		} else {
			course.Status = models.StatusError
		}
	}

	s.logger.Info("Course created",
		zap.String("course_id", course.CourseID),
		zap.String("created_by", course.CreatedBy),
		zap.Int("chapters", len(layout.Chapters)),
	)
	return outlineResponse(course, user), nil
}

func outlineResponse(course *models.Course, user *models.User) *models.GenerateOutlineResponse {
	return &models.GenerateOutlineResponse{
		Result:   course,
		Credits:  user.Credits,
		IsMember: user.IsMember,
	}
}

// List returns a page of the creator's courses, newest first
func (s *courseService) List(ctx context.Context, req *models.ListCoursesRequest) (*models.CourseListResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	page, limit := pageDefaults(req.Page, req.Limit, defaultCoursePageSize, maxPageSize)

	courses, err := s.courses.ListByCreator(ctx, req.CreatedBy, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	total, err := s.courses.CountByCreator(ctx, req.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to count courses: %w", err)
	}

	return &models.CourseListResponse{
		Result:     courses,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// Get returns a single course by its course id
func (s *courseService) Get(ctx context.Context, courseID string) (*models.Course, error) {
	if courseID == "" {
		return nil, validationError("courseId is required")
	}
	course, err := s.courses.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, notFound(err, "course")
	}
	return course, nil
}

// Delete removes a course and everything that references it.
// Only the creator may delete a course.
func (s *courseService) Delete(ctx context.Context, req *models.DeleteCourseRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	course, err := s.courses.GetByCourseID(ctx, req.CourseID)
	if err != nil {
		return notFound(err, "course")
	}
	if course.CreatedBy != req.Email {
		return fmt.Errorf("%w: only the creator can delete this course", ErrForbidden)
	}

	if err := s.courses.DeleteCascade(ctx, course); err != nil {
		return notFound(err, "course")
	}

	s.logger.Info("Course deleted", zap.String("course_id", course.CourseID))
	return nil
}
