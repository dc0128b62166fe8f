package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyforge/backend/internal/ai"
	"github.com/studyforge/backend/internal/jobs"
	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// StudyContentRepository is the interface that wraps study content persistence
type StudyContentRepository interface {
	// Create inserts a new record and sets its id
	Create(ctx context.Context, content *models.StudyTypeContent) error
	// GetLatest retrieves the newest record of a type for a course
	GetLatest(ctx context.Context, courseID string, studyType models.StudyType) (*models.StudyTypeContent, error)
	// MarkError flips a Generating record to Error
	MarkError(ctx context.Context, id int) (bool, error)
}

// ChapterNotesRepository is the interface that wraps chapter notes reads
type ChapterNotesRepository interface {
	GetByCourseAndChapter(ctx context.Context, courseID string, chapterID int) (*models.ChapterNotes, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.ChapterNotes, error)
}

// StudyContentEnqueuer queues study content generation
type StudyContentEnqueuer interface {
	EnqueueStudyTypeContent(ctx context.Context, payload jobs.StudyTypeContentPayload) error
}

type studyContentService struct {
	courses  CourseRepository
	contents StudyContentRepository
	notes    ChapterNotesRepository
	enqueuer StudyContentEnqueuer
	logger   *zap.Logger
}

// NewStudyContentService creates a new study content service
func NewStudyContentService(
	courses CourseRepository,
	contents StudyContentRepository,
	notes ChapterNotesRepository,
	enqueuer StudyContentEnqueuer,
	logger *zap.Logger,
) *studyContentService {
	return &studyContentService{
		courses:  courses,
		contents: contents,
		notes:    notes,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

// parseGeneratedType resolves a study type that a content job can produce
func parseGeneratedType(raw string) (models.StudyType, error) {
	t, ok := models.ParseStudyType(raw)
	if !ok || !t.Generated() {
		return "", validationError("type must be one of Flashcard, Quiz, QA")
	}
	return t, nil
}

// Request stores a Generating record for the course and queues its generation.
// The response only acknowledges that generation started.
func (s *studyContentService) Request(ctx context.Context, req *models.CreateStudyContentRequest) (*models.CreateStudyContentResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	studyType, err := parseGeneratedType(req.Type)
	if err != nil {
		return nil, err
	}
	topics := strings.TrimSpace(req.Chapters)
	if topics == "" {
		return nil, validationError("chapters is required")
	}

	if _, err := s.courses.GetByCourseID(ctx, req.CourseID); err != nil {
		return nil, notFound(err, "course")
	}

	prompt, err := ai.BuildStudyTypePrompt(studyType, topics)
	if err != nil {
		return nil, validationError("%v", err)
	}

	record := &models.StudyTypeContent{
		CourseID: req.CourseID,
		Type:     studyType,
		Status:   models.StatusGenerating,
	}
	if err := s.contents.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create study content: %w", err)
	}

	if err := s.enqueuer.EnqueueStudyTypeContent(ctx, jobs.StudyTypeContentPayload{
		StudyType: studyType,
		Prompt:    prompt.Text,
		CourseID:  req.CourseID,
		RecordID:  record.ID,
	}); err != nil {
		if _, markErr := s.contents.MarkError(ctx, record.ID); markErr != nil {
			s.logger.Error("failed to mark study content as failed", zap.Int("record_id", record.ID), zap.Error(markErr))
		}
		return nil, err
	}

	s.logger.Info("Study content requested",
		zap.String("course_id", req.CourseID),
		zap.String("study_type", string(studyType)),
		zap.Int("record_id", record.ID),
	)
	return &models.CreateStudyContentResponse{
		ID:      record.ID,
		Message: "Generation started",
	}, nil
}

// GetContent returns the newest flashcard, quiz or QA record of a course
func (s *studyContentService) GetContent(ctx context.Context, courseID, rawType string) (*models.StudyTypeContent, error) {
	if courseID == "" {
		return nil, validationError("courseId is required")
	}
	studyType, err := parseGeneratedType(rawType)
	if err != nil {
		return nil, err
	}

	content, err := s.contents.GetLatest(ctx, courseID, studyType)
	if err != nil {
		return nil, notFound(err, "study content")
	}
	return content, nil
}

// GetNotes returns the chapter notes of a course, or one chapter when
// chapterID is positive
func (s *studyContentService) GetNotes(ctx context.Context, courseID string, chapterID int) ([]models.ChapterNotes, error) {
	if courseID == "" {
		return nil, validationError("courseId is required")
	}

	if chapterID > 0 {
		notes, err := s.notes.GetByCourseAndChapter(ctx, courseID, chapterID)
		if err != nil {
			return nil, notFound(err, "chapter notes")
		}
		return []models.ChapterNotes{*notes}, nil
	}

	notes, err := s.notes.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chapter notes: %w", err)
	}
	return notes, nil
}
