package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"time"

	"github.com/hibiken/asynq"
	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CourseRepository defines the course operations used by the jobs
type CourseRepository interface {
	// GetByCourseID retrieves a course by its client generated id
	GetByCourseID(ctx context.Context, courseID string) (*models.Course, error)
	// TransitionStatus moves a course from one status to another and reports
	// whether the course was in the expected status
	TransitionStatus(ctx context.Context, courseID string, from, to models.GenerationStatus) (bool, error)
	// ReconcileUpvotes recomputes every upvote counter from the upvote rows
	ReconcileUpvotes(ctx context.Context) (int64, error)
}

// ChapterNotesRepository defines the notes operations used by the jobs
type ChapterNotesRepository interface {
	Upsert(ctx context.Context, notes *models.ChapterNotes) error
}

// StudyContentRepository defines the study content operations used by the jobs
type StudyContentRepository interface {
	// GetByID retrieves a study content record
	GetByID(ctx context.Context, id int) (*models.StudyTypeContent, error)
	// MarkReady stores content on a Generating record and flips it to Ready
	MarkReady(ctx context.Context, id int, content json.RawMessage) (bool, error)
	// MarkError flips a Generating record to Error
	MarkError(ctx context.Context, id int) (bool, error)
}

// ContentGenerator produces notes and study content with the AI model
type ContentGenerator interface {
	Notes(ctx context.Context, chapter models.Chapter) (string, error)
	StudyTypeContent(ctx context.Context, t models.StudyType, prompt string) (json.RawMessage, error)
}

// Notifier enqueues follow-up notifications
type Notifier interface {
	EnqueueCourseReadyEmail(ctx context.Context, course *models.Course) error
}

// Mailer sends an HTML email
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// settleTimeout bounds the write of a terminal status, which runs even after
// the task deadline has passed
const settleTimeout = 10 * time.Second

// settleContext detaches ctx from its deadline so a task that ran out of time
// can still record Ready or Error
func settleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
}

// Processor executes pipeline tasks
type Processor struct {
	courses     CourseRepository
	notes       ChapterNotesRepository
	contents    StudyContentRepository
	generator   ContentGenerator
	notifier    Notifier
	mailer      Mailer
	concurrency int
	logger      *zap.Logger
}

// NewProcessor creates a new processor
//
// concurrency caps the number of chapters generated in parallel for one course.
func NewProcessor(
	courses CourseRepository,
	notes ChapterNotesRepository,
	contents StudyContentRepository,
	generator ContentGenerator,
	notifier Notifier,
	mailer Mailer,
	concurrency int,
	logger *zap.Logger,
) *Processor {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Processor{
		courses:     courses,
		notes:       notes,
		contents:    contents,
		generator:   generator,
		notifier:    notifier,
		mailer:      mailer,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Register binds every task type to its handler
func (p *Processor) Register(mux *asynq.ServeMux) {
	mux.Use(p.logTask)
	mux.HandleFunc(TypeGenerateNotes, p.HandleGenerateNotes)
	mux.HandleFunc(TypeStudyTypeContent, p.HandleStudyTypeContent)
	mux.HandleFunc(TypeMembershipEmail, p.HandleMembershipEmail)
	mux.HandleFunc(TypeCourseReadyEmail, p.HandleCourseReadyEmail)
	mux.HandleFunc(TypeReconcileUpvotes, p.HandleReconcileUpvotes)
}

// logTask logs the outcome and duration of every task
func (p *Processor) logTask(next asynq.Handler) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
		start := time.Now()
		taskID, _ := asynq.GetTaskID(ctx)
		err := next.ProcessTask(ctx, t)
		fields := []zap.Field{
			zap.String("type", t.Type()),
			zap.String("task_id", taskID),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			p.logger.Error("Task failed", append(fields, zap.Error(err))...)
			return err
		}
		p.logger.Info("Task completed", fields...)
		return nil
	})
}

// HandleGenerateNotes generates the notes of every chapter in parallel and
// flips the course to Ready only when all of them are stored
func (p *Processor) HandleGenerateNotes(ctx context.Context, t *asynq.Task) error {
	var payload GenerateNotesPayload
	if err := decodePayload(t, &payload); err != nil {
		return err
	}
	courseID := payload.Course.CourseID

	course, err := p.courses.GetByCourseID(ctx, courseID)
	if errors.Is(err, repositories.ErrNotFound) {
		// Course was deleted before the job ran
		p.logger.Info("Skipping notes for missing course", zap.String("course_id", courseID))
		return nil
	}
	if err != nil {
		return err
	}
	if course.Status != models.StatusGenerating {
		p.logger.Info("Skipping notes for settled course",
			zap.String("course_id", courseID),
			zap.String("status", string(course.Status)),
		)
		return nil
	}

	chapters := payload.Course.CourseLayout.Chapters
	if len(chapters) == 0 && course.CourseLayout != nil {
		chapters = course.CourseLayout.Chapters
	}
	if len(chapters) == 0 {
		return p.failCourse(ctx, courseID, errors.New("course layout has no chapters"))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, chapter := range chapters {
		chapterID := i + 1
		g.Go(func() error {
			text, err := p.generator.Notes(gctx, chapter)
			if err != nil {
				return fmt.Errorf("chapter %d: %w", chapterID, err)
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := p.notes.Upsert(gctx, &models.ChapterNotes{
				CourseID:  courseID,
				ChapterID: chapterID,
				Notes:     text,
			}); err != nil {
				return fmt.Errorf("chapter %d: %w", chapterID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return p.failCourse(ctx, courseID, err)
	}

	settleCtx, cancel := settleContext(ctx)
	defer cancel()
	ok, err := p.courses.TransitionStatus(settleCtx, courseID, models.StatusGenerating, models.StatusReady)
	if err != nil {
		return err
	}
	if !ok {
		p.logger.Info("Course left Generating while notes were written", zap.String("course_id", courseID))
		return nil
	}

	p.logger.Info("Course notes ready",
		zap.String("course_id", courseID),
		zap.Int("chapters", len(chapters)),
	)
	if err := p.notifier.EnqueueCourseReadyEmail(settleCtx, course); err != nil {
		p.logger.Warn("Failed to enqueue course ready email", zap.String("course_id", courseID), zap.Error(err))
	}
	return nil
}

// failCourse records Error on the course; the task is not retried once the
// failure is recorded
func (p *Processor) failCourse(ctx context.Context, courseID string, cause error) error {
	settleCtx, cancel := settleContext(ctx)
	defer cancel()
	if _, err := p.courses.TransitionStatus(settleCtx, courseID, models.StatusGenerating, models.StatusError); err != nil {
		return fmt.Errorf("failed to record notes failure (%v): %w", cause, err)
	}
	p.logger.Warn("Course notes failed", zap.String("course_id", courseID), zap.Error(cause))
	return fmt.Errorf("notes generation failed: %v: %w", cause, asynq.SkipRetry)
}

// HandleStudyTypeContent generates one flashcard, quiz or QA record.
// A generation failure is recorded on the record and the task is handled.
func (p *Processor) HandleStudyTypeContent(ctx context.Context, t *asynq.Task) error {
	var payload StudyTypeContentPayload
	if err := decodePayload(t, &payload); err != nil {
		return err
	}
	log := p.logger.With(
		zap.String("course_id", payload.CourseID),
		zap.Int("record_id", payload.RecordID),
		zap.String("study_type", string(payload.StudyType)),
	)

	record, err := p.contents.GetByID(ctx, payload.RecordID)
	if errors.Is(err, repositories.ErrNotFound) {
		log.Info("Skipping study content for missing record")
		return nil
	}
	if err != nil {
		return err
	}
	if record.Status != models.StatusGenerating {
		log.Info("Skipping settled study content", zap.String("status", string(record.Status)))
		return nil
	}

	content, genErr := p.generator.StudyTypeContent(ctx, payload.StudyType, payload.Prompt)
	settleCtx, cancel := settleContext(ctx)
	defer cancel()
	if genErr != nil {
		if _, err := p.contents.MarkError(settleCtx, payload.RecordID); err != nil {
			return fmt.Errorf("failed to record generation failure (%v): %w", genErr, err)
		}
		log.Warn("Study content failed", zap.Error(genErr))
		return nil
	}

	ok, err := p.contents.MarkReady(settleCtx, payload.RecordID, content)
	if err != nil {
		return err
	}
	if !ok {
		log.Info("Study content record is no longer Generating")
		return nil
	}
	log.Info("Study content ready")
	return nil
}

// HandleMembershipEmail sends the welcome email of a new member
func (p *Processor) HandleMembershipEmail(ctx context.Context, t *asynq.Task) error {
	var payload MembershipEmailPayload
	if err := decodePayload(t, &payload); err != nil {
		return err
	}
	body := "<h3>Welcome to StudyForge Premium</h3>" +
		"<p>Your membership is active. You can now generate unlimited courses.</p>"
	return p.mailer.Send(ctx, payload.Email, "Your StudyForge membership is active", body)
}

// HandleCourseReadyEmail tells the creator that the course notes are ready
func (p *Processor) HandleCourseReadyEmail(ctx context.Context, t *asynq.Task) error {
	var payload CourseReadyEmailPayload
	if err := decodePayload(t, &payload); err != nil {
		return err
	}
	title := payload.CourseTitle
	if title == "" {
		title = payload.CourseID
	}
	body := fmt.Sprintf("<h3>%s is ready</h3><p>The notes for every chapter have been generated.</p>",
		html.EscapeString(title))
	return p.mailer.Send(ctx, payload.Email, "Your course is ready", body)
}

// HandleReconcileUpvotes recomputes cached upvote counters
func (p *Processor) HandleReconcileUpvotes(ctx context.Context, _ *asynq.Task) error {
	fixed, err := p.courses.ReconcileUpvotes(ctx)
	if err != nil {
		return err
	}
	p.logger.Info("Upvote counters reconciled", zap.Int64("updated", fixed))
	return nil
}
