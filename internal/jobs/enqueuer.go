package jobs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// emailMaxRetry is the retry budget of notification emails
const emailMaxRetry = 3

// TaskClient is the subset of asynq.Client used to enqueue tasks
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer publishes pipeline tasks to the queue
type Enqueuer struct {
	client   TaskClient
	maxRetry int
	timeout  time.Duration
	logger   *zap.Logger
}

// NewEnqueuer creates a new enqueuer
//
// maxRetry and timeout apply to generation tasks.
func NewEnqueuer(client TaskClient, maxRetry int, timeout time.Duration, logger *zap.Logger) *Enqueuer {
	return &Enqueuer{
		client:   client,
		maxRetry: maxRetry,
		timeout:  timeout,
		logger:   logger,
	}
}

func (e *Enqueuer) enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) error {
	info, err := e.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
		e.logger.Debug("Task already enqueued", zap.String("type", task.Type()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}
	e.logger.Info("Task enqueued",
		zap.String("type", task.Type()),
		zap.String("task_id", info.ID),
		zap.String("queue", info.Queue),
	)
	return nil
}

func (e *Enqueuer) generationOptions(taskID string) []asynq.Option {
	opts := []asynq.Option{
		asynq.Queue(QueueGeneration),
		asynq.MaxRetry(e.maxRetry),
		asynq.TaskID(taskID),
	}
	if e.timeout > 0 {
		opts = append(opts, asynq.Timeout(e.timeout))
	}
	return opts
}

// EnqueueGenerateNotes enqueues the notes job of a course
func (e *Enqueuer) EnqueueGenerateNotes(ctx context.Context, course *models.Course) error {
	task, err := NewGenerateNotesTask(course)
	if err != nil {
		return err
	}
	return e.enqueue(ctx, task, e.generationOptions("notes:"+course.CourseID)...)
}

// EnqueueStudyTypeContent enqueues the generation of one study content record
func (e *Enqueuer) EnqueueStudyTypeContent(ctx context.Context, payload StudyTypeContentPayload) error {
	task, err := NewStudyTypeContentTask(payload)
	if err != nil {
		return err
	}
	return e.enqueue(ctx, task, e.generationOptions("studyType:"+strconv.Itoa(payload.RecordID))...)
}

// EnqueueMembershipEmail enqueues the welcome email of a new member
func (e *Enqueuer) EnqueueMembershipEmail(ctx context.Context, email string) error {
	task, err := NewMembershipEmailTask(email)
	if err != nil {
		return err
	}
	return e.enqueue(ctx, task, asynq.Queue(QueueEmail), asynq.MaxRetry(emailMaxRetry))
}

// EnqueueCourseReadyEmail enqueues the notice sent when a course is ready
func (e *Enqueuer) EnqueueCourseReadyEmail(ctx context.Context, course *models.Course) error {
	task, err := NewCourseReadyEmailTask(course)
	if err != nil {
		return err
	}
	return e.enqueue(ctx, task,
		asynq.Queue(QueueEmail),
		asynq.MaxRetry(emailMaxRetry),
		asynq.TaskID("course_ready:"+course.CourseID),
	)
}

// EnqueueReconcileUpvotes enqueues an upvote counter reconciliation.
// Only one reconciliation may be pending at a time.
func (e *Enqueuer) EnqueueReconcileUpvotes(ctx context.Context, window time.Duration) error {
	return e.enqueue(ctx, NewReconcileUpvotesTask(),
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(0),
		asynq.Unique(window),
	)
}
