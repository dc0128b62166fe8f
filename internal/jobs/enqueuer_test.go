package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/studyforge/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockTaskClient records enqueued tasks
type mockTaskClient struct {
	task *asynq.Task
	opts []asynq.Option
	err  error
}

func (m *mockTaskClient) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.task = task
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	return &asynq.TaskInfo{ID: "id-1", Queue: QueueGeneration, Type: task.Type()}, nil
}

func optionValue(opts []asynq.Option, kind asynq.OptionType) any {
	for _, opt := range opts {
		if opt.Type() == kind {
			return opt.Value()
		}
	}
	return nil
}

func TestEnqueuer_EnqueueGenerateNotes(t *testing.T) {
	client := &mockTaskClient{}
	e := NewEnqueuer(client, 0, 10*time.Minute, zap.NewNop())
	course := &models.Course{
		CourseID:     "c1",
		CourseLayout: &models.CourseLayout{CourseTitle: "Go", Chapters: []models.Chapter{{ChapterTitle: "Basics"}}},
	}

	require.NoError(t, e.EnqueueGenerateNotes(context.Background(), course))

	assert.Equal(t, TypeGenerateNotes, client.task.Type())
	assert.Equal(t, QueueGeneration, optionValue(client.opts, asynq.QueueOpt))
	assert.Equal(t, 0, optionValue(client.opts, asynq.MaxRetryOpt))
	assert.Equal(t, "notes:c1", optionValue(client.opts, asynq.TaskIDOpt))
	assert.Equal(t, 10*time.Minute, optionValue(client.opts, asynq.TimeoutOpt))

	var payload GenerateNotesPayload
	require.NoError(t, json.Unmarshal(client.task.Payload(), &payload))
	assert.Equal(t, "c1", payload.Course.CourseID)
	assert.Len(t, payload.Course.CourseLayout.Chapters, 1)
}

func TestEnqueuer_EnqueueStudyTypeContent(t *testing.T) {
	client := &mockTaskClient{}
	e := NewEnqueuer(client, 2, 0, zap.NewNop())

	require.NoError(t, e.EnqueueStudyTypeContent(context.Background(), StudyTypeContentPayload{
		StudyType: models.StudyTypeQuiz,
		Prompt:    "p",
		CourseID:  "c1",
		RecordID:  42,
	}))

	assert.Equal(t, TypeStudyTypeContent, client.task.Type())
	assert.Equal(t, "studyType:42", optionValue(client.opts, asynq.TaskIDOpt))
	assert.Equal(t, 2, optionValue(client.opts, asynq.MaxRetryOpt))
	assert.Nil(t, optionValue(client.opts, asynq.TimeoutOpt))
	assert.JSONEq(t, `{"studyType":"Quiz","prompt":"p","courseId":"c1","recordId":42}`, string(client.task.Payload()))
}

func TestEnqueuer_Errors(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError bool
	}{
		{name: "task id conflict", err: asynq.ErrTaskIDConflict},
		{name: "duplicate task", err: asynq.ErrDuplicateTask},
		{name: "redis down", err: errors.New("dial tcp: refused"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnqueuer(&mockTaskClient{err: tt.err}, 0, 0, zap.NewNop())

			err := e.EnqueueMembershipEmail(context.Background(), "a@b.com")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnqueuer_EmailQueue(t *testing.T) {
	client := &mockTaskClient{}
	e := NewEnqueuer(client, 0, 0, zap.NewNop())

	require.NoError(t, e.EnqueueCourseReadyEmail(context.Background(), &models.Course{CourseID: "c1", CreatedBy: "a@b.com"}))

	assert.Equal(t, TypeCourseReadyEmail, client.task.Type())
	assert.Equal(t, QueueEmail, optionValue(client.opts, asynq.QueueOpt))
	assert.Equal(t, emailMaxRetry, optionValue(client.opts, asynq.MaxRetryOpt))
}
