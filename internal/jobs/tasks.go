// Package jobs defines the background tasks of the generation pipeline and
// the processor that executes them on an asynq server
package jobs

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/studyforge/backend/internal/models"
)

// Task types
const (
	TypeGenerateNotes    = "notes.generate"
	TypeStudyTypeContent = "studyType.content"
	TypeMembershipEmail  = "email:membership"
	TypeCourseReadyEmail = "email:course_ready"
	TypeReconcileUpvotes = "upvotes.reconcile"
)

// Queue names
const (
	QueueGeneration = "generation"
	QueueEmail      = "email"
	QueueDefault    = "default"
)

// Queues is the priority map used by the worker server
var Queues = map[string]int{
	QueueGeneration: 6,
	QueueEmail:      3,
	QueueDefault:    1,
}

// NotesCourse is the part of a course the notes job needs
type NotesCourse struct {
	CourseID     string              `json:"courseId"`
	CourseLayout models.CourseLayout `json:"courseLayout"`
}

// GenerateNotesPayload is the payload of a notes.generate task
type GenerateNotesPayload struct {
	Course NotesCourse `json:"course"`
}

// StudyTypeContentPayload is the payload of a studyType.content task
type StudyTypeContentPayload struct {
	StudyType models.StudyType `json:"studyType"`
	Prompt    string           `json:"prompt"`
	CourseID  string           `json:"courseId"`
	RecordID  int              `json:"recordId"`
}

// MembershipEmailPayload is the payload of an email:membership task
type MembershipEmailPayload struct {
	Email string `json:"email"`
}

// CourseReadyEmailPayload is the payload of an email:course_ready task
type CourseReadyEmailPayload struct {
	Email       string `json:"email"`
	CourseID    string `json:"courseId"`
	CourseTitle string `json:"courseTitle"`
}

func newTask(taskType string, payload any) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}
	return asynq.NewTask(taskType, data), nil
}

// NewGenerateNotesTask builds a notes.generate task for the course
func NewGenerateNotesTask(course *models.Course) (*asynq.Task, error) {
	payload := GenerateNotesPayload{Course: NotesCourse{CourseID: course.CourseID}}
	if course.CourseLayout != nil {
		payload.Course.CourseLayout = *course.CourseLayout
	}
	return newTask(TypeGenerateNotes, payload)
}

// NewStudyTypeContentTask builds a studyType.content task
func NewStudyTypeContentTask(payload StudyTypeContentPayload) (*asynq.Task, error) {
	return newTask(TypeStudyTypeContent, payload)
}

// NewMembershipEmailTask builds an email:membership task
func NewMembershipEmailTask(email string) (*asynq.Task, error) {
	return newTask(TypeMembershipEmail, MembershipEmailPayload{Email: email})
}

// NewCourseReadyEmailTask builds an email:course_ready task
func NewCourseReadyEmailTask(course *models.Course) (*asynq.Task, error) {
	payload := CourseReadyEmailPayload{Email: course.CreatedBy, CourseID: course.CourseID}
	if course.CourseLayout != nil {
		payload.CourseTitle = course.CourseLayout.CourseTitle
	}
	return newTask(TypeCourseReadyEmail, payload)
}

// NewReconcileUpvotesTask builds an upvotes.reconcile task
func NewReconcileUpvotesTask() *asynq.Task {
	return asynq.NewTask(TypeReconcileUpvotes, nil)
}

// decodePayload unmarshals a task payload; malformed payloads are never retried
func decodePayload(t *asynq.Task, v any) error {
	if err := json.Unmarshal(t.Payload(), v); err != nil {
		return fmt.Errorf("invalid %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}
	return nil
}
