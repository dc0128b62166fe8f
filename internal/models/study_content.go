package models

import (
	"encoding/json"
	"strings"
)

// StudyType represents a kind of generated study content
type StudyType string

const (
	StudyTypeFlashcard StudyType = "Flashcard"
	StudyTypeQuiz      StudyType = "Quiz"
	StudyTypeQA        StudyType = "QA"
	// StudyTypeNotes is only a read selector, notes live in chapter_notes
	StudyTypeNotes StudyType = "notes"
)

// RequiredPublishTypes lists the content every public course must carry
var RequiredPublishTypes = []StudyType{StudyTypeQA, StudyTypeQuiz, StudyTypeFlashcard}

// ParseStudyType resolves a client supplied type name case-insensitively
func ParseStudyType(s string) (StudyType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flashcard", "flashcards":
		return StudyTypeFlashcard, true
	case "quiz":
		return StudyTypeQuiz, true
	case "qa", "question/answer":
		return StudyTypeQA, true
	case "notes":
		return StudyTypeNotes, true
	}
	return "", false
}

// Generated reports whether the type is produced by a study content job
func (t StudyType) Generated() bool {
	return t == StudyTypeFlashcard || t == StudyTypeQuiz || t == StudyTypeQA
}

// StudyTypeContent represents generated flashcards, quiz or Q&A for a course
type StudyTypeContent struct {
	ID       int              `json:"id"`
	CourseID string           `json:"courseId"`
	Type     StudyType        `json:"type"`
	Content  json.RawMessage  `json:"content"`
	Status   GenerationStatus `json:"status"`
}

// Flashcard is one generated card
type Flashcard struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

// QuizQuestion is one multiple choice question
type QuizQuestion struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"required,min=2"`
	Answer   string   `json:"answer" validate:"required"`
}

// QuizContent is the generated quiz document
type QuizContent struct {
	Questions []QuizQuestion `json:"questions" validate:"required,min=1,dive"`
}

// QAPair is one question and answer pair
type QAPair struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// CreateStudyContentRequest represents a request to generate study content for a course.
// Chapters is the comma separated list of chapter titles the content covers.
type CreateStudyContentRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Chapters string `json:"chapters" validate:"required,max=5000"`
}

// CreateStudyContentResponse acknowledges a queued generation
type CreateStudyContentResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// StudyContentQuery selects generated content for reading
type StudyContentQuery struct {
	CourseID  string
	Type      string
	ChapterID int
}
