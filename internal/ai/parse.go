package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/studyforge/backend/internal/models"
)

// ErrGeneration marks a failed or unusable model response
var ErrGeneration = errors.New("generation failed")

var validate = validator.New()

var (
	codeFence    = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	documentTags = regexp.MustCompile(`(?i)</?(html|head|body)\b[^>]*>`)
)

// stripFences removes a markdown code fence wrapped around the whole output
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

func generationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrGeneration, fmt.Sprintf(format, args...))
}

func decodeStrict(raw string, v any) error {
	dec := json.NewDecoder(strings.NewReader(raw))
	if err := dec.Decode(v); err != nil {
		return generationErr("invalid JSON: %v", err)
	}
	if dec.More() {
		return generationErr("trailing data after JSON document")
	}
	return nil
}

// ParseOutline validates a course outline response
func ParseOutline(raw string) (*models.CourseLayout, error) {
	var layout models.CourseLayout
	if err := decodeStrict(stripFences(raw), &layout); err != nil {
		return nil, err
	}
	if err := validate.Struct(layout); err != nil {
		return nil, generationErr("outline does not match schema: %v", err)
	}
	return &layout, nil
}

// ParseNotes cleans an HTML notes response
func ParseNotes(raw string) (string, error) {
	notes := strings.TrimSpace(documentTags.ReplaceAllString(stripFences(raw), ""))
	if notes == "" {
		return "", generationErr("empty notes")
	}
	return notes, nil
}

// ParseStudyTypeContent validates flashcard, quiz or Q&A JSON and returns
// the model's JSON unchanged apart from the stripped fences
func ParseStudyTypeContent(t models.StudyType, raw string) (json.RawMessage, error) {
	body := stripFences(raw)

	var err error
	switch t {
	case models.StudyTypeFlashcard:
		var cards []models.Flashcard
		if err = decodeStrict(body, &cards); err == nil {
			err = validateList(cards)
		}
	case models.StudyTypeQuiz:
		var quiz models.QuizContent
		if err = decodeStrict(body, &quiz); err == nil {
			err = validateQuiz(quiz)
		}
	case models.StudyTypeQA:
		var pairs []models.QAPair
		if err = decodeStrict(body, &pairs); err == nil {
			err = validateList(pairs)
		}
	default:
		return nil, fmt.Errorf("unsupported study type %q", t)
	}
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

// listDoc lets the validator dive into a top-level JSON array
type listDoc[T any] struct {
	Items []T `validate:"required,min=1,dive"`
}

func validateList[T any](items []T) error {
	if err := validate.Struct(listDoc[T]{Items: items}); err != nil {
		return generationErr("content does not match schema: %v", err)
	}
	return nil
}

func validateQuiz(quiz models.QuizContent) error {
	if err := validate.Struct(quiz); err != nil {
		return generationErr("quiz does not match schema: %v", err)
	}
	for i, q := range quiz.Questions {
		if !slices.Contains(q.Options, q.Answer) {
			return generationErr("question %d answer is not one of its options", i+1)
		}
	}
	return nil
}
