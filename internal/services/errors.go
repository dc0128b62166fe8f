package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/studyforge/backend/internal/ai"
	"github.com/studyforge/backend/internal/models"
	"github.com/studyforge/backend/internal/repositories"
)

var (
	// ErrValidation marks missing or malformed request fields
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks an absent user, course or material
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an ownership mismatch
	ErrForbidden = errors.New("forbidden")
	// ErrNoCredits marks a free user without generation credits
	ErrNoCredits = errors.New("no credits remaining")
	// ErrBusy marks a request that overlaps one already in progress
	ErrBusy = errors.New("request already in progress")
	// ErrGeneration marks a failed or unparseable AI call
	ErrGeneration = ai.ErrGeneration
)

// IncompleteContentError is returned when publishing a course that lacks
// required study content
type IncompleteContentError struct {
	Types []models.StudyType
}

func (e *IncompleteContentError) Error() string {
	return "missing required content: " + joinTypes(e.Types)
}

// StillGeneratingError is returned when publishing a course whose required
// study content is not finished yet
type StillGeneratingError struct {
	Types []models.StudyType
}

func (e *StillGeneratingError) Error() string {
	return "content still generating: " + joinTypes(e.Types)
}

func joinTypes(types []models.StudyType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// notFound converts a repository miss into ErrNotFound naming the entity
func notFound(err error, what string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}
