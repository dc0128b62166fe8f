package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/studyforge/backend/internal/models"
	"go.uber.org/zap"
)

// TextModel is a stateless text generation backend
type TextModel interface {
	// Generate answers the prompt in the prompt's format
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// Generator binds prompts to a text model and validates the answers.
// Every error it returns wraps ErrGeneration.
type Generator struct {
	model   TextModel
	timeout time.Duration
	logger  *zap.Logger
}

// NewGenerator creates a new generator. A zero timeout disables the per-call limit.
func NewGenerator(model TextModel, timeout time.Duration, logger *zap.Logger) *Generator {
	return &Generator{model: model, timeout: timeout, logger: logger}
}

func (g *Generator) call(ctx context.Context, prompt Prompt) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.model.Generate(ctx, prompt)
	if err != nil {
		g.logger.Warn("model call failed",
			zap.String("kind", string(prompt.Kind)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %s: %w", ErrGeneration, prompt.Kind, err)
	}

	g.logger.Debug("model call finished",
		zap.String("kind", string(prompt.Kind)),
		zap.Duration("duration", time.Since(start)),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

// Outline generates a course layout
func (g *Generator) Outline(ctx context.Context, topic, courseType, difficulty string) (*models.CourseLayout, error) {
	text, err := g.call(ctx, BuildOutlinePrompt(topic, courseType, difficulty))
	if err != nil {
		return nil, err
	}
	return ParseOutline(text)
}

// Notes generates HTML notes for a chapter
func (g *Generator) Notes(ctx context.Context, chapter models.Chapter) (string, error) {
	prompt, err := BuildNotesPrompt(chapter)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	text, err := g.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	return ParseNotes(text)
}

// StudyTypeContent generates content of type t from a prompt built by BuildStudyTypePrompt
func (g *Generator) StudyTypeContent(ctx context.Context, t models.StudyType, promptText string) (json.RawMessage, error) {
	kind, err := KindForStudyType(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	prompt, err := PromptFor(kind, promptText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	text, err := g.call(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseStudyTypeContent(t, text)
}
