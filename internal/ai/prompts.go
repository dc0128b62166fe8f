// Package ai turns course inputs into model prompts and validates what the
// model returns.
package ai

import (
	"encoding/json"
	"fmt"

	"github.com/studyforge/backend/internal/models"
)

// Kind identifies a generation preset
type Kind string

const (
	KindOutline   Kind = "outline"
	KindNotes     Kind = "notes"
	KindFlashcard Kind = "flashcard"
	KindQuiz      Kind = "quiz"
	KindQA        Kind = "qa"
)

// Format is the response MIME type requested from the model
type Format string

const (
	FormatJSON Format = "application/json"
	FormatText Format = "text/plain"
)

// Exchange is a priming request and the answer the model is expected to mirror
type Exchange struct {
	Request  string
	Response string
}

// Prompt is everything a text model needs for one stateless call
type Prompt struct {
	Kind    Kind
	Format  Format
	Example Exchange
	Text    string
}

type preset struct {
	format  Format
	example Exchange
}

var presets = map[Kind]preset{
	KindOutline: {
		format: FormatJSON,
		example: Exchange{
			Request: "Generate a study material for 'Go' for 'Interview' and level of Difficulty will be 'Easy' with course title, summary of course, List of chapters along with the summary and Emoji icon for each chapter, Topic list in each chapter in JSON format",
			Response: `{"courseTitle":"Go Interview Basics","courseSummary":"A short path through the Go features interviewers ask about most.","chapters":[` +
				`{"chapterTitle":"Types and Values","chapterSummary":"Built-in types, zero values and conversions.","emoji":"🧱","topics":["Basic types","Zero values","Type conversion"]},` +
				`{"chapterTitle":"Concurrency","chapterSummary":"Goroutines, channels and synchronisation.","emoji":"🔀","topics":["Goroutines","Channels","sync.WaitGroup"]}]}`,
		},
	},
	KindNotes: {
		format: FormatText,
		example: Exchange{
			Request:  "Generate detailed study notes for this chapter in HTML format (without html, head, body tags). Use <h3> for chapter title, <h4> for topics, and <p> for content.",
			Response: "<h3>Types and Values</h3><p>Every Go type has a zero value.</p><h4>Zero values</h4><p>Numbers start at 0, strings at \"\" and pointers at nil.</p><ul><li>var n int // 0</li></ul>",
		},
	},
	KindFlashcard: {
		format: FormatJSON,
		example: Exchange{
			Request:  "Generate flashcards in JSON array format. Each flashcard must have 'front' and 'back' keys.",
			Response: `[{"front":"What is a goroutine?","back":"A function running concurrently, scheduled by the Go runtime."}]`,
		},
	},
	KindQuiz: {
		format: FormatJSON,
		example: Exchange{
			Request:  "Generate quiz questions with options and correct answers. Format: {questions: [{question, options, answer}]}",
			Response: `{"questions":[{"question":"Which keyword starts a goroutine?","options":["go","async","spawn","thread"],"answer":"go"}]}`,
		},
	},
	KindQA: {
		format: FormatJSON,
		example: Exchange{
			Request:  "Generate question and answer pairs. Format: [{question, answer}] where answer is detailed.",
			Response: `[{"question":"What does a nil map allow?","answer":"Reads return zero values, but writes panic until the map is created with make."}]`,
		},
	},
}

// PromptFor attaches the preset of kind to an already built prompt text
func PromptFor(kind Kind, text string) (Prompt, error) {
	p, ok := presets[kind]
	if !ok {
		return Prompt{}, fmt.Errorf("unknown prompt kind %q", kind)
	}
	return Prompt{Kind: kind, Format: p.format, Example: p.example, Text: text}, nil
}

func mustPrompt(kind Kind, text string) Prompt {
	p, err := PromptFor(kind, text)
	if err != nil {
		panic(err)
	}
	return p
}

// BuildOutlinePrompt builds the course outline prompt
func BuildOutlinePrompt(topic, courseType, difficulty string) Prompt {
	return mustPrompt(KindOutline, fmt.Sprintf(
		"Generate a study material for '%s' for '%s' and level of Difficulty will be '%s' with course title, "+
			"summary of course, List of chapters along with the summary and Emoji icon for each chapter, "+
			"Topic list in each chapter in JSON format",
		topic, courseType, difficulty,
	))
}

// BuildNotesPrompt builds the HTML notes prompt for one chapter
func BuildNotesPrompt(chapter models.Chapter) (Prompt, error) {
	encoded, err := json.Marshal(chapter)
	if err != nil {
		return Prompt{}, fmt.Errorf("failed to encode chapter: %w", err)
	}
	return mustPrompt(KindNotes,
		"Generate detailed study notes for this chapter in HTML format (without html, head, body tags). "+
			"Use <h3> for chapter title, <h4> for topics, <p> for content and <li> for lists. "+
			"Include all topics with detailed explanations and examples. Chapter: "+string(encoded),
	), nil
}

// KindForStudyType maps a generated study type to its preset
func KindForStudyType(t models.StudyType) (Kind, error) {
	switch t {
	case models.StudyTypeFlashcard:
		return KindFlashcard, nil
	case models.StudyTypeQuiz:
		return KindQuiz, nil
	case models.StudyTypeQA:
		return KindQA, nil
	}
	return "", fmt.Errorf("unsupported study type %q", t)
}

// BuildStudyTypePrompt builds the flashcard, quiz or Q&A prompt for topics
func BuildStudyTypePrompt(t models.StudyType, topics string) (Prompt, error) {
	kind, err := KindForStudyType(t)
	if err != nil {
		return Prompt{}, err
	}

	var text string
	switch kind {
	case KindFlashcard:
		text = fmt.Sprintf("Generate 15 flashcards on topic: %s in JSON format with front and back content. "+
			"Focus on key concepts and definitions.", topics)
	case KindQuiz:
		text = fmt.Sprintf("Generate a quiz on topic: %s with 10 questions. Include options and correct answers "+
			"in JSON format with structure: {questions: [{question, options, answer}]}. "+
			"The answer must repeat one of the options exactly.", topics)
	case KindQA:
		text = fmt.Sprintf("Generate 10 question and answer pairs on topic: %s in JSON format. "+
			"Provide detailed, educational answers. Format: [{question, answer}]", topics)
	}
	return mustPrompt(kind, text), nil
}
