package services

import (
	"context"
	"errors"
	"strings"

	"study-assist/internal/models"
)

var (
	// ErrEmptyText is returned when a task arrives without any study text.
	ErrEmptyText = errors.New("no study text provided")
	// ErrEmptyQuestion is returned when a question-answering task arrives
	// without a question.
	ErrEmptyQuestion = errors.New("no question provided")
)

// Generator produces completion text for a prompt. *AIService is the real
// implementation; tests inject a fake.
type Generator interface {
	Generate(ctx context.Context, system string, prompt string, maxTokens int) (string, error)
}

// TaskResult is the outcome of one study task: the raw generated text plus,
// for flashcards and quizzes, its structured view.
type TaskResult struct {
	Raw   string
	Units []models.StudyUnit
}

// StudyService runs one study task end to end: validate, bound the input,
// build the prompt, generate, and structure the output.
type StudyService struct {
	generator     Generator
	maxInputChars int
}

func NewStudyService(generator Generator, maxInputChars int) *StudyService {
	if maxInputChars <= 0 {
		maxInputChars = 48000
	}
	return &StudyService{
		generator:     generator,
		maxInputChars: maxInputChars,
	}
}

// Run executes one task. Validation failures are reported before any call to
// the completion service.
func (s *StudyService) Run(ctx context.Context, req models.TaskRequest) (*TaskResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}
	question := strings.TrimSpace(req.Question)
	if req.Kind == models.TaskQuestion && question == "" {
		return nil, ErrEmptyQuestion
	}

	prompt := BuildPrompt(req.Kind, truncateRunes(text, s.maxInputChars), question)
	raw, err := s.generator.Generate(ctx, SystemPrompt, prompt, req.Kind.MaxTokens())
	if err != nil {
		return nil, err
	}

	result := &TaskResult{Raw: raw}
	if req.Kind.Structured() {
		result.Units = SplitBlocks(raw)
	}
	return result, nil
}

// truncateRunes caps text at limit runes. Oversized inputs would otherwise be
// rejected or silently truncated upstream; cutting here keeps the prompt
// bounded and the failure mode explicit.
func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
