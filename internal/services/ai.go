package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrAIUnavailable is returned when the OpenAI integration is not configured.
	ErrAIUnavailable = errors.New("openai integration is not configured")
)

// generationTemperature is fixed across all task kinds: deterministic enough
// for study material, not greedy.
const generationTemperature = 0.5

// AIService wraps the hosted completion endpoint. One call produces exactly
// one completion or fails: no retries, no streaming, no partial payloads.
type AIService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewAIService(apiKey string, model string, apiEndpoint string, timeout time.Duration) *AIService {
	if apiKey == "" {
		return &AIService{}
	}

	cfg := openai.DefaultConfig(apiKey)
	if apiEndpoint != "" {
		cfg.BaseURL = apiEndpoint
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &AIService{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

func (s *AIService) disabled() bool {
	return s.client == nil || s.model == ""
}

// Generate submits one system message and one user message and returns the
// completion text. Network errors, upstream errors, empty responses, and
// timeouts all surface as a plain error with no payload.
func (s *AIService) Generate(ctx context.Context, system string, prompt string, maxTokens int) (string, error) {
	if s.disabled() {
		return "", ErrAIUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: generationTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("request completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion service returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
