package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"study-assist/internal/services"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionJSON(content string) string {
	return `{"id":"chatcmpl-1","object":"chat.completion","created":0,"model":"test-model",` +
		`"choices":[{"index":0,"message":{"role":"assistant","content":` + mustMarshal(content) + `},"finish_reason":"stop"}]}`
}

func mustMarshal(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateSubmitsOneBoundedRequest(t *testing.T) {
	var captured capturedRequest
	var calls int

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON("Photosynthesis in five points.")))
	}))
	defer backend.Close()

	ai := services.NewAIService("test-key", "test-model", backend.URL+"/v1", 5*time.Second)

	got, err := ai.Generate(context.Background(), services.SystemPrompt, "Summarize this.", 300)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "Photosynthesis in five points." {
		t.Errorf("Generate returned %q", got)
	}

	if calls != 1 {
		t.Errorf("backend received %d calls, want exactly 1", calls)
	}
	if captured.Model != "test-model" {
		t.Errorf("request model = %q, want test-model", captured.Model)
	}
	if captured.Temperature != 0.5 {
		t.Errorf("request temperature = %v, want 0.5", captured.Temperature)
	}
	if captured.MaxTokens != 300 {
		t.Errorf("request max_tokens = %d, want 300", captured.MaxTokens)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("request carried %d messages, want system + user", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[0].Content != services.SystemPrompt {
		t.Errorf("system message = %+v", captured.Messages[0])
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "Summarize this." {
		t.Errorf("user message = %+v", captured.Messages[1])
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
	}))
	defer backend.Close()

	ai := services.NewAIService("test-key", "test-model", backend.URL+"/v1", 5*time.Second)

	got, err := ai.Generate(context.Background(), services.SystemPrompt, "prompt", 300)
	if err == nil {
		t.Fatal("expected error from failing backend, got nil")
	}
	if got != "" {
		t.Errorf("Generate returned partial payload %q on failure", got)
	}
}

func TestGenerateEmptyChoicesIsFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","created":0,"model":"test-model","choices":[]}`))
	}))
	defer backend.Close()

	ai := services.NewAIService("test-key", "test-model", backend.URL+"/v1", 5*time.Second)

	if _, err := ai.Generate(context.Background(), services.SystemPrompt, "prompt", 300); err == nil {
		t.Fatal("expected error for response without choices, got nil")
	}
}

func TestGenerateUnconfigured(t *testing.T) {
	ai := services.NewAIService("", "", "", 0)

	_, err := ai.Generate(context.Background(), services.SystemPrompt, "prompt", 300)
	if !errors.Is(err, services.ErrAIUnavailable) {
		t.Fatalf("expected ErrAIUnavailable, got %v", err)
	}
}
