package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_ENDPOINT", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "")
	t.Setenv("MAX_INPUT_CHARS", "")

	cfg := Load()

	if cfg.OpenAIKey != "" {
		t.Errorf("OpenAIKey = %q, want empty", cfg.OpenAIKey)
	}
	if cfg.OpenAIEndpoint != "https://api.openai.com/v1" {
		t.Errorf("OpenAIEndpoint = %q", cfg.OpenAIEndpoint)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q", cfg.OpenAIModel)
	}
	if cfg.GenerationTimeout != 60*time.Second {
		t.Errorf("GenerationTimeout = %v, want 60s", cfg.GenerationTimeout)
	}
	if cfg.MaxInputChars != 48000 {
		t.Errorf("MaxInputChars = %d, want 48000", cfg.MaxInputChars)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_API_ENDPOINT", "https://openrouter.ai/api/v1")
	t.Setenv("OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "15")
	t.Setenv("MAX_INPUT_CHARS", "1000")

	cfg := Load()

	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %q", cfg.OpenAIKey)
	}
	if cfg.OpenAIEndpoint != "https://openrouter.ai/api/v1" {
		t.Errorf("OpenAIEndpoint = %q", cfg.OpenAIEndpoint)
	}
	if cfg.OpenAIModel != "gpt-4.1-mini" {
		t.Errorf("OpenAIModel = %q", cfg.OpenAIModel)
	}
	if cfg.GenerationTimeout != 15*time.Second {
		t.Errorf("GenerationTimeout = %v, want 15s", cfg.GenerationTimeout)
	}
	if cfg.MaxInputChars != 1000 {
		t.Errorf("MaxInputChars = %d, want 1000", cfg.MaxInputChars)
	}
}

func TestGetEnvIntRejectsInvalid(t *testing.T) {
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("MAX_INPUT_CHARS", "-5")

	cfg := Load()

	if cfg.GenerationTimeout != 60*time.Second {
		t.Errorf("GenerationTimeout = %v, want the 60s default", cfg.GenerationTimeout)
	}
	if cfg.MaxInputChars != 48000 {
		t.Errorf("MaxInputChars = %d, want the 48000 default", cfg.MaxInputChars)
	}
}
