package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
// It is built once at startup and passed explicitly into the services, so
// nothing reads the environment after Load returns.
type Config struct {
	OpenAIKey      string
	OpenAIEndpoint string
	OpenAIModel    string

	// GenerationTimeout bounds a single completion call.
	GenerationTimeout time.Duration

	// MaxInputChars caps the number of runes of source text submitted to the
	// completion service; longer inputs are truncated before prompt building.
	MaxInputChars int
}

// Load reads configuration from the environment, providing sensible defaults.
func Load() Config {
	// Load .env file if it exists (useful for development)
	_ = godotenv.Load()
	return Config{
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIEndpoint:    getEnv("OPENAI_API_ENDPOINT", "https://api.openai.com/v1"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GenerationTimeout: time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", 60)) * time.Second,
		MaxInputChars:     getEnvInt("MAX_INPUT_CHARS", 48000),
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
