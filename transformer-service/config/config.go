package config

import (
	"os"
	"time"
)

// placeholderKey is the value shipped in example env files; it counts as
// "not configured" so a copy-pasted template never reaches the real API.
const placeholderKey = "sk-your-openai-api-key-here"

type Config struct {
	Port          string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8002"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAITimeout: getDurationEnv("OPENAI_TIMEOUT", "30s"),
	}
}

// OpenAIConfigured reports whether a usable credential was supplied.
func (c *Config) OpenAIConfigured() bool {
	return c.OpenAIAPIKey != "" && c.OpenAIAPIKey != placeholderKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
