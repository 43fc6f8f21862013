package config

import (
	"os"
	"time"
)

// Config holds the gateway settings resolved once at startup.
type Config struct {
	Port           string
	TransformerURL string
	FeedTimeout    time.Duration
	RelayTimeout   time.Duration
	Feeds          map[string]string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8000"),
		TransformerURL: getEnv("TRANSFORMER_URL", "http://transformer-service:8002"),
		FeedTimeout:    getDurationEnv("FEED_TIMEOUT", "30s"),
		RelayTimeout:   getDurationEnv("RELAY_TIMEOUT", "60s"),
		Feeds: map[string]string{
			"world":      "http://feeds.bbci.co.uk/news/world/rss.xml",
			"uk":         "http://feeds.bbci.co.uk/news/uk/rss.xml",
			"business":   "http://feeds.bbci.co.uk/news/business/rss.xml",
			"technology": "http://feeds.bbci.co.uk/news/technology/rss.xml",
			"health":     "http://feeds.bbci.co.uk/news/health/rss.xml",
		},
	}
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
