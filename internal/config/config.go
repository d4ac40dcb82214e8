package config

import (
	"os"
)

type Config struct {
	ELEVENLABS_API_KEY  string
	ELEVENLABS_BASE_URL string

	// Address the local mock API binds to
	TTV_MOCK_ADDR string

	// Otel
	OTEL_EXPORTER_OTLP_ENDPOINT string
}

func ReadConfig() *Config {
	return &Config{
		ELEVENLABS_API_KEY:  os.Getenv("ELEVENLABS_API_KEY"),
		ELEVENLABS_BASE_URL: os.Getenv("ELEVENLABS_BASE_URL"),

		TTV_MOCK_ADDR: getEnvOrDefault("TTV_MOCK_ADDR", "127.0.0.1:8642"),

		OTEL_EXPORTER_OTLP_ENDPOINT: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
