package config

import (
	"fmt"
	"os"
)

// AI provider selection values for Config.AIProvider
const (
	ProviderTemplate = "template"
	ProviderGemini   = "gemini"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Env          string
	Port         string
	LogLevel     string
	LogFormat    string
	StaticDir    string
	AIProvider   string
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Env:          getEnvWithDefault("ENV", "development"),
		Port:         getEnvWithDefault("PORT", "5000"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvWithDefault("LOG_FORMAT", "text"),
		StaticDir:    getEnvWithDefault("STATIC_DIR", "./static"),
		AIProvider:   getEnvWithDefault("AI_PROVIDER", ProviderTemplate),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-pro"),
	}
}

// Validate checks that the configuration is internally consistent
func (c *Config) Validate() error {
	switch c.AIProvider {
	case ProviderTemplate:
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER=%s", ProviderGemini)
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q (expected %q or %q)", c.AIProvider, ProviderTemplate, ProviderGemini)
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
