package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "LOG_LEVEL", "LOG_FORMAT", "STATIC_DIR", "AI_PROVIDER", "GEMINI_API_KEY", "GEMINI_MODEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "./static", cfg.StaticDir)
	assert.Equal(t, ProviderTemplate, cfg.AIProvider)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-flash")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.AIProvider)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
}

func TestValidate(t *testing.T) {
	valid := &Config{AIProvider: ProviderTemplate}
	require.NoError(t, valid.Validate())

	gemini := &Config{AIProvider: ProviderGemini, GeminiAPIKey: "key"}
	require.NoError(t, gemini.Validate())

	missing := &Config{AIProvider: ProviderGemini}
	assert.Error(t, missing.Validate())

	unknown := &Config{AIProvider: "oracle"}
	assert.Error(t, unknown.Validate())
}
