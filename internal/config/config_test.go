package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Model.BaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model.Name)
	assert.Equal(t, 2000, cfg.Model.MaxTokens)
	assert.Equal(t, 10*time.Second, cfg.ModelTimeout())
	assert.Equal(t, 10*time.Second, cfg.ResearchTimeout())
	assert.Equal(t, "CompanyResearchAssistant/1.0", cfg.Research.UserAgent)
	assert.Equal(t, 2000, cfg.Chat.MaxMessageLength)
	assert.False(t, cfg.Debug)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.toml")
	content := `
debug = true

[model]
name = "llama-3.3-70b-versatile"
timeout_seconds = 30

[chat]
max_message_length = 500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Model.Name)
	assert.Equal(t, 30*time.Second, cfg.ModelTimeout())
	assert.Equal(t, 500, cfg.Chat.MaxMessageLength)
	assert.True(t, cfg.Debug)

	// Untouched fields keep their defaults.
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Model.BaseURL)
	assert.Equal(t, 2000, cfg.Model.MaxTokens)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.toml")
	require.NoError(t, os.WriteFile(path, []byte("model = {"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDebugEnvOverride(t *testing.T) {
	t.Setenv("DEBUG", "TRUE")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}
