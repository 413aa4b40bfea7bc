// Package config handles assistant configuration loading.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration.
type Config struct {
	Model    ModelConfig    `toml:"model"`
	Research ResearchConfig `toml:"research"`
	Chat     ChatConfig     `toml:"chat"`
	Debug    bool           `toml:"debug"`
}

// ModelConfig configures the language model backend.
type ModelConfig struct {
	BaseURL        string `toml:"base_url"`
	Name           string `toml:"name"`
	MaxTokens      int    `toml:"max_tokens"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ResearchConfig configures the research client.
type ResearchConfig struct {
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ChatConfig configures the interactive chat loop.
type ChatConfig struct {
	MaxMessageLength int `toml:"max_message_length"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			BaseURL:        "https://api.groq.com/openai/v1",
			Name:           "llama-3.1-8b-instant",
			MaxTokens:      2000,
			TimeoutSeconds: 10,
		},
		Research: ResearchConfig{
			UserAgent:      "CompanyResearchAssistant/1.0",
			TimeoutSeconds: 10,
		},
		Chat: ChatConfig{
			MaxMessageLength: 2000,
		},
	}
}

// Load loads configuration from the given path. A missing file returns
// defaults; DEBUG=true in the environment always enables debug output.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if strings.EqualFold(os.Getenv("DEBUG"), "true") {
		c.Debug = true
	}
}

// ModelTimeout returns the model timeout as a duration.
func (c *Config) ModelTimeout() time.Duration {
	return time.Duration(c.Model.TimeoutSeconds) * time.Second
}

// ResearchTimeout returns the research HTTP timeout as a duration.
func (c *Config) ResearchTimeout() time.Duration {
	return time.Duration(c.Research.TimeoutSeconds) * time.Second
}
