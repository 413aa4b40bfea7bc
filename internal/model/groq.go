// Package model provides the Groq API client for chat completions.
package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// GroqConfig configures the Groq client.
type GroqConfig struct {
	APIKey    string
	BaseURL   string // Default: https://api.groq.com/openai/v1
	Model     string // e.g., "llama-3.1-8b-instant"
	Timeout   time.Duration
	MaxTokens int
	Logger    *zap.Logger
}

// DefaultGroqConfig returns default configuration.
func DefaultGroqConfig(apiKey string) *GroqConfig {
	return &GroqConfig{
		APIKey:    apiKey,
		BaseURL:   "https://api.groq.com/openai/v1",
		Model:     "llama-3.1-8b-instant",
		Timeout:   10 * time.Second,
		MaxTokens: 2000,
	}
}

// GroqClient implements Completer using the Groq chat-completions API.
type GroqClient struct {
	cfg    *GroqConfig
	client *http.Client
	logger *zap.Logger
}

// NewGroqClient creates a new Groq client.
func NewGroqClient(cfg *GroqConfig) *GroqClient {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroqClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Complete sends the message list to Groq and returns the generated text.
// A failed call surfaces immediately; callers decide how to degrade.
func (c *GroqClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	if c == nil {
		return "", fmt.Errorf("groq client not initialized")
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"messages":    messages,
		"temperature": temperature,
		"max_tokens":  c.cfg.MaxTokens,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	c.logger.Debug("chat completion",
		zap.String("model", chatResp.Model),
		zap.Int("tokens", chatResp.Usage.TotalTokens),
		zap.Duration("elapsed", time.Since(start)))

	return chatResp.Choices[0].Message.Content, nil
}

// Name returns the model name.
func (c *GroqClient) Name() string {
	if c != nil && c.cfg != nil {
		return c.cfg.Model
	}
	return "groq"
}

// IsAvailable checks if the client is configured.
func (c *GroqClient) IsAvailable() bool {
	return c != nil && c.cfg != nil && c.cfg.APIKey != ""
}

// ============================================================
// Groq API Types
// ============================================================

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
