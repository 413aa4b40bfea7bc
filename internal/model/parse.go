package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls a JSON payload out of model output, tolerating a
// surrounding Markdown code fence. Returns the bare JSON text.
func ExtractJSON(text string) (string, error) {
	trimmed := strings.TrimSpace(text)

	if idx := strings.Index(trimmed, "```json"); idx >= 0 {
		rest := trimmed[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		trimmed = strings.TrimSpace(rest)
	} else if idx := strings.Index(trimmed, "```"); idx >= 0 {
		rest := trimmed[idx+len("```"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		trimmed = strings.TrimSpace(rest)
	}

	if trimmed == "" {
		return "", fmt.Errorf("empty model output")
	}
	return trimmed, nil
}

// DecodeJSON extracts and unmarshals a JSON payload from model output into v.
// A malformed payload is reported as an error; callers pair this with a
// deterministic fallback path.
func DecodeJSON(text string, v any) error {
	payload, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("malformed model JSON: %w", err)
	}
	return nil
}
