package classifier

import (
	"regexp"
	"strings"

	"github.com/krish2213/company-research-assistant/internal/plan"
)

// UpdateRequest is a parsed section edit: which section and the replacement
// content.
type UpdateRequest struct {
	Section plan.Section
	Content string
}

var updatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:update|change|modify|edit|revise)\s+(?:the\s+)?(.+?)\s+(?:with|to|section)[:.]?\s*(.+)`),
	regexp.MustCompile(`(?i)(?:add|include)\s+(?:to\s+)?(?:the\s+)?(.+?)[:.]?\s*(.+)`),
	regexp.MustCompile(`(?i)(.+?)\s+(?:should|needs to)\s+(?:say|include|be)[:.]?\s*(.+)`),
}

// ParseUpdateRequest checks whether the text asks to replace a plan section.
// Only texts whose section mention resolves to a known section count; the
// content has surrounding quotes stripped so quoted edits never read as
// farewells.
func ParseUpdateRequest(text string) (UpdateRequest, bool) {
	cleaned := CleanText(text)

	for _, pattern := range updatePatterns {
		match := pattern.FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}

		mention := strings.ToLower(strings.TrimSpace(match[1]))
		content := strings.TrimSpace(match[2])
		content = strings.Trim(content, `"`)
		content = strings.Trim(content, `'`)

		if section, ok := plan.NormalizeSection(mention); ok {
			return UpdateRequest{Section: section, Content: content}, true
		}
	}

	return UpdateRequest{}, false
}
