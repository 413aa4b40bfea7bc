package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedBuilder() *Builder {
	return &Builder{Now: func() time.Time {
		return time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	}}
}

func TestBuildSystemPrompt(t *testing.T) {
	out := fixedBuilder().BuildSystemPrompt(SystemContext{
		Phase:         "plan_ready",
		TargetCompany: "Acme Corp",
		Persona:       "efficient",
		Tone:          "concise and direct",
		DetailLevel:   "minimal, facts only",
		PlanComplete:  true,
	})

	assert.Contains(t, out, "Company Research Assistant")
	assert.Contains(t, out, "Current date: 2025-03-14")
	assert.Contains(t, out, "- Phase: plan_ready")
	assert.Contains(t, out, "- Target Company: Acme Corp")
	assert.Contains(t, out, "- User Style: efficient - Use concise and direct tone with minimal, facts only detail.")
	assert.Contains(t, out, "- Plan Status: Complete")
}

func TestBuildSystemPromptDefaults(t *testing.T) {
	out := fixedBuilder().BuildSystemPrompt(SystemContext{
		Phase:   "greeting",
		Persona: "unknown",
	})

	assert.Contains(t, out, "- Target Company: Not set")
	assert.Contains(t, out, "- Plan Status: Incomplete or not started")
	assert.NotContains(t, out, "Additional")
}

func TestBuildSystemPromptAdditional(t *testing.T) {
	out := fixedBuilder().BuildSystemPrompt(SystemContext{
		Phase:      "clarifying",
		Additional: "The user's message was unclear.",
	})
	assert.True(t, len(out) > 0)
	assert.Contains(t, out, "The user's message was unclear.")
}
