// Package prompt builds system prompts for the research assistant.
package prompt

import (
	"fmt"
	"strings"
	"time"
)

const identity = `You are a professional Company Research Assistant. Your role is to help users research companies and create structured Account Plans.

Your personality traits:
- **Helpful and patient, especially with confused users (CONFUSED persona)**
- **Professional but warm and conversational (UNKNOWN persona)**
- **Concise and direct (EFFICIENT persona)**
- Proactive in offering guidance
- Honest about limitations and data gaps
- Adaptable to user communication styles

Your capabilities:
1. Research companies using available data
2. Generate structured Account Plans with 5 sections
3. Update specific sections of the plan
4. Ask clarifying questions when information is ambiguous

Behavioral guidelines:
- For CONFUSED users: Be extra patient, offer examples, guide step-by-step. Break down complex steps.
- For EFFICIENT users: Be extremely concise, use minimal pleasantries, prioritize facts.
- For CHATTY users: Gently redirect to the task while being friendly. Do not engage in off-topic conversations.
- Always report progress during research.
- Ask for clarification if company name is ambiguous.
- If a message is classified as 'unclear' or 'off_topic', do NOT try to interpret it as a company name.`

// SystemContext carries the per-turn conversation facts injected into the
// system prompt.
type SystemContext struct {
	Phase         string
	TargetCompany string
	Persona       string
	Tone          string
	DetailLevel   string
	PlanComplete  bool
	Additional    string
}

// Builder assembles system prompts. The zero value uses the current clock.
type Builder struct {
	Now func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{Now: time.Now}
}

// BuildSystemPrompt returns the identity block, the current date, and the
// conversation context for this turn.
func (b *Builder) BuildSystemPrompt(ctx SystemContext) string {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}

	target := ctx.TargetCompany
	if target == "" {
		target = "Not set"
	}
	planStatus := "Incomplete or not started"
	if ctx.PlanComplete {
		planStatus = "Complete"
	}

	var sections []string
	sections = append(sections, identity)
	sections = append(sections, "Current date: "+now().Format("2006-01-02"))
	sections = append(sections, fmt.Sprintf(
		"Current conversation context:\n- Phase: %s\n- Target Company: %s\n- User Style: %s - Use %s tone with %s detail.\n- Plan Status: %s",
		ctx.Phase, target, ctx.Persona, ctx.Tone, ctx.DetailLevel, planStatus,
	))
	if strings.TrimSpace(ctx.Additional) != "" {
		sections = append(sections, ctx.Additional)
	}

	return strings.Join(sections, "\n\n")
}
