package agent

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/krish2213/company-research-assistant/internal/state"
)

// Style is the communication profile for one persona.
type Style struct {
	Tone          string
	DetailLevel   string
	Pacing        string
	ExtraGuidance bool
}

var personaStyles = map[state.Persona]Style{
	state.PersonaConfused: {
		Tone:          "patient and supportive",
		DetailLevel:   "high with examples",
		Pacing:        "step-by-step",
		ExtraGuidance: true,
	},
	state.PersonaEfficient: {
		Tone:        "concise and direct",
		DetailLevel: "minimal, facts only",
		Pacing:      "fast",
	},
	state.PersonaChatty: {
		Tone:        "friendly but focused",
		DetailLevel: "moderate",
		Pacing:      "moderate with gentle redirects",
	},
	state.PersonaUnknown: {
		Tone:          "professional and helpful",
		DetailLevel:   "moderate",
		Pacing:        "normal",
		ExtraGuidance: true,
	},
	state.PersonaEdgeCase: {
		Tone:          "helpful and clarifying",
		DetailLevel:   "moderate with validation",
		Pacing:        "careful",
		ExtraGuidance: true,
	},
}

// personaStyle returns the style for a persona, defaulting to unknown.
func personaStyle(persona state.Persona) Style {
	if style, ok := personaStyles[persona]; ok {
		return style
	}
	return personaStyles[state.PersonaUnknown]
}

var (
	fillerPrefixRe = regexp.MustCompile(`^(Sure!|Of course!|Absolutely!|Great question!|Hello!|Hi there!|I'd be happy to|Let me)[\s.,]*`)
	closingMarkRe  = regexp.MustCompile(`[?!\n]$`)
)

// adaptResponse applies persona-level rewriting: efficient users get filler
// stripped, confused users get a supportive closing.
func adaptResponse(response string, session *state.Session) string {
	switch session.Persona {
	case state.PersonaEfficient:
		response = strings.TrimSpace(fillerPrefixRe.ReplaceAllString(response, ""))
		response = capitalizeFirst(response)

	case state.PersonaConfused:
		trimmed := strings.TrimSpace(response)
		if !closingMarkRe.MatchString(trimmed) &&
			!strings.HasPrefix(trimmed, "❌") &&
			session.Phase != state.PhasePlanReady {
			response += "\n\nRemember, you can ask me to explain anything further!"
		}
	}

	return response
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
