package agent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/krish2213/company-research-assistant/internal/state"
)

var positiveWords = map[string]bool{
	"yes": true, "y": true, "yep": true, "yup": true, "sure": true,
	"ok": true, "okay": true, "correct": true, "right": true,
	"proceed": true, "go ahead": true, "continue": true,
}

var negativeWords = map[string]bool{
	"no": true, "n": true, "nope": true, "nah": true, "wrong": true,
	"incorrect": true, "cancel": true, "stop": true,
}

// handleConfirmationResponse resolves yes/no answers to an open confirmation
// or low-confidence question. Returns handled=false when the message is
// neither, leaving the clarification open.
func (a *Agent) handleConfirmationResponse(ctx context.Context, session *state.Session, input string) (bool, string) {
	pending := session.Pending
	if pending == nil {
		return false, ""
	}

	lowered := strings.ToLower(strings.TrimSpace(input))

	switch pending.Type {
	case state.ClarifyConfirmation:
		company := pending.Company

		if positiveWords[lowered] {
			session.Pending = nil
			return true, a.handleResearchCandidate(ctx, session, company)
		}
		if negativeWords[lowered] || strings.HasPrefix(lowered, "no,") || strings.HasPrefix(lowered, "no ") {
			session.Pending = nil
			session.SetPhase(state.PhaseGatheringCompany)

			// "No, I meant Deloitte" carries the correction in the same turn.
			extraction := a.resolver.Extract(ctx, input, recentContextText(session, 3))
			if extraction.IsCompanyQuery && extraction.Company != "" && extraction.Company != company {
				return true, fmt.Sprintf("Understood. Let me research **%s** for you.\n\n%s",
					extraction.Company,
					a.handleResearchCandidate(ctx, session, extraction.Company),
				)
			}

			return true, "No problem! Please tell me the correct company name you'd like to research."
		}

	case state.ClarifyLowConfidence:
		company := pending.Company

		if positiveWords[lowered] {
			session.Pending = nil
			return true, a.handleDirectResearch(ctx, session, company)
		}
		if negativeWords[lowered] {
			session.Pending = nil
			session.SetPhase(state.PhaseGatheringCompany)
			return true, "No problem! Please provide a different company name to research."
		}
	}

	return false, ""
}

var selectionNumberRe = regexp.MustCompile(`^(\d+)\.?$|^option\s*(\d+)$|^(\d+)\s*[-:.)]`)

var ordinalWords = map[string]int{
	"first": 0, "second": 1, "third": 2, "fourth": 3, "fifth": 4,
	"1st": 0, "2nd": 1, "3rd": 2,
}

// handleDisambiguationResponse resolves a pick from a numbered option list,
// by number, name, or ordinal word. An unrecognized answer keeps the
// question open.
func (a *Agent) handleDisambiguationResponse(ctx context.Context, session *state.Session, input string) (bool, string) {
	pending := session.Pending
	if pending == nil || pending.Type != state.ClarifyDisambiguation || len(pending.Options) == 0 {
		return false, ""
	}

	options := pending.Options
	lowered := strings.ToLower(strings.TrimSpace(input))
	selected := ""

	if match := selectionNumberRe.FindStringSubmatch(lowered); match != nil {
		numStr := match[1]
		if numStr == "" {
			numStr = match[2]
		}
		if numStr == "" {
			numStr = match[3]
		}
		if num, err := strconv.Atoi(numStr); err == nil {
			idx := num - 1
			if idx >= 0 && idx < len(options) {
				selected = options[idx]
			}
		}
	}

	if selected == "" {
		for _, opt := range options {
			optLower := strings.ToLower(opt)
			if optLower == lowered || strings.Contains(lowered, optLower) || strings.Contains(optLower, lowered) {
				selected = opt
				break
			}
		}
	}

	if selected == "" {
		for word, idx := range ordinalWords {
			if strings.Contains(lowered, word) && idx < len(options) {
				selected = options[idx]
				break
			}
		}
	}

	if selected != "" {
		session.Pending = nil
		session.TargetCompany = selected
		return true, a.handleDirectResearch(ctx, session, selected)
	}

	return false, ""
}
