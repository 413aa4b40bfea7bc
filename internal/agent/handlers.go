package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/krish2213/company-research-assistant/internal/classifier"
	apperrors "github.com/krish2213/company-research-assistant/internal/errors"
	"github.com/krish2213/company-research-assistant/internal/plan"
	"github.com/krish2213/company-research-assistant/internal/research"
	"github.com/krish2213/company-research-assistant/internal/resolver"
	"github.com/krish2213/company-research-assistant/internal/state"
)

var researchCommandRe = regexp.MustCompile(`(?i)^(research|look up|find|analyze|tell me about|information on|learn about)\s+`)

// handlePotentialResearch is the single entry point for anything that might
// name a company. It extracts, decides whether confirmation is needed, and
// either opens a clarification or researches directly.
func (a *Agent) handlePotentialResearch(ctx context.Context, session *state.Session, input string) string {
	if classifier.HasConfusionSignals(input) {
		return a.handleUnclear(ctx, session, input)
	}

	lowered := strings.ToLower(strings.TrimSpace(input))
	stripped := classifier.StripHesitation(lowered)

	if resolver.IsNonCompanyWord(lowered) || resolver.IsNonCompanyWord(stripped) ||
		classifier.ConfirmationWords[lowered] || classifier.GreetingWords[lowered] ||
		classifier.FarewellWords[lowered] {
		return a.handleUnclear(ctx, session, input)
	}

	// References like "that company" resolve from history, never from
	// extraction.
	if resolver.IsContextualPhrase(input) {
		if resolved := resolver.ResolveContextual(input, session.History); resolved != "" {
			return a.handleResearchCandidate(ctx, session, resolved)
		}
		return a.handleUnclear(ctx, session, input)
	}

	searchTerms := strings.TrimSpace(researchCommandRe.ReplaceAllString(input, ""))

	extraction := a.resolver.Extract(ctx, searchTerms, recentContextText(session, 3))

	if extraction.IsCompanyQuery && extraction.Company != "" {
		if resolver.NeedsConfirmation(extraction) {
			session.Pending = &state.PendingClarification{
				Type:          state.ClarifyConfirmation,
				Company:       extraction.Company,
				OriginalInput: input,
				Confidence:    extraction.Confidence,
				IsAliasMatch:  extraction.IsAliasMatch,
			}
			session.SetPhase(state.PhaseClarifying)
			return resolver.ConfirmationMessage(extraction)
		}
		return a.handleDirectResearch(ctx, session, extraction.Company)
	}

	// Fuzzy fallback, skipped for explicit "research ..." commands whose
	// extraction already failed.
	if !strings.HasPrefix(lowered, "research") {
		if matched, score, ok := resolver.FuzzyMatch(input, 75); ok {
			if score >= 85 {
				return a.handleDirectResearch(ctx, session, matched)
			}
			session.Pending = &state.PendingClarification{
				Type:          state.ClarifyConfirmation,
				Company:       matched,
				OriginalInput: input,
				Confidence:    float64(score) / 100.0,
			}
			session.SetPhase(state.PhaseClarifying)
			return fmt.Sprintf(
				"Did you mean **%s**?\nPlease reply 'yes' to confirm or provide the correct company name.",
				matched,
			)
		}
	}

	// Multi-word input that survived every gate is probably an obscure
	// company name. Research it and let confidence reporting tell the story.
	if len(strings.Fields(input)) > 1 && len(input) > 5 {
		return a.handleDirectResearch(ctx, session, input)
	}

	return a.handleUnclear(ctx, session, input)
}

// handleResearchCandidate researches a resolved name, opening a clarification
// when the data comes back weak or ambiguous. This is the path taken after a
// confirmed extraction.
func (a *Agent) handleResearchCandidate(ctx context.Context, session *state.Session, company string) string {
	company, err := resolver.ValidateCompanyName(company)
	if err != nil {
		return fmt.Sprintf(
			"❌ I had trouble with that company name: **%s**\nCould you please provide a valid company name?",
			apperrors.UserMessage(err),
		)
	}

	session.TargetCompany = company
	session.SetPhase(state.PhaseResearching)

	var progress strings.Builder
	fmt.Fprintf(&progress, "🔍 Researching **%s**...\n", company)

	snap := a.lookup.Lookup(ctx, company)

	if !snap.Success {
		fmt.Fprintf(&progress,
			"\n⚠️ I found limited information about **%s**. Would you like me to proceed with what I found, or would you like to try a different company name?",
			company,
		)
		session.Research = snap
		session.Pending = &state.PendingClarification{
			Type:    state.ClarifyLowConfidence,
			Company: company,
		}
		session.SetPhase(state.PhaseClarifying)
		return progress.String()
	}

	if options := ambiguousOptions(snap.Conflicts); len(options) > 0 {
		fmt.Fprintf(&progress, "\n⚠️ I found multiple matches for '*%s*':\n", company)
		for i, option := range options {
			fmt.Fprintf(&progress, "  %d. %s\n", i+1, option)
		}
		progress.WriteString("\nWhich company did you mean? (Enter the number or type the name)")

		session.Pending = &state.PendingClarification{
			Type:    state.ClarifyDisambiguation,
			Options: options,
		}
		session.SetPhase(state.PhaseClarifying)
		return progress.String()
	}

	session.Research = snap
	fmt.Fprintf(&progress, "✅ Found information about **%s**.\n", snap.CompanyName)
	fmt.Fprintf(&progress, "📊 Data confidence: %.0f%%\n", snap.Confidence*100)
	if len(snap.Gaps) > 0 {
		fmt.Fprintf(&progress, "📝 Note: Limited data for: %s\n", strings.Join(snap.Gaps, ", "))
	}

	return a.generateAndPresent(ctx, session, snap, &progress)
}

// handleDirectResearch researches a confirmed or unambiguous name. Weak data
// does not stop it; a basic plan is generated regardless.
func (a *Agent) handleDirectResearch(ctx context.Context, session *state.Session, company string) string {
	session.TargetCompany = company
	session.SetPhase(state.PhaseResearching)

	var progress strings.Builder
	fmt.Fprintf(&progress, "🔍 Researching **%s**...\n", company)

	snap := a.lookup.Lookup(ctx, company)
	session.Research = snap

	if snap.Success {
		fmt.Fprintf(&progress, "✅ Found information about **%s**.\n", snap.CompanyName)
		fmt.Fprintf(&progress, "📊 Data confidence: %.0f%%\n", snap.Confidence*100)
	} else {
		fmt.Fprintf(&progress,
			"\n⚠️ I found limited information about **%s**. I'll generate a basic plan with what I found, but you should review and update sections manually.\n",
			company,
		)
	}
	if len(snap.Gaps) > 0 {
		fmt.Fprintf(&progress, "📝 Note: Limited data for: %s\n", strings.Join(snap.Gaps, ", "))
	}

	return a.generateAndPresent(ctx, session, snap, &progress)
}

// generateAndPresent builds the plan and renders the persona-specific
// presentation.
func (a *Agent) generateAndPresent(ctx context.Context, session *state.Session, snap *research.Snapshot, progress *strings.Builder) string {
	progress.WriteString("\nGenerating Account Plan...\n")

	doc, status := a.assembler.Generate(ctx, snap)
	session.Plan = doc
	session.SetPhase(state.PhasePlanReady)

	if status == plan.StatusPartial {
		progress.WriteString("⚠️ Generated a basic plan. Some sections may need manual enrichment.\n")
	} else {
		progress.WriteString("✅ Account Plan generated successfully!\n")
	}

	switch session.Persona {
	case state.PersonaEfficient:
		progress.WriteString("Plan Ready. Use 'Show plan' to view the full details.")
	case state.PersonaConfused:
		fmt.Fprintf(progress,
			"Here is the plan. Take a look at the **Company Overview** and **Key Products/Services** sections below to get started.\n\n%s",
			doc.Render(),
		)
		progress.WriteString("\n\nWhat section would you like to review or update next? (e.g., 'Update risks with...')")
	default:
		fmt.Fprintf(progress, "Here is the full Account Plan:\n\n%s", doc.Render())
		progress.WriteString("\n\nYou can update any section by saying something like:\n")
		progress.WriteString("'Update risks with: Supply chain vulnerabilities due to global dependencies'")
	}

	return progress.String()
}

func ambiguousOptions(conflicts []research.Conflict) []string {
	for _, conflict := range conflicts {
		if conflict.Type != research.ConflictAmbiguousName {
			continue
		}
		options := conflict.Options
		if len(options) > 5 {
			options = options[:5]
		}
		return options
	}
	return nil
}

// handleUpdate replaces one plan section with user-provided content.
func (a *Agent) handleUpdate(session *state.Session, input string) string {
	req, ok := classifier.ParseUpdateRequest(input)
	if !ok || req.Content == "" {
		return "I'm happy to update the Account Plan! Please specify which section to update and what content to add.\n" +
			"For example: 'Update risks with: Regulatory compliance concerns in European markets'"
	}

	if classifier.HasConfusionSignals(req.Content) {
		session.Bump(state.SignalConfusion)
		return fmt.Sprintf(
			"I see you're still unsure. I can't update the **%s** section with content that suggests confusion.\nCould you try rephrasing the content you want to add?",
			req.Section,
		)
	}

	if _, hasOverview := session.Plan.Get(plan.SectionOverview); !hasOverview {
		return "❌ No Account Plan exists yet. Please research a company first by saying 'Research [Company Name]'."
	}

	session.Plan.Set(req.Section, req.Content)

	message := fmt.Sprintf("Updated **%s** section successfully.", req.Section.Title())
	if session.Persona == state.PersonaEfficient {
		content, _ := session.Plan.Get(req.Section)
		return fmt.Sprintf("✅ %s\n\n**Updated Content:**\n%s\n\nUse 'Show plan' to see the full document.", message, content)
	}
	return fmt.Sprintf("✅ %s\n\nHere's the updated plan:\n\n%s", message, session.Plan.Render())
}

// handleViewPlan shows the current plan.
func (a *Agent) handleViewPlan(session *state.Session) string {
	if _, ok := session.Plan.Get(plan.SectionOverview); !ok {
		return "You don't have an Account Plan yet. Would you like to research a company for you?\nJust tell me the company name!"
	}
	return session.Plan.Render()
}

// handleHelp lists capabilities, compressed for efficient users.
func (a *Agent) handleHelp(session *state.Session) string {
	if session.Persona == state.PersonaEfficient {
		return "Commands: Research [company], Show plan, Update [section] with: [content], Exit"
	}

	return `Here's how I can help you:

📊 **Research a Company**
   Just tell me a company name! Examples:
   - "Research Microsoft"
   - "Tell me about Tesla"
   - "Apple"

📋 **View Your Account Plan**
   - "Show plan"
   - "Display account plan"

✏️ **Update Plan Sections**
   - "Update risks with: [your content]"
   - "Change competitors to: [new list]"

   Sections you can update:
   • Company Overview
   • Key Products/Services
   • Competitors
   • Opportunities
   • Risks

🚪 **Exit**
   - "exit" or "quit"

What would you like to do?`
}

// handleGreeting greets the user, adjusted for persona and resumed sessions.
func (a *Agent) handleGreeting(session *state.Session) string {
	switch session.Persona {
	case state.PersonaConfused:
		session.SetPhase(state.PhaseGatheringCompany)
		return "Hello! 👋 No worries if you're not sure where to start - I'm here to guide you, step-by-step.\n\n" +
			"I'm your Company Research Assistant. Just tell me a company name like 'Microsoft' or 'Apple' and I'll start researching!\n\n" +
			"What company is on your mind?"
	case state.PersonaEfficient:
		return "Hello! Which company would you like to research today?"
	}

	if session.TargetCompany != "" {
		return fmt.Sprintf(
			"Hello again! We were working on research for **%s**. Would you like to continue, or research a different company?",
			session.TargetCompany,
		)
	}

	session.SetPhase(state.PhaseGatheringCompany)
	return "Hello! 👋 I'm your Company Research Assistant. I help you research companies and create " +
		"detailed Account Plans.\n\nWhich company would you like me to research today?"
}

// handleFarewell says goodbye, noting a finished plan when one exists.
func (a *Agent) handleFarewell(session *state.Session) string {
	if session.HasCompletePlan() {
		company := session.TargetCompany
		if company == "" {
			company = "the company"
		}
		return fmt.Sprintf(
			"Goodbye! Your Account Plan for **%s** is ready. Feel free to come back anytime if you need updates or want to research another company!",
			company,
		)
	}
	return "Goodbye! Feel free to return whenever you need company research assistance."
}

var offTopicRedirects = []string{
	"That's an interesting topic! However, I specialize in company research. " +
		"Is there a company you'd like me to help you research today?",
	"I appreciate the conversation! My expertise is in researching companies and creating Account Plans. " +
		"Would you like to explore information about a specific company?",
	"I'd love to help with that, but my specialty is company research. " +
		"If you have a company in mind you'd like to learn about, I'm your assistant!",
}

// handleOffTopic redirects to the task. Rotation keeps repeated redirects
// from sounding canned.
func (a *Agent) handleOffTopic(session *state.Session) string {
	session.Bump(state.SignalOffTopic)

	if session.Persona == state.PersonaEfficient {
		return "I'm focused on company research. Which company should I research?"
	}
	return offTopicRedirects[session.MessageCount%len(offTopicRedirects)]
}

// handleUnclear is the last resort: answer an open clarification if one
// exists, try contextual references, then fall back to guidance.
func (a *Agent) handleUnclear(ctx context.Context, session *state.Session, input string) string {
	if session.Phase == state.PhaseClarifying {
		if handled, response := a.handleConfirmationResponse(ctx, session, input); handled {
			return response
		}
		if handled, response := a.handleDisambiguationResponse(ctx, session, input); handled {
			return response
		}
		if session.Pending != nil && session.Pending.Type == state.ClarifyDisambiguation {
			return fmt.Sprintf(
				"I'm sorry, I didn't catch that. Please enter the number (1-%d) or type the company name to continue.",
				len(session.Pending.Options),
			)
		}
	}

	session.Bump(state.SignalConfusion)

	if resolved := resolver.ResolveContextual(input, session.History); resolved != "" {
		return a.handleResearchCandidate(ctx, session, resolved)
	}

	if session.Phase == state.PhaseGatheringCompany {
		return "I'm not sure I understood. Are you trying to tell me a company name to research?\n" +
			"You can simply type the company name, like **'Microsoft'** or **'Tesla'**.\n\n" +
			"I can also understand descriptions like **'the search engine company'** or **'the iPhone maker'**."
	}

	reply, err := a.generateContextual(ctx, session,
		fmt.Sprintf("I'm not sure what you mean by: '%s'. Can you please clarify?", input),
		"The user's message was unclear. Ask for clarification politely and offer concrete next steps, referring to their current phase/goal.",
	)
	if err != nil {
		a.logger.Debug("contextual fallback failed", zap.Error(err))
		return "I'm not quite sure what you mean. Could you rephrase that, or tell me a company name you'd like me to research?"
	}
	return reply
}
