// Package agent is the dialogue controller. It classifies each user turn,
// routes it to the right handler, and keeps the session's phase, persona and
// pending-clarification state coherent.
package agent

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/krish2213/company-research-assistant/internal/classifier"
	"github.com/krish2213/company-research-assistant/internal/model"
	"github.com/krish2213/company-research-assistant/internal/plan"
	"github.com/krish2213/company-research-assistant/internal/prompt"
	"github.com/krish2213/company-research-assistant/internal/research"
	"github.com/krish2213/company-research-assistant/internal/resolver"
	"github.com/krish2213/company-research-assistant/internal/state"
)

// Config wires the agent's collaborators.
type Config struct {
	Model  model.Completer
	Lookup research.Lookup
	Logger *zap.Logger
}

// Agent processes user turns against a session.
type Agent struct {
	model     model.Completer
	lookup    research.Lookup
	resolver  *resolver.Resolver
	assembler *plan.Assembler
	prompts   *prompt.Builder
	logger    *zap.Logger
}

// New creates an agent.
func New(cfg *Config) *Agent {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Agent{
		model:     cfg.Model,
		lookup:    cfg.Lookup,
		resolver:  resolver.NewResolver(cfg.Model, logger.Named("resolver")),
		assembler: plan.NewAssembler(cfg.Model, logger.Named("plan")),
		prompts:   prompt.NewBuilder(),
		logger:    logger,
	}
}

// Process handles one user turn and returns the assistant's reply. The
// session is mutated in place.
func (a *Agent) Process(ctx context.Context, session *state.Session, input string) string {
	input = classifier.CleanText(input)
	if input == "" {
		return "I didn't receive any input. How can I help you today?"
	}

	session.AddTurn(state.RoleUser, input)

	if classifier.HasConfusionSignals(input) {
		session.Bump(state.SignalConfusion)
	}
	if classifier.HasEfficiencySignals(input) {
		session.Bump(state.SignalDirectRequest)
	}
	lowered := strings.ToLower(input)
	if classifier.HesitationPrefix.MatchString(lowered) || strings.Contains(input, "?") {
		session.Bump(state.SignalConfusion)
	}

	intent := classifier.Classify(input)
	a.logger.Debug("classified turn",
		zap.String("intent", string(intent)),
		zap.String("phase", string(session.Phase)))

	// Pending clarifications are answered before normal intent routing so a
	// bare "yes" or "2" lands on the open question.
	if session.Phase == state.PhaseClarifying && session.Pending != nil {
		if intent == classifier.IntentConfirmation || intent == classifier.IntentSelection ||
			session.Pending.Type == state.ClarifyDisambiguation {

			if handled, response := a.handleConfirmationResponse(ctx, session, input); handled {
				return a.finishTurn(session, response)
			}
			if handled, response := a.handleDisambiguationResponse(ctx, session, input); handled {
				return a.finishTurn(session, response)
			}
		}
	}

	// A confirmation or selection with nothing pending has no referent.
	if intent == classifier.IntentConfirmation || intent == classifier.IntentSelection {
		return a.finishTurn(session, a.handleUnclear(ctx, session, input))
	}

	var response string
	switch intent {
	case classifier.IntentGreeting:
		response = a.handleGreeting(session)
	case classifier.IntentFarewell:
		response = a.handleFarewell(session)
	case classifier.IntentHelp:
		response = a.handleHelp(session)
	case classifier.IntentViewPlan:
		response = a.handleViewPlan(session)
	case classifier.IntentUpdate:
		response = a.handleUpdate(session, input)
	case classifier.IntentResearch, classifier.IntentPotentialResearch:
		response = a.handlePotentialResearch(ctx, session, input)
	case classifier.IntentOffTopic:
		response = a.handleOffTopic(session)
	default:
		response = a.handleUnclear(ctx, session, input)
	}

	return a.finishTurn(session, response)
}

// finishTurn applies persona adaptation and records the assistant reply.
func (a *Agent) finishTurn(session *state.Session, response string) string {
	response = adaptResponse(response, session)
	session.AddTurn(state.RoleAssistant, response)
	return response
}

// generateContextual asks the model for a free-form reply grounded in the
// session context.
func (a *Agent) generateContextual(ctx context.Context, session *state.Session, userMessage, additional string) (string, error) {
	style := personaStyle(session.Persona)
	system := a.prompts.BuildSystemPrompt(prompt.SystemContext{
		Phase:         string(session.Phase),
		TargetCompany: session.TargetCompany,
		Persona:       string(session.Persona),
		Tone:          style.Tone,
		DetailLevel:   style.DetailLevel,
		PlanComplete:  session.HasCompletePlan(),
		Additional:    additional,
	})

	messages := []model.Message{model.System(system)}
	for _, turn := range session.RecentContext(6) {
		messages = append(messages, model.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, model.User(userMessage))

	return a.model.Complete(ctx, messages, 0.7)
}

// recentContextText joins the last n turns for the extraction prompt.
func recentContextText(session *state.Session, n int) string {
	turns := session.RecentContext(n)
	parts := make([]string, 0, len(turns))
	for _, turn := range turns {
		parts = append(parts, turn.Content)
	}
	return strings.Join(parts, "\n")
}
