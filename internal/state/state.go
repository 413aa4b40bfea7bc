// Package state holds the mutable conversation record for one session.
//
// A Session is exclusively owned by the dialogue controller for its lifetime;
// nothing here is safe for concurrent use and nothing persists past the
// process.
package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/krish2213/company-research-assistant/internal/plan"
	"github.com/krish2213/company-research-assistant/internal/research"
)

// Phase tracks where we are in the conversation flow.
type Phase string

const (
	PhaseGreeting         Phase = "greeting"
	PhaseGatheringCompany Phase = "gathering_company"
	PhaseResearching      Phase = "researching"
	PhaseClarifying       Phase = "clarifying"
	PhaseGeneratingPlan   Phase = "generating_plan"
	PhasePlanReady        Phase = "plan_ready"
	PhaseUpdatingPlan     Phase = "updating_plan"
	PhaseIdle             Phase = "idle"
)

// Persona is the detected user interaction style.
type Persona string

const (
	PersonaUnknown   Persona = "unknown"
	PersonaConfused  Persona = "confused"
	PersonaEfficient Persona = "efficient"
	PersonaChatty    Persona = "chatty"
	PersonaEdgeCase  Persona = "edge_case"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in the conversation history. Immutable once appended.
type Turn struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// Signal names one persona-detection counter.
type Signal string

const (
	SignalConfusion            Signal = "confusion_count"
	SignalOffTopic             Signal = "off_topic_count"
	SignalDirectRequest        Signal = "direct_requests"
	SignalClarificationRequest Signal = "clarification_requests"
)

// Signals accumulates behavioral counters. Counters only ever increase.
type Signals struct {
	Confusion             int
	OffTopic              int
	DirectRequests        int
	ClarificationRequests int
}

// ClarificationType tags the pending-clarification variant.
type ClarificationType string

const (
	ClarifyConfirmation   ClarificationType = "company_confirmation"
	ClarifyDisambiguation ClarificationType = "company_disambiguation"
	ClarifyLowConfidence  ClarificationType = "low_confidence"
)

// PendingClarification is the single outstanding question the assistant is
// waiting on. At most one exists per session.
type PendingClarification struct {
	Type          ClarificationType
	Company       string
	OriginalInput string
	Confidence    float64
	IsAliasMatch  bool
	Options       []string // disambiguation only, at most 5
}

// Session is the conversation state record.
type Session struct {
	ID           string
	StartedAt    time.Time
	LastActivity time.Time

	Phase        Phase
	MessageCount int
	History      []Turn

	Persona Persona
	Signals Signals

	TargetCompany string
	Research      *research.Snapshot
	Plan          *plan.Document
	Pending       *PendingClarification
}

// New creates a fresh session in the greeting phase.
func New() *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.New().String(),
		StartedAt:    now,
		LastActivity: now,
		Phase:        PhaseGreeting,
		Persona:      PersonaUnknown,
	}
}

// AddTurn appends a turn to the conversation history.
func (s *Session) AddTurn(role, content string) {
	now := time.Now()
	s.History = append(s.History, Turn{Role: role, Content: content, Timestamp: now})
	s.MessageCount++
	s.LastActivity = now
}

// RecentContext returns the most recent n turns.
func (s *Session) RecentContext(n int) []Turn {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

// SetPhase updates the conversation phase.
func (s *Session) SetPhase(phase Phase) {
	s.Phase = phase
}

// Bump increments a persona signal counter and recomputes the persona.
// Precedence is fixed: confusion, then off-topic, then efficiency; the
// persona is derived from cumulative counters every call, so it never decays
// on its own.
func (s *Session) Bump(signal Signal) {
	switch signal {
	case SignalConfusion:
		s.Signals.Confusion++
	case SignalOffTopic:
		s.Signals.OffTopic++
	case SignalDirectRequest:
		s.Signals.DirectRequests++
	case SignalClarificationRequest:
		s.Signals.ClarificationRequests++
	}
	s.recomputePersona()
}

func (s *Session) recomputePersona() {
	switch {
	case s.Signals.Confusion >= 2:
		s.Persona = PersonaConfused
	case s.Signals.OffTopic >= 2:
		s.Persona = PersonaChatty
	case s.Signals.DirectRequests >= 2 && s.Signals.ClarificationRequests == 0:
		s.Persona = PersonaEfficient
	}
}

// ClearResearch drops research context ahead of a new company search.
func (s *Session) ClearResearch() {
	s.Research = nil
	s.TargetCompany = ""
}

// HasCompletePlan reports whether all five plan sections are filled.
func (s *Session) HasCompletePlan() bool {
	return s.Plan.Complete()
}

// Summary returns a human-readable state summary for debug output.
func (s *Session) Summary() string {
	target := s.TargetCompany
	if target == "" {
		target = "Not set"
	}
	return fmt.Sprintf(
		"Session: %s\nPhase: %s\nMessages: %d\nTarget Company: %s\nPersona: %s\nPlan Complete: %t",
		s.ID, s.Phase, s.MessageCount, target, s.Persona, s.HasCompletePlan(),
	)
}
