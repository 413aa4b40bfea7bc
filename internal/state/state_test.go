package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krish2213/company-research-assistant/internal/plan"
)

func TestNewSession(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, PhaseGreeting, s.Phase)
	assert.Equal(t, PersonaUnknown, s.Persona)
	assert.Zero(t, s.MessageCount)
	assert.Nil(t, s.Pending)
}

func TestAddTurnAndRecentContext(t *testing.T) {
	s := New()
	s.AddTurn(RoleUser, "hello")
	s.AddTurn(RoleAssistant, "hi there")
	s.AddTurn(RoleUser, "research apple")

	assert.Equal(t, 3, s.MessageCount)

	recent := s.RecentContext(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "hi there", recent[0].Content)
	assert.Equal(t, "research apple", recent[1].Content)

	assert.Len(t, s.RecentContext(10), 3)
	assert.Nil(t, s.RecentContext(0))
}

func TestPersonaConfusedAtTwoSignals(t *testing.T) {
	s := New()
	s.Bump(SignalConfusion)
	assert.Equal(t, PersonaUnknown, s.Persona)
	s.Bump(SignalConfusion)
	assert.Equal(t, PersonaConfused, s.Persona)
}

func TestPersonaChattyAtTwoOffTopic(t *testing.T) {
	s := New()
	s.Bump(SignalOffTopic)
	s.Bump(SignalOffTopic)
	assert.Equal(t, PersonaChatty, s.Persona)
}

func TestPersonaEfficientRequiresNoClarifications(t *testing.T) {
	s := New()
	s.Bump(SignalDirectRequest)
	s.Bump(SignalDirectRequest)
	assert.Equal(t, PersonaEfficient, s.Persona)

	other := New()
	other.Bump(SignalClarificationRequest)
	other.Bump(SignalDirectRequest)
	other.Bump(SignalDirectRequest)
	assert.Equal(t, PersonaUnknown, other.Persona)
}

func TestPersonaConfusionOutranksEfficiency(t *testing.T) {
	s := New()
	s.Bump(SignalDirectRequest)
	s.Bump(SignalDirectRequest)
	require.Equal(t, PersonaEfficient, s.Persona)

	s.Bump(SignalConfusion)
	s.Bump(SignalConfusion)
	assert.Equal(t, PersonaConfused, s.Persona)
}

func TestClearResearch(t *testing.T) {
	s := New()
	s.TargetCompany = "Acme"
	s.ClearResearch()
	assert.Empty(t, s.TargetCompany)
	assert.Nil(t, s.Research)
}

func TestHasCompletePlan(t *testing.T) {
	s := New()
	assert.False(t, s.HasCompletePlan())

	s.Plan = plan.NewDocument(time.Now())
	assert.False(t, s.HasCompletePlan())

	for _, section := range plan.Sections() {
		s.Plan.Set(section, "content")
	}
	assert.True(t, s.HasCompletePlan())
}

func TestSummary(t *testing.T) {
	s := New()
	out := s.Summary()
	assert.Contains(t, out, "Phase: greeting")
	assert.Contains(t, out, "Target Company: Not set")
	assert.Contains(t, out, "Persona: unknown")
	assert.Contains(t, out, "Plan Complete: false")
}
