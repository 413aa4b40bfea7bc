package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krish2213/company-research-assistant/internal/plan"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		input string
		want  Intent
	}{
		{"hi", IntentGreeting},
		{"Hello there", IntentGreeting},
		{"um, hi?", IntentGreeting},
		{"hey", IntentGreeting},

		{"bye", IntentFarewell},
		{"thanks, that's all", IntentFarewell},

		{"help", IntentHelp},
		{"what can you do", IntentHelp},
		{"how do i update a section", IntentHelp},

		{"show plan", IntentViewPlan},
		{"display the account plan", IntentViewPlan},
		{"view plan", IntentViewPlan},

		{"Update risks with: supply chain issues", IntentUpdate},
		{"change competitors to: Microsoft, Google", IntentUpdate},

		{"Research Apple", IntentResearch},
		{"tell me about Tesla", IntentResearch},
		{"look up Infosys", IntentResearch},

		{"yes", IntentConfirmation},
		{"nope", IntentConfirmation},
		{"go ahead", IntentConfirmation},

		{"2", IntentSelection},
		{"3.", IntentSelection},

		{"what's the weather today", IntentOffTopic},
		{"tell me a joke", IntentOffTopic},
		{"how are you", IntentOffTopic},

		{"Microsoft", IntentPotentialResearch},
		{"the cloud company", IntentPotentialResearch},
		{"Acme Widgets", IntentPotentialResearch},

		{"i don't know", IntentUnclear},
		{"I'm not sure what to do", IntentUnclear},
		{"a", IntentUnclear},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.input), "input %q", tc.input)
		})
	}
}

func TestClassifyConfusionBeatsResearch(t *testing.T) {
	// A confused question must never be read as a company name.
	assert.Equal(t, IntentUnclear, Classify("i don't understand this"))
	assert.Equal(t, IntentUnclear, Classify("not sure what you mean"))
}

func TestClassifyConfirmationBeatsPotentialResearch(t *testing.T) {
	// "ok" is two characters and not reserved-free, but confirmation wins.
	assert.Equal(t, IntentConfirmation, Classify("ok"))
	assert.Equal(t, IntentConfirmation, Classify("um, yes"))
}

func TestParseUpdateRequest(t *testing.T) {
	cases := []struct {
		input       string
		wantSection plan.Section
		wantContent string
	}{
		{
			"Update risks with: Regulatory compliance concerns",
			plan.SectionRisks,
			"Regulatory compliance concerns",
		},
		{
			"change the competitors to: Microsoft, Google, Meta",
			plan.SectionCompetitors,
			"Microsoft, Google, Meta",
		},
		{
			`Update opportunities with: "expansion into APAC"`,
			plan.SectionOpportunities,
			"expansion into APAC",
		},
		{
			"the overview should say: A global leader in widgets",
			plan.SectionOverview,
			"A global leader in widgets",
		},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			req, ok := ParseUpdateRequest(tc.input)
			require.True(t, ok)
			assert.Equal(t, tc.wantSection, req.Section)
			assert.Equal(t, tc.wantContent, req.Content)
		})
	}
}

func TestParseUpdateRequestRejectsUnknownSection(t *testing.T) {
	_, ok := ParseUpdateRequest("update the budget with: more money")
	assert.False(t, ok)
}

func TestSignals(t *testing.T) {
	assert.True(t, HasConfusionSignals("I don't know what to do"))
	assert.True(t, HasConfusionSignals("um... maybe?"))
	assert.True(t, HasConfusionSignals("huh"))
	assert.False(t, HasConfusionSignals("Research Apple"))

	assert.True(t, HasEfficiencySignals("just the facts"))
	assert.True(t, HasEfficiencySignals("quick summary please"))
	assert.True(t, HasEfficiencySignals("tldr"))
	assert.False(t, HasEfficiencySignals("tell me everything about Tesla"))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "hello world", CleanText("  hello   world  "))
	assert.Equal(t, "", CleanText("   "))
	assert.Equal(t, "a b", CleanText("a\n\tb"))
}

func TestIsNumericSelection(t *testing.T) {
	assert.True(t, IsNumericSelection("1"))
	assert.True(t, IsNumericSelection(" 42. "))
	assert.False(t, IsNumericSelection("option 2"))
	assert.False(t, IsNumericSelection("1st"))
}
