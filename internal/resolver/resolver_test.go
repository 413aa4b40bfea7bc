package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krish2213/company-research-assistant/internal/model"
	"github.com/krish2213/company-research-assistant/internal/state"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(ctx context.Context, messages []model.Message, temperature float64) (string, error) {
	return s.reply, s.err
}

func (s stubCompleter) Name() string { return "stub" }

// offlineResolver never reaches the model path successfully, so only the
// deterministic tiers can answer.
func offlineResolver() *Resolver {
	return NewResolver(stubCompleter{err: errors.New("offline")}, nil)
}

func TestExtractStopwordGate(t *testing.T) {
	r := offlineResolver()

	for _, input := range []string{"yes", "ok", "hello", "help", "that company", "the one"} {
		got := r.Extract(context.Background(), input, "")
		assert.False(t, got.IsCompanyQuery, "input %q", input)
		assert.Equal(t, 1.0, got.Confidence, "input %q", input)
	}
}

func TestExtractNumericGate(t *testing.T) {
	r := offlineResolver()

	got := r.Extract(context.Background(), "2", "")
	assert.False(t, got.IsCompanyQuery)
	got = r.Extract(context.Background(), "3.", "")
	assert.False(t, got.IsCompanyQuery)
}

func TestExtractAlias(t *testing.T) {
	r := offlineResolver()

	got := r.Extract(context.Background(), "the cloud company", "")
	require.True(t, got.IsCompanyQuery)
	assert.Equal(t, "Amazon", got.Company)
	assert.Equal(t, 0.65, got.Confidence)
	assert.True(t, got.IsAliasMatch)
	assert.Equal(t, "the cloud company", got.CorrectedFrom)
}

func TestExtractExactFuzzyMatch(t *testing.T) {
	r := offlineResolver()

	got := r.Extract(context.Background(), "apple", "")
	require.True(t, got.IsCompanyQuery)
	assert.Equal(t, "Apple", got.Company)
	assert.Equal(t, 1.0, got.Confidence)
	assert.Empty(t, got.CorrectedFrom)
	assert.False(t, got.IsAliasMatch)
}

func TestExtractStripsCommandPrefix(t *testing.T) {
	r := offlineResolver()

	got := r.Extract(context.Background(), "Research Apple", "")
	require.True(t, got.IsCompanyQuery)
	assert.Equal(t, "Apple", got.Company)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestExtractModelPath(t *testing.T) {
	reply := `{"is_company_query": true, "extracted_company": "Deloitte", "corrected_from": null, "confidence": 0.9, "reasoning": "Direct mention"}`
	r := NewResolver(stubCompleter{reply: reply}, nil)

	got := r.Extract(context.Background(), "the big four consultancy deloite", "")
	require.True(t, got.IsCompanyQuery)
	assert.Equal(t, "Deloitte", got.Company)
	assert.Equal(t, 0.9, got.Confidence)
}

func TestExtractHeuristicFallback(t *testing.T) {
	r := offlineResolver()

	got := r.Extract(context.Background(), "Qqzzmm", "")
	assert.True(t, got.IsCompanyQuery)
	assert.Equal(t, "Qqzzmm", got.Company)
	assert.Equal(t, 0.5, got.Confidence)

	// Lowercase single unknown words are not companies.
	got = r.Extract(context.Background(), "qqzzmm", "")
	assert.False(t, got.IsCompanyQuery)
}

func TestNeedsConfirmation(t *testing.T) {
	cases := []struct {
		name string
		e    Extraction
		want bool
	}{
		{"not a query", Extraction{Confidence: 1.0}, false},
		{"high confidence", Extraction{IsCompanyQuery: true, Company: "Apple", Confidence: 0.95}, false},
		{"exactly at threshold", Extraction{IsCompanyQuery: true, Company: "Apple", Confidence: 0.85}, false},
		{"below threshold", Extraction{IsCompanyQuery: true, Company: "Apple", Confidence: 0.84}, true},
		{"corrected always confirms", Extraction{IsCompanyQuery: true, Company: "Microsoft", CorrectedFrom: "micrsoft", Confidence: 0.95}, true},
		{"alias always confirms", Extraction{IsCompanyQuery: true, Company: "Amazon", Confidence: 0.95, IsAliasMatch: true}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NeedsConfirmation(tc.e))
		})
	}
}

func TestConfirmationMessageVariants(t *testing.T) {
	alias := Extraction{IsCompanyQuery: true, Company: "Amazon", CorrectedFrom: "the cloud company", IsAliasMatch: true}
	assert.Contains(t, ConfirmationMessage(alias), "I assume you mean **Amazon**")
	assert.Contains(t, ConfirmationMessage(alias), "the cloud company")

	corrected := Extraction{IsCompanyQuery: true, Company: "Microsoft", CorrectedFrom: "micrsoft"}
	assert.Contains(t, ConfirmationMessage(corrected), "Did you mean **Microsoft**?")

	plain := Extraction{IsCompanyQuery: true, Company: "Acme", Confidence: 0.7}
	assert.Contains(t, ConfirmationMessage(plain), "Just to confirm")
}

func TestStripCommandPrefix(t *testing.T) {
	assert.Equal(t, "Apple", StripCommandPrefix("Research Apple"))
	assert.Equal(t, "Tesla", StripCommandPrefix("tell me about Tesla"))
	assert.Equal(t, "Apple", StripCommandPrefix("Apple"))
}

func TestFuzzyMatchExact(t *testing.T) {
	matched, score, ok := FuzzyMatch("nvidia", 75)
	require.True(t, ok)
	assert.Equal(t, "NVIDIA", matched)
	assert.Equal(t, 100, score)

	_, _, ok = FuzzyMatch("q", 75)
	assert.False(t, ok)
}

func TestValidateCompanyName(t *testing.T) {
	name, err := ValidateCompanyName("  Acme   Corp  ")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", name)

	for _, bad := range []string{"", "a", "12345", "Acme<script>", "yes", "goodbye"} {
		_, err := ValidateCompanyName(bad)
		assert.Error(t, err, "input %q", bad)
	}

	_, err = ValidateCompanyName(string(make([]byte, 101)))
	assert.Error(t, err)
}

func TestResolveContextual(t *testing.T) {
	history := []state.Turn{
		{Role: state.RoleUser, Content: "research apple"},
		{Role: state.RoleAssistant, Content: "Found information about **Apple**."},
	}

	assert.Equal(t, "Apple", ResolveContextual("tell me more about that company", history))
	assert.Empty(t, ResolveContextual("what about Samsung", history))
	assert.Empty(t, ResolveContextual("that company", nil))
}

func TestIsNonCompanyWord(t *testing.T) {
	assert.True(t, IsNonCompanyWord("yes"))
	assert.True(t, IsNonCompanyWord("the company"))
	assert.False(t, IsNonCompanyWord("Apple"))
}
