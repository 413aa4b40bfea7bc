// Package resolver maps free-form user text to canonical company names.
//
// Resolution runs cheapest-first: stopword and numeric gates, then the alias
// table, then fuzzy matching against the known-company list, and only then a
// model call. Every path yields an Extraction carrying the confidence and
// provenance the confirmation gate needs.
package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"go.uber.org/zap"

	"github.com/krish2213/company-research-assistant/internal/classifier"
	apperrors "github.com/krish2213/company-research-assistant/internal/errors"
	"github.com/krish2213/company-research-assistant/internal/model"
	"github.com/krish2213/company-research-assistant/internal/state"
)

// Extraction is the outcome of resolving one user message.
type Extraction struct {
	IsCompanyQuery bool
	Company        string
	CorrectedFrom  string
	Confidence     float64
	Reasoning      string
	IsAliasMatch   bool
}

const extractionPrompt = `You are a company name extraction assistant. Your job is to analyze user input and determine:
1. Whether they are asking about a specific company
2. What company they mean (correcting misspellings if needed)
3. Your confidence level

IMPORTANT RULES:
- Words like "yes", "no", "ok", "proceed", "continue", "stop", "help" are NEVER company names
- Numbers like "1", "2", "3" are selection responses, not company names
- Phrases like "that company", "the one", "this one" need context to resolve
- Misspellings should be corrected: "micrsooft" -> "Microsoft", "gogle" -> "Google"
- Contextual hints should be used: "the search engine" -> "Google", "iPhone maker" -> "Apple"

User's current message: "%s"
Previous context (if any): "%s"

Respond ONLY with a JSON object (no markdown, no extra text):
{
    "is_company_query": true/false,
    "extracted_company": "company name or null",
    "corrected_from": "original misspelling or null",
    "confidence": 0.0 to 1.0,
    "reasoning": "brief explanation"
}

Examples:
- "micrsooft" -> {"is_company_query": true, "extracted_company": "Microsoft", "corrected_from": "micrsooft", "confidence": 0.9, "reasoning": "Misspelling of Microsoft"}
- "yes" -> {"is_company_query": false, "extracted_company": null, "corrected_from": null, "confidence": 1.0, "reasoning": "Confirmation word, not a company"}
- "the search engine company" -> {"is_company_query": true, "extracted_company": "Google", "corrected_from": null, "confidence": 0.85, "reasoning": "Contextual reference to Google"}
- "Research Apple" -> {"is_company_query": true, "extracted_company": "Apple", "corrected_from": null, "confidence": 1.0, "reasoning": "Direct company mention"}`

// Resolver extracts company names, falling back to a model for inputs the
// deterministic tables cannot place.
type Resolver struct {
	model  model.Completer
	logger *zap.Logger
}

// NewResolver creates a resolver backed by the given model.
func NewResolver(completer model.Completer, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{model: completer, logger: logger}
}

// StripCommandPrefix removes a leading research verb: "Research Apple"
// becomes "Apple".
func StripCommandPrefix(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, prefix := range commandPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return strings.TrimSpace(text[len(prefix):])
		}
	}
	return text
}

// IsNonCompanyWord reports whether the text is a stopword that must never
// resolve to a company.
func IsNonCompanyWord(text string) bool {
	return nonCompanyWords[strings.ToLower(strings.TrimSpace(text))]
}

var pureNumberRe = regexp.MustCompile(`^\d+\.?$`)

// FuzzyMatch scores the query against the known-company list. An exact
// case-insensitive hit returns 100; otherwise the best WRatio score at or
// above threshold wins.
func FuzzyMatch(query string, threshold int) (string, int, bool) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return "", 0, false
	}

	lowered := strings.ToLower(query)
	for _, company := range knownCompanies {
		if strings.ToLower(company) == lowered {
			return company, 100, true
		}
	}

	best := ""
	bestScore := 0
	for _, company := range knownCompanies {
		score := fuzzy.WRatio(query, company)
		if score >= threshold && score > bestScore {
			best = company
			bestScore = score
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestScore, true
}

// Extract resolves the message to a company name. The recent-context string
// is only consulted by the model path.
func (r *Resolver) Extract(ctx context.Context, text, recentContext string) Extraction {
	text = StripCommandPrefix(text)
	lowered := strings.ToLower(strings.TrimSpace(text))

	if nonCompanyWords[lowered] {
		return Extraction{
			Confidence: 1.0,
			Reasoning:  fmt.Sprintf("'%s' is a common word, not a company name", text),
		}
	}

	if pureNumberRe.MatchString(lowered) {
		return Extraction{
			Confidence: 1.0,
			Reasoning:  "Numeric input - likely a selection response",
		}
	}

	// Aliases always run through confirmation, so their confidence stays
	// below the auto-proceed bar.
	for _, entry := range companyAliases {
		if strings.Contains(lowered, entry.Alias) {
			return Extraction{
				IsCompanyQuery: true,
				Company:        entry.Company,
				CorrectedFrom:  entry.Alias,
				Confidence:     0.65,
				Reasoning:      fmt.Sprintf("Matched contextual alias '%s' to %s", entry.Alias, entry.Company),
				IsAliasMatch:   true,
			}
		}
	}

	if matched, score, ok := FuzzyMatch(text, 75); ok {
		correctedFrom := ""
		if score < 100 {
			correctedFrom = text
		}
		return Extraction{
			IsCompanyQuery: true,
			Company:        matched,
			CorrectedFrom:  correctedFrom,
			Confidence:     float64(score) / 100.0,
			Reasoning:      fmt.Sprintf("Fuzzy matched to %s with %d%% confidence", matched, score),
		}
	}

	return r.extractWithModel(ctx, text, recentContext)
}

func (r *Resolver) extractWithModel(ctx context.Context, text, recentContext string) Extraction {
	if recentContext == "" {
		recentContext = "No previous context"
	} else if len(recentContext) > 500 {
		recentContext = recentContext[:500]
	}

	messages := []model.Message{
		model.System("You extract company names from user input. Respond only with valid JSON."),
		model.User(fmt.Sprintf(extractionPrompt, text, recentContext)),
	}

	reply, err := r.model.Complete(ctx, messages, 0.1)
	if err != nil {
		r.logger.Debug("extraction call failed, using heuristic", zap.Error(err))
		return heuristicExtraction(text)
	}

	var decoded struct {
		IsCompanyQuery   bool     `json:"is_company_query"`
		ExtractedCompany *string  `json:"extracted_company"`
		CorrectedFrom    *string  `json:"corrected_from"`
		Confidence       float64  `json:"confidence"`
		Reasoning        string   `json:"reasoning"`
	}
	if err := model.DecodeJSON(reply, &decoded); err != nil {
		r.logger.Debug("extraction parse failed, using heuristic", zap.Error(err))
		return heuristicExtraction(text)
	}

	result := Extraction{
		IsCompanyQuery: decoded.IsCompanyQuery,
		Confidence:     decoded.Confidence,
		Reasoning:      decoded.Reasoning,
	}
	if decoded.ExtractedCompany != nil {
		result.Company = *decoded.ExtractedCompany
	}
	if decoded.CorrectedFrom != nil {
		result.CorrectedFrom = *decoded.CorrectedFrom
	}
	return result
}

// heuristicExtraction guesses from shape alone: short capitalized phrases are
// probably company names.
func heuristicExtraction(text string) Extraction {
	words := strings.Fields(text)
	shortEnough := len(words) <= 3 && len(words) > 0
	capitalized := false
	for _, r := range text {
		capitalized = unicode.IsUpper(r)
		break
	}

	result := Extraction{
		IsCompanyQuery: shortEnough && capitalized,
		Confidence:     0.5,
		Reasoning:      "Model extraction unavailable, using heuristic",
	}
	if shortEnough {
		result.Company = text
	}
	return result
}

// NeedsConfirmation decides whether to ask before researching. Aliases and
// corrections always confirm; otherwise only confidence at or above 0.85
// proceeds directly.
func NeedsConfirmation(e Extraction) bool {
	if !e.IsCompanyQuery {
		return false
	}
	if e.IsAliasMatch {
		return true
	}
	if e.CorrectedFrom != "" {
		return true
	}
	return e.Confidence < 0.85
}

// ConfirmationMessage formats the question asked before researching an
// uncertain match.
func ConfirmationMessage(e Extraction) string {
	if e.IsAliasMatch {
		return fmt.Sprintf(
			"I assume you mean **%s** (based on your reference to '%s').\nPlease reply 'yes' to confirm or provide the correct company name.",
			e.Company, e.CorrectedFrom,
		)
	}
	if e.CorrectedFrom != "" {
		return fmt.Sprintf(
			"Did you mean **%s**? (I interpreted '%s' as %s)\nPlease reply 'yes' to confirm or provide the correct company name.",
			e.Company, e.CorrectedFrom, e.Company,
		)
	}
	return fmt.Sprintf(
		"Just to confirm — would you like me to research **%s**?\nPlease reply 'yes' to confirm or provide a different company name.",
		e.Company,
	)
}

// IsContextualPhrase reports whether the message refers back to an earlier
// company mention rather than naming one.
func IsContextualPhrase(message string) bool {
	lowered := strings.ToLower(strings.TrimSpace(message))
	for _, phrase := range contextualPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// ResolveContextual resolves references like "that company" to the most
// recent company the assistant mentioned. Returns "" when the message is not
// contextual or no mention is found.
func ResolveContextual(message string, history []state.Turn) string {
	if !IsContextualPhrase(message) {
		return ""
	}

	start := 0
	if len(history) > 10 {
		start = len(history) - 10
	}
	recent := history[start:]
	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].Role != state.RoleAssistant {
			continue
		}
		content := strings.ToLower(recent[i].Content)
		for _, company := range knownCompanies {
			if strings.Contains(content, strings.ToLower(company)) {
				return company
			}
		}
	}
	return ""
}

var (
	allDigitsRe    = regexp.MustCompile(`^[\d\s]+$`)
	invalidCharsRe = regexp.MustCompile("[<>{}\\[\\]\\\\|`~]")
)

// ValidateCompanyName cleans and validates a candidate name, returning the
// cleaned form or an invalid-name error.
func ValidateCompanyName(name string) (string, error) {
	name = classifier.CleanText(name)

	switch {
	case name == "":
		return "", apperrors.New(apperrors.CodeInvalidCompanyName, "Company name cannot be empty.", apperrors.CategoryUser)
	case len(name) < 2:
		return "", apperrors.New(apperrors.CodeInvalidCompanyName, "Company name is too short.", apperrors.CategoryUser)
	case len(name) > 100:
		return "", apperrors.New(apperrors.CodeInvalidCompanyName, "Company name is too long.", apperrors.CategoryUser)
	case allDigitsRe.MatchString(name):
		return "", apperrors.New(apperrors.CodeInvalidCompanyName, "Company name cannot be just numbers.", apperrors.CategoryUser)
	case invalidCharsRe.MatchString(name):
		return "", apperrors.New(apperrors.CodeInvalidCompanyName, "Company name contains invalid characters.", apperrors.CategoryUser)
	}

	lowered := strings.ToLower(name)
	if classifier.ConfirmationWords[lowered] || classifier.GreetingWords[lowered] || classifier.FarewellWords[lowered] {
		return "", apperrors.New(apperrors.CodeInvalidCompanyName,
			fmt.Sprintf("'%s' doesn't appear to be a company name.", name), apperrors.CategoryUser)
	}

	return name, nil
}
