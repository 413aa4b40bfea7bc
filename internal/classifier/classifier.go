// Package classifier detects user intent from raw chat input using an
// ordered cascade of lexical rules. It never calls a model; every
// classification is deterministic and explainable.
package classifier

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentGreeting          Intent = "greeting"
	IntentFarewell          Intent = "farewell"
	IntentHelp              Intent = "help"
	IntentViewPlan          Intent = "view_plan"
	IntentUpdate            Intent = "update"
	IntentResearch          Intent = "research"
	IntentPotentialResearch Intent = "potential_research"
	IntentConfirmation      Intent = "confirmation"
	IntentSelection         Intent = "selection"
	IntentOffTopic          Intent = "off_topic"
	IntentUnclear           Intent = "unclear"
)

var (
	confusionPhraseRe = regexp.MustCompile(`i don'?t (know|understand|get)|not sure|help me understand`)

	greetingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(um+|uh+|er+|ah+)?[,\s]*(hi|hello|hey|hii+|greetings)\b`),
		regexp.MustCompile(`^(hi|hello|hey|hii+)\b`),
		regexp.MustCompile(`^(um+|uh+|er+|ah+)\??$`),
	}

	helpRe     = regexp.MustCompile(`^help$|^what can you|^how do i|^how to`)
	viewPlanRe = regexp.MustCompile(`(show|display|view|see|print)\s+(the\s+)?(plan|account plan|report)`)

	researchPrefixRe = regexp.MustCompile(`^(research|look up|find|analyze|tell me about|information on|learn about)\s+`)

	offTopicPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bweather\b`), regexp.MustCompile(`\brain\b`),
		regexp.MustCompile(`\bsnow\b`), regexp.MustCompile(`\bsunny\b`),
		regexp.MustCompile(`\bjoke\b`), regexp.MustCompile(`\bfun fact\b`),
		regexp.MustCompile(`\bmake me laugh\b`),
		regexp.MustCompile(`\btell me something funny\b`),
		regexp.MustCompile(`\bstory\b`), regexp.MustCompile(`\btell me a story\b`),
		regexp.MustCompile(`\bmovie recommendation\b`),
		regexp.MustCompile(`\bsong recommendation\b`),
		regexp.MustCompile(`\brecipe\b`), regexp.MustCompile(`\bhow to cook\b`),
		regexp.MustCompile(`\bwhat should i eat\b`),
		regexp.MustCompile(`\bbook me a flight\b`),
		regexp.MustCompile(`\bbook a ticket\b`),
		regexp.MustCompile(`\bflight status\b`),
		regexp.MustCompile(`\bhotel\b`), regexp.MustCompile(`\bwhere is\b`),
		regexp.MustCompile(`\bdirections to\b`),
		regexp.MustCompile(`\bsports score\b`),
		regexp.MustCompile(`\bcricket score\b`),
		regexp.MustCompile(`\bwho won the match\b`),
		regexp.MustCompile(`\bhow are you\b`), regexp.MustCompile(`\bwho are you\b`),
		regexp.MustCompile(`\bwhat are you\b`), regexp.MustCompile(`\byour name\b`),
		regexp.MustCompile(`\bwhere are you from\b`),
		regexp.MustCompile(`\bfix my phone\b`), regexp.MustCompile(`\bcalculator\b`),
		regexp.MustCompile(`\bunit conversion\b`),
		regexp.MustCompile(`\bsolve this math\b`), regexp.MustCompile(`\bcalculate\b`),
		regexp.MustCompile(`\bintegral of\b`), regexp.MustCompile(`\bdifferentiation\b`),
		regexp.MustCompile(`\brelationship advice\b`),
		regexp.MustCompile(`\blove advice\b`),
		regexp.MustCompile(`\bgirlfriend\b`), regexp.MustCompile(`\bboyfriend\b`),
		regexp.MustCompile(`\bcrush\b`),
		regexp.MustCompile(`\bmeaning of life\b`),
		regexp.MustCompile(`\bpurpose of life\b`), regexp.MustCompile(`\bexistence\b`),
		regexp.MustCompile(`\bwho will win\b`), regexp.MustCompile(`\bhoroscope\b`),
		regexp.MustCompile(`\bzodiac\b`),
	}
)

// Classify resolves a message to exactly one intent. Rules run in a fixed
// priority order; the first match wins. Confusion phrases are checked ahead
// of everything so "I don't know" never reads as a company name.
func Classify(text string) Intent {
	cleaned := CleanText(text)
	lowered := strings.ToLower(cleaned)
	stripped := StripHesitation(lowered)

	if HasConfusionSignals(lowered) || HasConfusionSignals(stripped) {
		if confusionPhraseRe.MatchString(lowered) {
			return IntentUnclear
		}
	}

	if IsConfirmationWord(lowered) || IsConfirmationWord(stripped) {
		return IntentConfirmation
	}

	if IsNumericSelection(cleaned) {
		return IntentSelection
	}

	for _, p := range greetingPatterns {
		if p.MatchString(lowered) {
			return IntentGreeting
		}
	}
	if GreetingWords[stripped] {
		return IntentGreeting
	}

	if isFarewell(lowered) {
		return IntentFarewell
	}

	if helpRe.MatchString(lowered) {
		return IntentHelp
	}

	if viewPlanRe.MatchString(lowered) {
		return IntentViewPlan
	}

	if req, ok := ParseUpdateRequest(cleaned); ok && req.Section != "" {
		return IntentUpdate
	}

	if researchPrefixRe.MatchString(lowered) {
		return IntentResearch
	}

	for _, p := range offTopicPatterns {
		if p.MatchString(lowered) {
			return IntentOffTopic
		}
	}

	if len(cleaned) >= 2 && !IsReserved(lowered) {
		return IntentPotentialResearch
	}

	return IntentUnclear
}

func isFarewell(lowered string) bool {
	if FarewellWords[lowered] {
		return true
	}
	for word := range FarewellWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
