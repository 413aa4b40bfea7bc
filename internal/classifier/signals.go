package classifier

import (
	"regexp"
	"strings"
)

// ============================================
// WORD SETS
// ============================================

// ConfirmationWords are yes/no style responses that must never be read as
// company names.
var ConfirmationWords = map[string]bool{
	"yes": true, "no": true, "ok": true, "okay": true, "sure": true,
	"proceed": true, "continue": true, "go ahead": true, "fine": true,
	"alright": true, "right": true, "correct": true, "yep": true,
	"yup": true, "nope": true, "nah": true, "affirmative": true,
	"negative": true, "confirmed": true, "cancel": true, "stop": true,
	"i don't know": true, "i dont know": true,
}

// GreetingWords are standalone greetings.
var GreetingWords = map[string]bool{
	"hi": true, "hello": true, "hey": true, "hii": true, "hiii": true,
	"greetings": true, "howdy": true, "good morning": true,
	"good afternoon": true, "good evening": true, "morning": true,
	"evening": true,
}

// FarewellWords end the conversation.
var FarewellWords = map[string]bool{
	"bye": true, "goodbye": true, "thanks": true, "thank you": true,
	"thankyou": true, "thx": true, "exit": true, "quit": true,
	"done": true, "that's all": true, "finished": true, "end": true,
}

// CommandWords are assistant commands, never company names.
var CommandWords = map[string]bool{
	"help": true, "show": true, "display": true, "view": true, "see": true,
	"print": true, "plan": true, "update": true, "change": true,
	"modify": true, "edit": true, "reset": true, "clear": true,
}

// IsReserved reports whether the text is a confirmation, greeting, farewell
// or command word.
func IsReserved(text string) bool {
	lowered := strings.ToLower(CleanText(text))
	return ConfirmationWords[lowered] || GreetingWords[lowered] ||
		FarewellWords[lowered] || CommandWords[lowered]
}

// ============================================
// TEXT PROCESSING
// ============================================

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanText collapses internal whitespace and trims the ends.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// HesitationPrefix matches leading filler like "um", "uh", "hmm".
var HesitationPrefix = regexp.MustCompile(`^(um+|uh+|er+|ah+|hmm+)`)

var hesitationStripRe = regexp.MustCompile(`^(um+|uh+|er+|ah+|hmm+)[,\s]*`)

// StripHesitation removes a leading filler word so the underlying intent can
// be classified.
func StripHesitation(lowered string) string {
	return strings.TrimSpace(hesitationStripRe.ReplaceAllString(lowered, ""))
}

var numericSelectionRe = regexp.MustCompile(`^\d+\.?$`)

// IsNumericSelection reports whether the text is a bare number like "2" or
// "2.".
func IsNumericSelection(text string) bool {
	return numericSelectionRe.MatchString(CleanText(text))
}

// IsConfirmationWord reports whether the text is a confirmation or denial.
func IsConfirmationWord(text string) bool {
	return ConfirmationWords[strings.ToLower(CleanText(text))]
}

// ============================================
// PERSONA SIGNALS
// ============================================

var confusionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i don'?t (know|understand|get)`),
	regexp.MustCompile(`what (do you mean|should i|is this|is that)`),
	regexp.MustCompile(`confused`),
	regexp.MustCompile(`not sure`),
	regexp.MustCompile(`help me understand`),
	regexp.MustCompile(`\?\s*\?+`),
	regexp.MustCompile(`huh\??`),
	regexp.MustCompile(`um+`),
	regexp.MustCompile(`uh+`),
	regexp.MustCompile(`i guess`),
}

// HasConfusionSignals reports whether the user seems confused.
func HasConfusionSignals(text string) bool {
	lowered := strings.ToLower(text)
	for _, p := range confusionPatterns {
		if p.MatchString(lowered) {
			return true
		}
	}
	return false
}

var efficiencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(just|only|quick)`),
	regexp.MustCompile(`skip`),
	regexp.MustCompile(`get to the point`),
	regexp.MustCompile(`brief`),
	regexp.MustCompile(`tl;?dr`),
	regexp.MustCompile(`fast`),
	regexp.MustCompile(`hurry`),
}

// HasEfficiencySignals reports whether the user prefers terse answers.
func HasEfficiencySignals(text string) bool {
	lowered := strings.ToLower(text)
	for _, p := range efficiencyPatterns {
		if p.MatchString(lowered) {
			return true
		}
	}
	return false
}
