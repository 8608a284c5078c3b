package domain

import (
	"regexp"
	"strings"
)

// Ellipsis marker appended when display text is cut.
const ellipsis = "..."

// Matches the broadcast trigger in any casing: the --everyone flag or a
// literal @everyone mention inside the announcement body.
var everyoneTrigger = regexp.MustCompile(`(?i)--everyone|@everyone`)

// A word is a maximal run of letters/digits; everything else is a boundary.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// StripEveryoneTrigger reports whether text requests an @everyone broadcast
// and returns the text with every occurrence of the trigger removed.
func StripEveryoneTrigger(text string) (clean string, everyone bool) {
	if !everyoneTrigger.MatchString(text) {
		return strings.TrimSpace(text), false
	}
	clean = everyoneTrigger.ReplaceAllString(text, "")
	return strings.TrimSpace(clean), true
}

// NormalizeForComparison lower-cases and trims text for the equivalence gate.
func NormalizeForComparison(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// WordTokens tokenizes normalized text into its word sequence.
func WordTokens(s string) []string {
	return wordPattern.FindAllString(NormalizeForComparison(s), -1)
}

// Equivalent reports whether translated adds no information over original:
// equal after normalization, or identical word sequences (case, whitespace
// and punctuation differences are not meaningful translations). An empty
// translation is always equivalent.
func Equivalent(original, translated string) bool {
	normTranslated := NormalizeForComparison(translated)
	if normTranslated == "" {
		return true
	}
	if NormalizeForComparison(original) == normTranslated {
		return true
	}
	origWords := WordTokens(original)
	transWords := WordTokens(translated)
	if len(origWords) != len(transWords) {
		return false
	}
	for i := range origWords {
		if origWords[i] != transWords[i] {
			return false
		}
	}
	return true
}

// Truncate cuts s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + ellipsis
}
