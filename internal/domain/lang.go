package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// SameLanguage reports whether two language codes share the same base
// language. The detector reports plain ISO 639-1 codes while destinations
// may carry region subtags, so "en" must match "en-US".
func SameLanguage(a, b string) bool {
	ta, errA := language.Parse(a)
	tb, errB := language.Parse(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	baseA, _ := ta.Base()
	baseB, _ := tb.Base()
	return baseA == baseB
}
