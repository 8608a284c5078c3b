package detect

import (
	"context"
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"annobot/internal/ports/output"
)

var _ output.Detector = (*LinguaDetector)(nil)

// LinguaDetector detects languages in-process with lingua's statistical
// models. No network, no timeout needed; short texts simply come back as
// not-ok.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

func New() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

func (d *LinguaDetector) Detect(_ context.Context, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
