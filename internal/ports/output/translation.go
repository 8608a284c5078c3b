package output

import "context"

// Translator wraps a translation provider. Calls are latency-bearing,
// rate-limited and allowed to fail; the caller decides how to degrade.
type Translator interface {
	// Translate renders text in targetLang (source language auto-detected
	// by the provider).
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Detector is a best-effort language detector. It may disagree with the
// Translator's own auto-detection.
type Detector interface {
	// Detect returns the ISO 639-1 code of text, or ok=false when the
	// language cannot be established. Never an error: detection failure
	// must not block translation.
	Detect(ctx context.Context, text string) (code string, ok bool)
}
