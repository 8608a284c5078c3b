package input

import "context"

// TranslateUseCase serves the operator's ad-hoc translate command: render
// text in an explicitly requested language, outside both pipelines.
type TranslateUseCase interface {
	// TranslateTo translates text to targetLang and returns the rendered
	// reply. langName is the display name used in the reply labels.
	TranslateTo(ctx context.Context, text, targetLang, langName string) (string, error)
}
