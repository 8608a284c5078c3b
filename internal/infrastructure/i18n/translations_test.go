package i18n

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTranslatorLocalizes(t *testing.T) {
	tr := NewTranslator("en", zerolog.Nop())

	assert.Equal(t, "📢 Announcement", tr.T("en", "announcement.header", nil))
	assert.Equal(t, "📢 Annonce", tr.T("fr", "announcement.header", nil))
	assert.Equal(t, "📢 Anuncio", tr.T("es", "announcement.header", nil))
	assert.Equal(t, "📢 Ankündigung", tr.T("de", "announcement.header", nil))
	assert.Equal(t, "🌐 Translation", tr.T("en", "translate.header", nil))
	assert.Equal(t, "🌐 Traduction", tr.T("fr", "translate.header", nil))
}

func TestTranslatorTemplateData(t *testing.T) {
	tr := NewTranslator("en", zerolog.Nop())

	got := tr.T("en", "autotranslate.original", map[string]any{"Lang": "fr"})
	assert.Contains(t, got, "fr")
}

func TestTranslatorFallsBackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("en", zerolog.Nop())

	// Unsupported locale falls back to the default bundle language.
	assert.Equal(t, "📢 Announcement", tr.T("ko", "announcement.header", nil))
	assert.Equal(t, "📢 Announcement", tr.T("", "announcement.header", nil))
}

func TestTranslatorUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("en", zerolog.Nop())

	assert.Equal(t, "no.such.key", tr.T("en", "no.such.key", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestTranslatorInvalidDefaultLocale(t *testing.T) {
	tr := NewTranslator("???", zerolog.Nop())

	assert.Equal(t, "📢 Announcement", tr.T("en", "announcement.header", nil))
}
