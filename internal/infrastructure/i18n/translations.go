package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"annobot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer used for
// the bot's own strings: announcement headers, notice labels. It is not the
// translation provider.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             zerolog.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given
// default locale (normally the canonical language). It loads the embedded
// active.*.toml files.
func NewTranslator(defaultLocale string, log zerolog.Logger) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml", "active.es.toml", "active.de.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Warn().Str("file", file).Err(err).Msg("i18n: failed to load locale")
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log.With().Str("component", "i18n").Logger(),
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Debug().Str("key", key).Strs("locales", languages).Err(err).Msg("localize failed")
		return key
	}
	return msg
}
