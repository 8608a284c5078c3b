package application

import (
	"strings"

	"annobot/internal/domain"
	"annobot/internal/ports/output"
)

// Display limits for outbound payloads (platform embed-field sized).
const (
	noticeDisplayLimit    = 500
	referenceDisplayLimit = 1000
)

// Composer renders outbound payloads. Labels go through the i18n port so
// announcement headers follow the destination language and auto-translate
// notices follow the canonical language.
type Composer struct {
	t             output.T
	canonicalLang string
	canonicalName string
}

func NewComposer(t output.T, canonicalLang, canonicalName string) *Composer {
	return &Composer{
		t:             t,
		canonicalLang: canonicalLang,
		canonicalName: canonicalName,
	}
}

// Announcement builds the payload for one destination: localized header,
// translated body, and (for non-canonical destinations) the canonical
// original as a reference line. The mention marker comes first so the
// platform picks it up as a real mention.
func (c *Composer) Announcement(langCode, translated string, req domain.AnnouncementRequest) string {
	var b strings.Builder
	if req.BroadcastEveryone {
		b.WriteString("@everyone\n")
	}
	b.WriteString("**" + c.t.T(langCode, "announcement.header", nil) + "**\n")
	b.WriteString(translated)
	if !domain.SameLanguage(langCode, c.canonicalLang) {
		label := c.t.T(langCode, "announcement.original", map[string]any{"Lang": c.canonicalName})
		b.WriteString("\n\n*" + label + ":* " + domain.Truncate(req.CleanText, referenceDisplayLimit))
	}
	return b.String()
}

// AutoTranslateNotice builds the published translation notice: detected
// language, truncated original, truncated translation.
func (c *Composer) AutoTranslateNotice(original string, decision domain.TranslationDecision) string {
	langDisplay := decision.DetectedLang
	if langDisplay == "" {
		langDisplay = c.t.T(c.canonicalLang, "lang.unknown", nil)
	}

	var b strings.Builder
	b.WriteString("**" + c.t.T(c.canonicalLang, "autotranslate.header", nil) + "**\n")
	b.WriteString("**" + c.t.T(c.canonicalLang, "autotranslate.original", map[string]any{"Lang": langDisplay}) + ":** ")
	b.WriteString(domain.Truncate(strings.TrimSpace(original), noticeDisplayLimit))
	b.WriteString("\n**" + c.t.T(c.canonicalLang, "autotranslate.translated", map[string]any{"Lang": c.canonicalName}) + ":** ")
	b.WriteString(domain.Truncate(decision.TranslatedText, noticeDisplayLimit))
	return b.String()
}

// ManualTranslation builds the reply to an ad-hoc translate command:
// truncated original, truncated translation labeled with the requested
// language.
func (c *Composer) ManualTranslation(original, translated, langName string) string {
	var b strings.Builder
	b.WriteString("**" + c.t.T(c.canonicalLang, "translate.header", nil) + "**\n")
	b.WriteString("**" + c.t.T(c.canonicalLang, "translate.original", nil) + ":** ")
	b.WriteString(domain.Truncate(strings.TrimSpace(original), referenceDisplayLimit))
	b.WriteString("\n**" + c.t.T(c.canonicalLang, "autotranslate.translated", map[string]any{"Lang": langName}) + ":** ")
	b.WriteString(domain.Truncate(translated, referenceDisplayLimit))
	return b.String()
}

// AutoTranslateFailure builds the short diagnostic posted back into the
// originating channel when the pipeline fails.
func (c *Composer) AutoTranslateFailure(err error) string {
	reason := domain.Truncate(err.Error(), 100)
	return c.t.T(c.canonicalLang, "autotranslate.failed", map[string]any{"Reason": reason})
}
