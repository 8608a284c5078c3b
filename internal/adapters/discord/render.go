package discord

import (
	"fmt"
	"strings"

	"annobot/internal/domain"
)

// userErrorMessage maps a domain error code to a user-facing message. This
// is the single place where pipeline errors become chat text.
func (b *Bot) userErrorMessage(err error) string {
	switch domain.Code(err) {
	case "no_destinations_configured":
		return "❌ No announcement language channels configured for this server.\n" +
			fmt.Sprintf("Use `%sset_lang_channel` to configure channels first.", b.config.CommandPrefix)
	case "unknown_language":
		return fmt.Sprintf("❌ Unknown language code. Use `%sannouncement_info` to see available languages, "+
			"or `%sadd_lang <code> <name>` to add one.", b.config.CommandPrefix, b.config.CommandPrefix)
	case "language_exists":
		return "❌ Language already exists."
	case "language_channel_not_set":
		return "❌ No channel configured for this language."
	default:
		return "❌ An unexpected error occurred. Please try again later."
	}
}

// renderSummary turns a fan-out summary into the report the requesting user
// sees: sent count plus failed/skipped destinations with language names.
func renderSummary(summary *domain.FanoutSummary, nameOf func(code string) string, everyone bool) string {
	var b strings.Builder
	b.WriteString("✅ **Announcement Summary**\n")
	b.WriteString(fmt.Sprintf("Successfully sent to %d channels.", summary.SentCount))

	var failed []string
	for _, o := range summary.Outcomes {
		switch o.Status {
		case domain.StatusChannelNotFound:
			failed = append(failed, fmt.Sprintf("%s (channel not found)", nameOf(o.LanguageCode)))
		case domain.StatusSendFailed:
			failed = append(failed, fmt.Sprintf("%s (error)", nameOf(o.LanguageCode)))
		}
	}
	if len(failed) > 0 {
		b.WriteString("\nFailed/Skipped: " + strings.Join(failed, ", "))
	}
	if everyone {
		b.WriteString("\n@everyone was pinged in all channels.")
	}
	return b.String()
}

func renderRegistryInfo(destinations []domain.Destination, languages []domain.Language, prefix string) string {
	var b strings.Builder
	b.WriteString("ℹ️ **Announcement System Configuration**\n")

	b.WriteString("**Configured Language Channels:**\n")
	if len(destinations) == 0 {
		b.WriteString("None configured\n")
	}
	for _, d := range destinations {
		b.WriteString(fmt.Sprintf("**%s** (`%s`) → <#%s>\n", d.LanguageName, d.LanguageCode, d.ChannelID))
	}

	b.WriteString("**Available Languages:** ")
	codes := make([]string, 0, len(languages))
	for _, l := range languages {
		codes = append(codes, fmt.Sprintf("`%s` %s", l.Code, l.Name))
	}
	b.WriteString(strings.Join(codes, ", "))

	b.WriteString(fmt.Sprintf("\nUse `%sannounce <message>` to send to all configured channels.", prefix))
	return b.String()
}

func renderWatchStatus(watched []string, currentChannelID, prefix string) string {
	var b strings.Builder
	b.WriteString("🔄 **Auto-Translation Status**\n")

	b.WriteString("**Enabled Channels:** ")
	if len(watched) == 0 {
		b.WriteString("None")
	} else {
		mentions := make([]string, len(watched))
		for i, id := range watched {
			mentions[i] = "<#" + id + ">"
		}
		b.WriteString(strings.Join(mentions, " "))
	}

	state := "❌ Disabled"
	for _, id := range watched {
		if id == currentChannelID {
			state = "✅ Enabled"
			break
		}
	}
	b.WriteString(fmt.Sprintf("\n**Current Channel:** <#%s> - %s", currentChannelID, state))
	b.WriteString(fmt.Sprintf("\nUse `%sauto_translate` to toggle the current channel.", prefix))
	return b.String()
}
