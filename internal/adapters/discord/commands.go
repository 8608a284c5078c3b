package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"annobot/internal/domain"
)

// handleCommand is thin glue: parse the prefix command and hand the
// already-parsed pieces to the use cases. Permission enforcement is the
// platform's role setup, not the bot's.
func (b *Bot) handleCommand(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	raw := strings.TrimSpace(strings.TrimPrefix(m.Content, b.config.CommandPrefix))
	if raw == "" {
		return
	}
	name, rest := splitCommand(raw)

	switch strings.ToLower(name) {
	case "announce", "announcement":
		b.cmdAnnounce(ctx, s, m, rest)
	case "announce_everyone", "announce_all":
		b.cmdAnnounce(ctx, s, m, rest+" --everyone")
	case "translate", "tr":
		b.cmdTranslate(ctx, s, m, rest)
	case "set_lang_channel":
		b.cmdSetLangChannel(ctx, s, m, rest)
	case "remove_lang_channel":
		b.cmdRemoveLangChannel(ctx, s, m, rest)
	case "add_lang":
		b.cmdAddLang(ctx, s, m, rest)
	case "remove_lang":
		b.cmdRemoveLang(ctx, s, m, rest)
	case "announcement_info", "announce_info":
		b.cmdAnnouncementInfo(ctx, s, m)
	case "auto_translate":
		b.cmdAutoTranslate(ctx, s, m, rest)
	case "auto_translate_status":
		b.cmdAutoTranslateStatus(s, m)
	case "ping":
		b.reply(s, m.ChannelID, "🏓 Pong! Bot is online and responding.")
	}
}

func (b *Bot) cmdAnnounce(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	if strings.TrimSpace(text) == "" {
		b.reply(s, m.ChannelID, fmt.Sprintf("❌ Usage: `%sannounce <message>`", b.config.CommandPrefix))
		return
	}

	req := domain.NewAnnouncementRequest(text, m.Author.ID, m.ChannelID, m.GuildID)
	b.reply(s, m.ChannelID, "🔄 Translating and sending announcements...")

	summary, err := b.announcer.Fanout(ctx, req)
	if err != nil {
		b.log.Error().Str("guild_id", m.GuildID).Err(err).Msg("announcement failed")
		b.reply(s, m.ChannelID, b.userErrorMessage(err))
		return
	}
	b.reply(s, m.ChannelID, renderSummary(summary, b.languageNamer(ctx), req.BroadcastEveryone))
}

func (b *Bot) cmdTranslate(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, rest string) {
	langArg, text := splitCommand(rest)
	if langArg == "" || text == "" {
		b.reply(s, m.ChannelID, fmt.Sprintf("❌ Usage: `%stranslate <language> <text>`", b.config.CommandPrefix))
		return
	}
	code, name := b.resolveLanguageArg(ctx, langArg)

	reply, err := b.translate.TranslateTo(ctx, text, code, name)
	if err != nil {
		b.log.Error().Str("lang", code).Err(err).Msg("manual translation failed")
		b.reply(s, m.ChannelID, "❌ Translation failed. Please try again later.")
		return
	}
	b.reply(s, m.ChannelID, reply)
}

func (b *Bot) cmdSetLangChannel(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, rest string) {
	args := strings.Fields(rest)
	if len(args) < 1 {
		b.reply(s, m.ChannelID, fmt.Sprintf("❌ Usage: `%sset_lang_channel <language_code> [#channel]`", b.config.CommandPrefix))
		return
	}
	code := strings.ToLower(args[0])
	channelID := m.ChannelID
	if len(args) > 1 {
		channelID = parseChannelRef(args[1])
	}

	if err := b.registry.SetLanguageChannel(ctx, m.GuildID, code, channelID); err != nil {
		b.reply(s, m.ChannelID, b.userErrorMessage(err))
		return
	}
	name, _ := b.registry.LanguageName(ctx, code)
	b.reply(s, m.ChannelID, fmt.Sprintf("✅ **%s** (`%s`) announcements will be sent to <#%s>", name, code, channelID))
}

func (b *Bot) cmdRemoveLangChannel(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, rest string) {
	code := strings.ToLower(strings.TrimSpace(rest))
	if code == "" {
		b.reply(s, m.ChannelID, fmt.Sprintf("❌ Usage: `%sremove_lang_channel <language_code>`", b.config.CommandPrefix))
		return
	}
	if err := b.registry.RemoveLanguageChannel(ctx, m.GuildID, code); err != nil {
		b.reply(s, m.ChannelID, b.userErrorMessage(err))
		return
	}
	b.reply(s, m.ChannelID, fmt.Sprintf("✅ Removed `%s` announcement channel configuration", code))
}

func (b *Bot) cmdAddLang(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, rest string) {
	code, langName := splitCommand(rest)
	if code == "" || langName == "" {
		b.reply(s, m.ChannelID, fmt.Sprintf("❌ Usage: `%sadd_lang <code> <name>`", b.config.CommandPrefix))
		return
	}
	code = strings.ToLower(code)
	if err := b.registry.AddLanguage(ctx, code, langName); err != nil {
		b.reply(s, m.ChannelID, b.userErrorMessage(err))
		return
	}
	b.reply(s, m.ChannelID, fmt.Sprintf("✅ Added new language: **%s** (`%s`)", langName, code))
}

func (b *Bot) cmdRemoveLang(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, rest string) {
	code := strings.ToLower(strings.TrimSpace(rest))
	if code == "" {
		b.reply(s, m.ChannelID, fmt.Sprintf("❌ Usage: `%sremove_lang <code>`", b.config.CommandPrefix))
		return
	}
	name, _ := b.registry.LanguageName(ctx, code)
	if err := b.registry.RemoveLanguage(ctx, code); err != nil {
		b.reply(s, m.ChannelID, b.userErrorMessage(err))
		return
	}
	b.reply(s, m.ChannelID, fmt.Sprintf("✅ Removed language: **%s** (`%s`)", name, code))
}

func (b *Bot) cmdAnnouncementInfo(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	destinations, err := b.registry.Destinations(ctx, m.GuildID)
	if err != nil {
		b.reply(s, m.ChannelID, b.userErrorMessage(err))
		return
	}
	languages, err := b.registry.Languages(ctx)
	if err != nil {
		b.reply(s, m.ChannelID, b.userErrorMessage(err))
		return
	}
	b.reply(s, m.ChannelID, renderRegistryInfo(destinations, languages, b.config.CommandPrefix))
}

func (b *Bot) cmdAutoTranslate(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, rest string) {
	channelID := m.ChannelID
	if arg := strings.TrimSpace(rest); arg != "" {
		channelID = parseChannelRef(arg)
	}
	watched, err := b.registry.ToggleWatch(ctx, channelID)
	if err != nil {
		b.reply(s, m.ChannelID, b.userErrorMessage(err))
		return
	}
	if watched {
		b.reply(s, m.ChannelID, fmt.Sprintf("✅ Auto-translation enabled for <#%s>", channelID))
	} else {
		b.reply(s, m.ChannelID, fmt.Sprintf("✅ Auto-translation disabled for <#%s>", channelID))
	}
}

func (b *Bot) cmdAutoTranslateStatus(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.reply(s, m.ChannelID, renderWatchStatus(b.registry.WatchedChannels(), m.ChannelID, b.config.CommandPrefix))
}

func (b *Bot) reply(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		b.log.Warn().Str("channel_id", channelID).Err(err).Msg("reply failed")
	}
}

// languageNamer resolves catalog names for summary rendering, falling back
// to the raw code.
func (b *Bot) languageNamer(ctx context.Context) func(code string) string {
	return func(code string) string {
		if name, err := b.registry.LanguageName(ctx, code); err == nil {
			return name
		}
		return code
	}
}

// resolveLanguageArg accepts a catalog code or a catalog name ("es" or
// "Spanish"). Unrecognized input passes through as a code and is left to
// the translation provider to validate.
func (b *Bot) resolveLanguageArg(ctx context.Context, arg string) (code, name string) {
	code = strings.ToLower(strings.TrimSpace(arg))
	if n, err := b.registry.LanguageName(ctx, code); err == nil {
		return code, n
	}
	if langs, err := b.registry.Languages(ctx); err == nil {
		for _, l := range langs {
			if strings.EqualFold(l.Name, arg) {
				return l.Code, l.Name
			}
		}
	}
	return code, code
}

// splitCommand splits "name rest of line" into its head word and remainder.
func splitCommand(raw string) (name, rest string) {
	parts := strings.SplitN(raw, " ", 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		rest = strings.TrimSpace(parts[1])
	}
	return name, rest
}

// parseChannelRef accepts either a raw channel id or a <#id> mention.
func parseChannelRef(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<#") && strings.HasSuffix(s, ">") {
		return s[2 : len(s)-1]
	}
	return s
}
