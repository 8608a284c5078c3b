package discord

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"annobot/internal/config"
	"annobot/internal/domain"
	"annobot/internal/ports/input"
)

// Bot is the Discord adapter: it subscribes to the message stream and routes
// each message either to the command glue or to the auto-translate pipeline.
type Bot struct {
	session       *discordgo.Session
	config        *config.Config
	announcer     input.AnnouncerUseCase
	autoTranslate input.AutoTranslateUseCase
	translate     input.TranslateUseCase
	registry      input.RegistryUseCase
	log           zerolog.Logger
}

// NewSession creates the Discord session with the intents the pipelines
// need. Message content is a privileged intent and must be enabled in the
// developer portal.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	return s, nil
}

// NewBot wires the session to the use cases and registers handlers.
func NewBot(
	session *discordgo.Session,
	cfg *config.Config,
	announcer input.AnnouncerUseCase,
	autoTranslate input.AutoTranslateUseCase,
	translate input.TranslateUseCase,
	registry input.RegistryUseCase,
	log zerolog.Logger,
) *Bot {
	bot := &Bot{
		session:       session,
		config:        cfg,
		announcer:     announcer,
		autoTranslate: autoTranslate,
		translate:     translate,
		registry:      registry,
		log:           log.With().Str("component", "discord").Logger(),
	}
	session.AddHandler(bot.handleMessageCreate)
	return bot
}

// handleMessageCreate is the single entry point of the message stream.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	ctx := context.Background()

	if strings.HasPrefix(m.Content, b.config.CommandPrefix) {
		if m.Author.Bot {
			return
		}
		b.handleCommand(ctx, s, m)
		return
	}

	b.autoTranslate.OnMessage(ctx, domain.InboundMessage{
		AuthorID:    m.Author.ID,
		AuthorIsBot: m.Author.Bot || (s.State.User != nil && m.Author.ID == s.State.User.ID),
		ChannelID:   m.ChannelID,
		GuildID:     m.GuildID,
		Content:     m.Content,
	})
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	b.log.Info().Str("prefix", b.config.CommandPrefix).Msg("🤖 bot online, CTRL+C to quit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
