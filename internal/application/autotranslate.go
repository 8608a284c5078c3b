package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"annobot/internal/domain"
	"annobot/internal/ports/input"
	"annobot/internal/ports/output"
)

var (
	_ input.AutoTranslateUseCase = (*AutoTranslateService)(nil)
	_ input.TranslateUseCase     = (*AutoTranslateService)(nil)
)

// WatchChecker answers whether a channel is on the auto-translate watchlist.
// Implemented by the registry service over its in-memory snapshot.
type WatchChecker interface {
	IsWatched(channelID string) bool
}

// AutoTranslateService is the filter pipeline run once per inbound message
// on a watched channel: detect the source language, translate to the
// canonical language, and publish only when the translation actually says
// something the original didn't.
type AutoTranslateService struct {
	detector      output.Detector
	translator    output.Translator
	transport     output.Transport
	watchlist     WatchChecker
	composer      *Composer
	canonicalLang string
	commandPrefix string
	log           zerolog.Logger
}

func NewAutoTranslateService(
	detector output.Detector,
	translator output.Translator,
	transport output.Transport,
	watchlist WatchChecker,
	composer *Composer,
	canonicalLang string,
	commandPrefix string,
	log zerolog.Logger,
) *AutoTranslateService {
	return &AutoTranslateService{
		detector:      detector,
		translator:    translator,
		transport:     transport,
		watchlist:     watchlist,
		composer:      composer,
		canonicalLang: canonicalLang,
		commandPrefix: commandPrefix,
		log:           log.With().Str("component", "autotranslate").Logger(),
	}
}

// OnMessage runs the gate chain and, when gated in, the decision pipeline.
// A gated-out message produces no side effect at all. A pipeline failure is
// reported into the originating channel as a short diagnostic instead of
// propagating: one bad message must never affect the next.
func (s *AutoTranslateService) OnMessage(ctx context.Context, msg domain.InboundMessage) {
	if msg.AuthorIsBot {
		return
	}
	if s.commandPrefix != "" && strings.HasPrefix(msg.Content, s.commandPrefix) {
		return
	}
	if strings.TrimSpace(msg.Content) == "" {
		return
	}
	if !s.watchlist.IsWatched(msg.ChannelID) {
		return
	}

	decision, err := s.decide(ctx, msg.Content)
	if err != nil {
		s.log.Error().Str("channel_id", msg.ChannelID).Err(err).Msg("auto-translation failed")
		s.report(ctx, msg.ChannelID, s.composer.AutoTranslateFailure(err))
		return
	}
	if !decision.ShouldPublish {
		s.log.Debug().
			Str("channel_id", msg.ChannelID).
			Str("detected", decision.DetectedLang).
			Str("reason", decision.Reason).
			Msg("translation suppressed")
		return
	}

	// Watchlist membership never implies the channel still exists.
	channel, err := s.transport.ResolveChannel(ctx, msg.ChannelID)
	if err != nil {
		s.log.Warn().Str("channel_id", msg.ChannelID).Err(err).Msg("watched channel did not resolve")
		return
	}
	notice := s.composer.AutoTranslateNotice(msg.Content, decision)
	if err := s.transport.Send(ctx, channel, notice); err != nil {
		s.log.Error().Str("channel_id", msg.ChannelID).Err(err).Msg("notice send failed")
		s.report(ctx, msg.ChannelID, s.composer.AutoTranslateFailure(err))
		return
	}
	s.log.Info().
		Str("channel_id", msg.ChannelID).
		Str("detected", decision.DetectedLang).
		Msg("🔄 auto-translation published")
}

// decide runs detection, translation and the equivalence gate. Detection
// failure degrades to an unknown source language; it never blocks
// translation, because the equivalence gate is the actual correctness gate.
func (s *AutoTranslateService) decide(ctx context.Context, text string) (domain.TranslationDecision, error) {
	var decision domain.TranslationDecision

	if code, ok := s.detector.Detect(ctx, text); ok {
		decision.DetectedLang = code
		if domain.SameLanguage(code, s.canonicalLang) {
			decision.Reason = "already in canonical language"
			return decision, nil
		}
	}

	translated, err := s.translator.Translate(ctx, text, s.canonicalLang)
	if err != nil {
		return decision, err
	}
	decision.TranslatedText = translated

	if domain.Equivalent(text, translated) {
		decision.Reason = "translation equivalent to original"
		return decision, nil
	}

	decision.ShouldPublish = true
	return decision, nil
}

// TranslateTo serves the ad-hoc translate command. No equivalence gate
// here: the user asked for this translation explicitly.
func (s *AutoTranslateService) TranslateTo(ctx context.Context, text, targetLang, langName string) (string, error) {
	translated, err := s.translator.Translate(ctx, text, targetLang)
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", targetLang, err)
	}
	s.log.Info().Str("lang", targetLang).Msg("🌐 manual translation served")
	return s.composer.ManualTranslation(text, translated, langName), nil
}

// report posts a diagnostic back into the channel, best effort.
func (s *AutoTranslateService) report(ctx context.Context, channelID, content string) {
	channel, err := s.transport.ResolveChannel(ctx, channelID)
	if err != nil {
		return
	}
	if err := s.transport.Send(ctx, channel, content); err != nil {
		s.log.Debug().Str("channel_id", channelID).Err(err).Msg("diagnostic send failed")
	}
}
