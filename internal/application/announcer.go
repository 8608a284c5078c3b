package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"annobot/internal/domain"
	"annobot/internal/ports/input"
	"annobot/internal/ports/output"
)

var _ input.AnnouncerUseCase = (*AnnouncerService)(nil)

// AnnouncerService is the announcement fan-out engine. One Fanout call
// dispatches a single announcement to every configured destination of the
// requesting guild, each destination processed in its own goroutine.
type AnnouncerService struct {
	translator    output.Translator
	transport     output.Transport
	channels      output.ChannelMapRepository
	composer      *Composer
	canonicalLang string
	log           zerolog.Logger
}

func NewAnnouncerService(
	translator output.Translator,
	transport output.Transport,
	channels output.ChannelMapRepository,
	composer *Composer,
	canonicalLang string,
	log zerolog.Logger,
) *AnnouncerService {
	return &AnnouncerService{
		translator:    translator,
		transport:     transport,
		channels:      channels,
		composer:      composer,
		canonicalLang: canonicalLang,
		log:           log.With().Str("component", "announcer").Logger(),
	}
}

// Fanout snapshots the guild's destinations and runs the fan-out over the
// snapshot, so admin mutation mid-flight cannot change the set of
// destinations this announcement goes to.
func (s *AnnouncerService) Fanout(ctx context.Context, req domain.AnnouncementRequest) (*domain.FanoutSummary, error) {
	destinations, err := s.channels.ListByGuild(ctx, req.GuildID)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return s.FanoutTo(ctx, req, destinations)
}

// FanoutTo runs the fan-out over an explicit destination snapshot. Each
// destination is independent: its failure is recorded in its outcome and
// never aborts or cancels a sibling. Outcome order equals snapshot order
// regardless of completion order.
func (s *AnnouncerService) FanoutTo(ctx context.Context, req domain.AnnouncementRequest, destinations []domain.Destination) (*domain.FanoutSummary, error) {
	if len(destinations) == 0 {
		return nil, domain.ErrNoDestinations
	}

	outcomes := make([]domain.DispatchOutcome, len(destinations))
	var wg sync.WaitGroup
	for i, dest := range destinations {
		wg.Add(1)
		go func(i int, dest domain.Destination) {
			defer wg.Done()
			outcomes[i] = s.dispatch(ctx, req, dest)
		}(i, dest)
	}
	wg.Wait()

	summary := domain.NewFanoutSummary(outcomes)
	s.log.Info().
		Str("guild_id", req.GuildID).
		Int("sent", summary.SentCount).
		Int("destinations", len(destinations)).
		Bool("everyone", req.BroadcastEveryone).
		Msg("📢 announcement fan-out finished")
	return summary, nil
}

// dispatch handles a single destination: resolve, translate, compose, send.
// At most one attempt; no retry, no rollback of siblings already sent.
func (s *AnnouncerService) dispatch(ctx context.Context, req domain.AnnouncementRequest, dest domain.Destination) domain.DispatchOutcome {
	outcome := domain.DispatchOutcome{
		LanguageCode: dest.LanguageCode,
		ChannelID:    dest.ChannelID,
	}

	channel, err := s.transport.ResolveChannel(ctx, dest.ChannelID)
	if err != nil {
		s.log.Warn().Str("lang", dest.LanguageCode).Str("channel_id", dest.ChannelID).Err(err).
			Msg("destination channel did not resolve")
		outcome.Status = domain.StatusChannelNotFound
		outcome.Detail = err.Error()
		return outcome
	}

	text := req.CleanText
	if !domain.SameLanguage(dest.LanguageCode, s.canonicalLang) {
		translated, err := s.translator.Translate(ctx, req.CleanText, dest.LanguageCode)
		if err != nil {
			// Announcing in the wrong language to a language-specific
			// channel is worse than not announcing: a translation failure
			// is a delivery failure here, not a degrade-to-source.
			s.log.Error().Str("lang", dest.LanguageCode).Err(err).Msg("translation failed")
			outcome.Status = domain.StatusSendFailed
			outcome.Detail = fmt.Sprintf("translation failed: %v", err)
			return outcome
		}
		text = translated
	}

	payload := s.composer.Announcement(dest.LanguageCode, text, req)
	if err := s.transport.Send(ctx, channel, payload); err != nil {
		s.log.Error().Str("lang", dest.LanguageCode).Str("channel_id", dest.ChannelID).Err(err).
			Msg("send failed")
		outcome.Status = domain.StatusSendFailed
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Status = domain.StatusSent
	return outcome
}
