package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"annobot/internal/domain"
	"annobot/internal/ports/input"
	"annobot/internal/ports/output"
)

var _ input.RegistryUseCase = (*RegistryService)(nil)

// RegistryService owns the destination registry and the watchlist. The
// watchlist is kept as an in-memory set (consulted on every inbound
// message) written through to the repository; destination lookups go to the
// repository so fan-outs always snapshot the persisted state.
type RegistryService struct {
	channels  output.ChannelMapRepository
	languages output.LanguageRepository
	watchlist output.WatchlistRepository
	log       zerolog.Logger

	mu      sync.RWMutex
	watched map[string]struct{}
}

func NewRegistryService(
	channels output.ChannelMapRepository,
	languages output.LanguageRepository,
	watchlist output.WatchlistRepository,
	log zerolog.Logger,
) *RegistryService {
	return &RegistryService{
		channels:  channels,
		languages: languages,
		watchlist: watchlist,
		log:       log.With().Str("component", "registry").Logger(),
		watched:   make(map[string]struct{}),
	}
}

// LoadWatchlist primes the in-memory watch set from the repository. Called
// once at startup, before the message stream opens.
func (s *RegistryService) LoadWatchlist(ctx context.Context) error {
	ids, err := s.watchlist.List(ctx)
	if err != nil {
		return fmt.Errorf("load watchlist: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watched = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.watched[id] = struct{}{}
	}
	s.log.Info().Int("channels", len(ids)).Msg("watchlist loaded")
	return nil
}

func (s *RegistryService) SetLanguageChannel(ctx context.Context, guildID, languageCode, channelID string) error {
	// Only cataloged languages get destinations.
	if _, err := s.languages.Name(ctx, languageCode); err != nil {
		return err
	}
	if err := s.channels.Upsert(ctx, guildID, languageCode, channelID); err != nil {
		return fmt.Errorf("set language channel: %w", err)
	}
	s.log.Info().Str("guild_id", guildID).Str("lang", languageCode).Str("channel_id", channelID).
		Msg("✅ language channel set")
	return nil
}

func (s *RegistryService) RemoveLanguageChannel(ctx context.Context, guildID, languageCode string) error {
	destinations, err := s.channels.ListByGuild(ctx, guildID)
	if err != nil {
		return fmt.Errorf("list destinations: %w", err)
	}
	found := false
	for _, d := range destinations {
		if domain.SameLanguage(d.LanguageCode, languageCode) {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrLanguageChannelNotSet
	}
	if err := s.channels.Remove(ctx, guildID, languageCode); err != nil {
		return fmt.Errorf("remove language channel: %w", err)
	}
	return nil
}

func (s *RegistryService) Destinations(ctx context.Context, guildID string) ([]domain.Destination, error) {
	return s.channels.ListByGuild(ctx, guildID)
}

func (s *RegistryService) AddLanguage(ctx context.Context, code, name string) error {
	return s.languages.Add(ctx, code, name)
}

func (s *RegistryService) RemoveLanguage(ctx context.Context, code string) error {
	return s.languages.Remove(ctx, code)
}

func (s *RegistryService) Languages(ctx context.Context) ([]domain.Language, error) {
	return s.languages.List(ctx)
}

func (s *RegistryService) LanguageName(ctx context.Context, code string) (string, error) {
	return s.languages.Name(ctx, code)
}

// ToggleWatch flips auto-translation for a channel and reports the new
// state. The in-memory set is updated only after the write-through
// succeeds.
func (s *RegistryService) ToggleWatch(ctx context.Context, channelID string) (bool, error) {
	s.mu.RLock()
	_, active := s.watched[channelID]
	s.mu.RUnlock()

	if active {
		if err := s.watchlist.Remove(ctx, channelID); err != nil {
			return true, fmt.Errorf("remove watched channel: %w", err)
		}
	} else {
		if err := s.watchlist.Add(ctx, channelID); err != nil {
			return false, fmt.Errorf("add watched channel: %w", err)
		}
	}

	s.mu.Lock()
	if active {
		delete(s.watched, channelID)
	} else {
		s.watched[channelID] = struct{}{}
	}
	s.mu.Unlock()

	s.log.Info().Str("channel_id", channelID).Bool("watched", !active).Msg("auto-translate toggled")
	return !active, nil
}

// IsWatched reads the in-memory set; safe to call from the message stream
// concurrently with admin mutation.
func (s *RegistryService) IsWatched(channelID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.watched[channelID]
	return ok
}

func (s *RegistryService) WatchedChannels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.watched))
	for id := range s.watched {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
