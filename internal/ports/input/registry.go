package input

import (
	"context"

	"annobot/internal/domain"
)

// RegistryUseCase manages the destination registry and the watchlist.
// Mutation happens here, outside the pipelines; pipelines only read
// snapshots.
type RegistryUseCase interface {
	SetLanguageChannel(ctx context.Context, guildID, languageCode, channelID string) error
	RemoveLanguageChannel(ctx context.Context, guildID, languageCode string) error
	Destinations(ctx context.Context, guildID string) ([]domain.Destination, error)

	AddLanguage(ctx context.Context, code, name string) error
	RemoveLanguage(ctx context.Context, code string) error
	Languages(ctx context.Context) ([]domain.Language, error)
	LanguageName(ctx context.Context, code string) (string, error)

	ToggleWatch(ctx context.Context, channelID string) (watched bool, err error)
	IsWatched(channelID string) bool
	WatchedChannels() []string
}
