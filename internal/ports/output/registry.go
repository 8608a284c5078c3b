package output

import (
	"context"

	"annobot/internal/domain"
)

// ChannelMapRepository persists the per-guild language -> channel mapping.
type ChannelMapRepository interface {
	Upsert(ctx context.Context, guildID, languageCode, channelID string) error
	Remove(ctx context.Context, guildID, languageCode string) error
	// ListByGuild returns the guild's destinations ordered by language code.
	// This order is the declaration order every fan-out guarantee is stated
	// against.
	ListByGuild(ctx context.Context, guildID string) ([]domain.Destination, error)
}

// LanguageRepository persists the announcement language catalog.
type LanguageRepository interface {
	Add(ctx context.Context, code, name string) error
	// Remove deletes the language and cascades over any channel mappings
	// that reference it.
	Remove(ctx context.Context, code string) error
	Name(ctx context.Context, code string) (string, error)
	List(ctx context.Context) ([]domain.Language, error)
}

// WatchlistRepository persists the set of auto-translated channels.
type WatchlistRepository interface {
	Add(ctx context.Context, channelID string) error
	Remove(ctx context.Context, channelID string) error
	List(ctx context.Context) ([]string, error)
}
