package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"annobot/internal/domain"
	"annobot/internal/ports/output"
)

var _ output.ChannelMapRepository = (*ChannelMapRepository)(nil)

// ChannelMapRepository persists guild-scoped language -> channel mappings.
type ChannelMapRepository struct {
	pool *pgxpool.Pool
}

func NewChannelMapRepository(pool *pgxpool.Pool) *ChannelMapRepository {
	return &ChannelMapRepository{pool: pool}
}

func (r *ChannelMapRepository) Upsert(ctx context.Context, guildID, languageCode, channelID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO language_channels (guild_id, language_code, channel_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (guild_id, language_code) DO UPDATE SET channel_id = EXCLUDED.channel_id`,
		guildID, strings.ToLower(languageCode), channelID)
	if err != nil {
		return fmt.Errorf("upsert language channel: %w", err)
	}
	return nil
}

func (r *ChannelMapRepository) Remove(ctx context.Context, guildID, languageCode string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM language_channels WHERE guild_id = $1 AND language_code = $2`,
		guildID, strings.ToLower(languageCode))
	if err != nil {
		return fmt.Errorf("delete language channel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLanguageChannelNotSet
	}
	return nil
}

// ListByGuild returns the guild's destinations ordered by language code;
// this ordering is what the fan-out engine's outcome order is stated
// against.
func (r *ChannelMapRepository) ListByGuild(ctx context.Context, guildID string) ([]domain.Destination, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lc.language_code, COALESCE(l.name, lc.language_code), lc.channel_id
		FROM language_channels lc
		LEFT JOIN languages l ON l.code = lc.language_code
		WHERE lc.guild_id = $1
		ORDER BY lc.language_code`,
		guildID)
	if err != nil {
		return nil, fmt.Errorf("list language channels: %w", err)
	}
	defer rows.Close()
	return scanDestinations(rows)
}
