package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"annobot/internal/ports/output"
)

var _ output.WatchlistRepository = (*WatchlistRepository)(nil)

// WatchlistRepository persists the auto-translate channel set.
type WatchlistRepository struct {
	pool *pgxpool.Pool
}

func NewWatchlistRepository(pool *pgxpool.Pool) *WatchlistRepository {
	return &WatchlistRepository{pool: pool}
}

func (r *WatchlistRepository) Add(ctx context.Context, channelID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO watched_channels (channel_id) VALUES ($1)
		ON CONFLICT (channel_id) DO NOTHING`,
		channelID)
	if err != nil {
		return fmt.Errorf("insert watched channel: %w", err)
	}
	return nil
}

func (r *WatchlistRepository) Remove(ctx context.Context, channelID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM watched_channels WHERE channel_id = $1`, channelID)
	if err != nil {
		return fmt.Errorf("delete watched channel: %w", err)
	}
	return nil
}

func (r *WatchlistRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT channel_id FROM watched_channels ORDER BY channel_id`)
	if err != nil {
		return nil, fmt.Errorf("list watched channels: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan watched channel: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
