package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"annobot/internal/domain"
	"annobot/internal/ports/output"
)

var _ output.LanguageRepository = (*LanguageRepository)(nil)

// LanguageRepository persists the announcement language catalog.
type LanguageRepository struct {
	pool *pgxpool.Pool
}

func NewLanguageRepository(pool *pgxpool.Pool) *LanguageRepository {
	return &LanguageRepository{pool: pool}
}

func (r *LanguageRepository) Add(ctx context.Context, code, name string) error {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO languages (code, name) VALUES ($1, $2)
		ON CONFLICT (code) DO NOTHING`,
		strings.ToLower(code), name)
	if err != nil {
		return fmt.Errorf("insert language: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLanguageExists
	}
	return nil
}

// Remove deletes the catalog entry; channel mappings referencing it go with
// it (ON DELETE CASCADE).
func (r *LanguageRepository) Remove(ctx context.Context, code string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM languages WHERE code = $1`, strings.ToLower(code))
	if err != nil {
		return fmt.Errorf("delete language: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUnknownLanguage
	}
	return nil
}

func (r *LanguageRepository) Name(ctx context.Context, code string) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM languages WHERE code = $1`, strings.ToLower(code)).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrUnknownLanguage
	}
	if err != nil {
		return "", fmt.Errorf("get language name: %w", err)
	}
	return name, nil
}

func (r *LanguageRepository) List(ctx context.Context) ([]domain.Language, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM languages ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()
	return scanLanguages(rows)
}
