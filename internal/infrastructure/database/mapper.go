package database

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"annobot/internal/domain"
)

func scanDestinations(rows pgx.Rows) ([]domain.Destination, error) {
	var out []domain.Destination
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.LanguageCode, &d.LanguageName, &d.ChannelID); err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanLanguages(rows pgx.Rows) ([]domain.Language, error) {
	var out []domain.Language
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.Code, &l.Name); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
