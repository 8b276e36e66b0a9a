// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package setting

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakapat-jp/edu-mcru/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed settings store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetAll returns every setting row as a key/value map.
func (repository *PostgresRepository) GetAll(ctx context.Context) (map[string]string, error) {
	// setting_value is nullable; a NULL row reads as the empty string
	// rather than failing the whole snapshot.
	const query = `SELECT setting_key, COALESCE(setting_value, '') FROM site_settings`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_settings")
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, dberr.Wrap(err, "scan_setting")
		}
		settings[key] = value
	}

	return settings, nil
}

/*
SaveAll upserts the given pairs inside one transaction.

Description: A partial save would leave the site half-configured, so all
pairs commit or none do.

Parameters:
  - ctx: context.Context
  - settings: map[string]string

Returns:
  - error: Transactional or persistence failures
*/
func (repository *PostgresRepository) SaveAll(ctx context.Context, settings map[string]string) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_settings_tx")
	}
	defer transaction.Rollback(ctx)

	const query = `
		INSERT INTO site_settings (setting_key, setting_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (setting_key)
		DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = NOW()
	`
	for key, value := range settings {
		if _, err := transaction.Exec(ctx, query, key, value); err != nil {
			return dberr.Wrap(err, "upsert_setting")
		}
	}

	return transaction.Commit(ctx)
}
