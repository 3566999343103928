package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the catalog store schema. Every statement is idempotent,
// so Migrate runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS charts (
		id          TEXT PRIMARY KEY,
		position    INTEGER NOT NULL,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		use_cases   TEXT NOT NULL DEFAULT '[]',
		pros        TEXT NOT NULL DEFAULT '[]',
		cons        TEXT NOT NULL DEFAULT '[]',
		data_types  TEXT NOT NULL DEFAULT '[]',
		examples    TEXT NOT NULL DEFAULT '',
		libraries   TEXT NOT NULL DEFAULT '[]',
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_charts_position ON charts(position)`,

	`CREATE TABLE IF NOT EXISTS recommendation_rules (
		position  INTEGER PRIMARY KEY,
		data_type TEXT NOT NULL,
		purpose   TEXT NOT NULL,
		chart_id  TEXT NOT NULL REFERENCES charts(id) ON DELETE CASCADE,
		UNIQUE(data_type, purpose)
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
