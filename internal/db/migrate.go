package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Presentation settings only. Triangle state lives in the share link.
	`CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY CHECK(key IN ('language','theme')),
		value      TEXT NOT NULL,
		updated_at TEXT
	)`,
}
