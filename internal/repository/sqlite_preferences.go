package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/triad/internal/db"
	"github.com/alexanderramin/triad/internal/domain"
)

const (
	prefKeyLanguage = "language"
	prefKeyTheme    = "theme"
)

// SQLitePreferencesRepo implements PreferencesRepo on the preferences
// key/value table.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

// Get returns the stored preferences. Missing or invalid values come back
// empty so the caller can apply its own defaults.
func (r *SQLitePreferencesRepo) Get(ctx context.Context) (*domain.Preferences, error) {
	var p domain.Preferences

	lang, err := r.value(ctx, prefKeyLanguage)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if domain.ValidLanguages[domain.Language(lang)] {
		p.Language = domain.Language(lang)
	}

	theme, err := r.value(ctx, prefKeyTheme)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if domain.ValidThemes[domain.Theme(theme)] {
		p.Theme = domain.Theme(theme)
	}
	return &p, nil
}

func (r *SQLitePreferencesRepo) Save(ctx context.Context, p *domain.Preferences) error {
	now := nowUTC()
	for _, kv := range [][2]string{
		{prefKeyLanguage, string(p.Language)},
		{prefKeyTheme, string(p.Theme)},
	} {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			kv[0], kv[1], now)
		if err != nil {
			return fmt.Errorf("saving preference %s: %w", kv[0], err)
		}
	}
	return nil
}

// Reset removes every stored preference.
func (r *SQLitePreferencesRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preferences`); err != nil {
		return fmt.Errorf("resetting preferences: %w", err)
	}
	return nil
}

func (r *SQLitePreferencesRepo) value(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("preference %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("scanning preference %s: %w", key, err)
	}
	return v, nil
}
