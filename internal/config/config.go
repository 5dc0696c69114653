// Package config reads runtime settings from the environment.
package config

import (
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/logging"
)

// Config holds everything the binary reads from its environment.
type Config struct {
	DBPath  string
	BaseURL string
	Addr    string

	// Language is set only when TRIAD_LANG is given and valid; it then wins
	// over the stored preference.
	Language domain.Language
	// SystemLanguage is detected from LC_ALL / LANG.
	SystemLanguage domain.Language

	LogFile   string
	LogLevel  slog.Level
	LogFormat string

	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings used when nothing is set.
func DefaultConfig() Config {
	dbPath := filepath.Join(".triad", "triad.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".triad", "triad.db")
	}
	return Config{
		DBPath:          dbPath,
		BaseURL:         "http://localhost:8080/",
		Addr:            "127.0.0.1:8080",
		SystemLanguage:  domain.LanguageEnglish,
		LogLevel:        slog.LevelInfo,
		LogFormat:       "text",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads the environment, falling back to defaults for any unset or
// invalid values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TRIAD_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TRIAD_BASE_URL"); v != "" {
		if u, err := url.Parse(v); err == nil && u.Scheme != "" && u.Host != "" {
			cfg.BaseURL = v
		}
	}
	if v := os.Getenv("TRIAD_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TRIAD_LANG"); v != "" {
		if l, err := domain.ParseLanguage(v); err == nil {
			cfg.Language = l
		}
	}
	cfg.SystemLanguage = i18n.DetectEnv(os.Getenv("LC_ALL"), os.Getenv("LANG"))

	cfg.LogFile = os.Getenv("TRIAD_LOG_FILE")
	if v := os.Getenv("TRIAD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = logging.ParseLevel(v)
	}
	if v := strings.ToLower(os.Getenv("TRIAD_LOG_FORMAT")); v == "text" || v == "json" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TRIAD_SHUTDOWN_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ShutdownTimeout = time.Duration(n) * time.Millisecond
		}
	}

	return cfg
}

// ResolveLanguage picks the language to run in: TRIAD_LANG when set,
// otherwise the preference (which already falls back to the system locale).
func (c Config) ResolveLanguage(prefs *domain.Preferences) domain.Language {
	if c.Language != "" {
		return c.Language
	}
	if prefs != nil && domain.ValidLanguages[prefs.Language] {
		return prefs.Language
	}
	return domain.Language(domain.CoalesceStr(string(c.SystemLanguage), string(domain.LanguageEnglish)))
}

// DefaultPreferences are the values used for anything not stored yet.
func (c Config) DefaultPreferences() domain.Preferences {
	return domain.Preferences{Language: c.SystemLanguage, Theme: domain.ThemeSystem}
}
