package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/service"
	"github.com/alexanderramin/triad/internal/urlstate"
	tea "github.com/charmbracelet/bubbletea"
)

// settings resolves the language and theme for this run. override is the
// value of a --lang flag and wins over everything else.
func (a *App) settings(ctx context.Context, override string) (domain.Preferences, error) {
	prefs := a.Config.DefaultPreferences()
	if a.Preferences != nil {
		stored, err := a.Preferences.Get(ctx)
		if err != nil {
			return prefs, err
		}
		prefs = *stored
	}
	prefs.Language = a.Config.ResolveLanguage(&prefs)

	if override != "" {
		lang, err := domain.ParseLanguage(override)
		if err != nil {
			return prefs, fmt.Errorf("invalid --lang: %w", err)
		}
		prefs.Language = lang
	}
	return prefs.Sanitize(), nil
}

func (a *App) catalog() *i18n.Catalog {
	if a.Catalog != nil {
		return a.Catalog
	}
	return i18n.Default()
}

func (a *App) translator(lang domain.Language) i18n.Translator {
	return a.catalog().Translator(lang)
}

func (a *App) newSimulator(loc urlstate.Location, tr i18n.Translator) service.SimulatorService {
	return service.NewSimulator(loc, a.Clipboard, tr, a.Config.BaseURL, a.Observers...)
}

func (a *App) runProgram(m tea.Model) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}
