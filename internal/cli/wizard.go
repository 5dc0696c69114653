package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/triad/internal/cli/formatter"
	"github.com/alexanderramin/triad/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// triadHuhTheme returns a huh theme using the active Gruvbox palette.
func triadHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// languageNames are shown in their own language so a user who cannot read
// the current one still finds theirs.
var languageNames = map[domain.Language]string{
	domain.LanguageEnglish: "English",
	domain.LanguageCzech:   "Čeština",
}

// settingsForm is a language select followed by a theme select, both
// starting at the current values.
func settingsForm(state *SharedState, lang *domain.Language, theme *domain.Theme) *huh.Form {
	loc := state.Loc
	*lang = state.Prefs.Language
	*theme = state.Prefs.Theme

	langOpts := make([]huh.Option[domain.Language], 0, len(domain.Languages))
	for _, l := range domain.Languages {
		langOpts = append(langOpts, huh.NewOption(languageNames[l], l))
	}
	themeOpts := make([]huh.Option[domain.Theme], 0, len(domain.Themes))
	for _, th := range domain.Themes {
		themeOpts = append(themeOpts, huh.NewOption(loc.T(string(th)), th))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Language]().
				Title(loc.T("language")).
				Options(langOpts...).
				Value(lang),
			huh.NewSelect[domain.Theme]().
				Title(loc.T("theme")).
				Options(themeOpts...).
				Value(theme),
		),
	).WithTheme(triadHuhTheme()).WithShowHelp(false)
}

// newSettingsView pushes the language and theme form. Submitting saves the
// choice and switches the running TUI over.
func newSettingsView(state *SharedState) *wizardView {
	var lang domain.Language
	var theme domain.Theme
	form := settingsForm(state, &lang, &theme)
	return newWizardView(state, "settings", form, func() tea.Cmd {
		return applySettings(state, lang, theme)
	})
}

// applySettings stores the chosen preferences and applies them to the
// running session. A failed save still applies them for this run.
func applySettings(state *SharedState, lang domain.Language, theme domain.Theme) tea.Cmd {
	prefs := domain.Preferences{Language: lang, Theme: theme}.WithDefaults(state.Prefs)
	state.ApplyPreferences(prefs)

	if state.App.Preferences == nil {
		return notice(state.Loc.T("settings_saved"), true)
	}
	if _, err := state.App.Preferences.Update(context.Background(), string(prefs.Language), string(prefs.Theme)); err != nil {
		return notice(fmt.Sprintf("%s: %v", state.Loc.T("error"), err), false)
	}
	return notice(state.Loc.T("settings_saved"), true)
}
