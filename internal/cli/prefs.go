package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/triad/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errNoPreferenceStore = errors.New("preferences are not available")

func newPrefsCmd(app *App) *cobra.Command {
	var lang, theme string
	var reset bool

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the saved language and theme",
		Example: "  triad prefs\n" +
			"  triad prefs --lang cs --theme light\n" +
			"  triad prefs --reset",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Preferences == nil {
				return errNoPreferenceStore
			}
			ctx := cmd.Context()

			switch {
			case reset:
				if err := app.Preferences.Reset(ctx); err != nil {
					return fmt.Errorf("resetting preferences: %w", err)
				}
			case lang != "" || theme != "":
				if _, err := app.Preferences.Update(ctx, lang, theme); err != nil {
					return err
				}
			}

			prefs, err := app.Preferences.Get(ctx)
			if err != nil {
				return fmt.Errorf("loading preferences: %w", err)
			}
			formatter.ApplyTheme(prefs.Theme)
			tr := app.translator(prefs.Language)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPreferences(*prefs, tr))
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "language to save (en|cs)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme to save (light|dark|system)")
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the saved preferences")
	cmd.MarkFlagsMutuallyExclusive("reset", "lang")
	cmd.MarkFlagsMutuallyExclusive("reset", "theme")
	return cmd
}
