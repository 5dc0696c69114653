package cli

import (
	"github.com/alexanderramin/triad/internal/clipboard"
	"github.com/alexanderramin/triad/internal/config"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Config      config.Config
	Preferences service.PreferencesService
	Catalog     *i18n.Catalog
	Clipboard   clipboard.Writer
	Observers   []service.UseCaseObserver

	// IsInteractive reports whether stdin is a terminal. Nil means never,
	// so the bare command prints the evaluation instead of starting the TUI.
	IsInteractive func() bool
	// RunProgram runs a bubbletea model to completion. Nil uses an
	// alt-screen tea.Program.
	RunProgram func(m tea.Model) (tea.Model, error)
}

// NewRootCmd creates the top-level "triad" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var flags stateFlags
	root := &cobra.Command{
		Use:   "triad",
		Short: "Project triangle simulator",
		Long: "Balance time, budget and quality/scope and see how realistic the\n" +
			"project is. Without a subcommand, starts the interactive simulator\n" +
			"when attached to a terminal and prints the evaluation otherwise.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd, app, &flags)
			}
			return runEval(cmd, app, &flags, evalOutput{})
		},
	}
	flags.register(root.Flags())

	root.AddCommand(
		newEvalCmd(app),
		newAdjustCmd(app),
		newShareCmd(app),
		newPrefsCmd(app),
		newServeCmd(app),
	)

	return root
}
