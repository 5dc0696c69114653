package cli

import (
	"fmt"

	"github.com/alexanderramin/triad/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// runTUI starts the interactive simulator on the state given by the flags.
// The final share link is printed on exit so the state survives the session.
func runTUI(cmd *cobra.Command, app *App, flags *stateFlags) error {
	ctx := cmd.Context()
	prefs, err := app.settings(ctx, flags.lang)
	if err != nil {
		return err
	}
	loc, err := flags.location()
	if err != nil {
		return err
	}

	formatter.ApplyTheme(prefs.Theme)
	tr := app.translator(prefs.Language)
	sim := app.newSimulator(loc, tr)
	sim.Init(ctx)

	state := &SharedState{App: app, Sim: sim, Loc: tr, Prefs: prefs}
	if _, err := app.runProgram(newAppModel(state)); err != nil {
		return fmt.Errorf("running simulator: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), sim.Snapshot(ctx).ShareLink)
	return nil
}
