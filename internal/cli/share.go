package cli

import (
	"fmt"

	"github.com/alexanderramin/triad/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShareCmd(app *App) *cobra.Command {
	var flags stateFlags
	var noCopy bool

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Copy the share link of a state to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prefs, err := app.settings(ctx, flags.lang)
			if err != nil {
				return err
			}
			loc, err := flags.location()
			if err != nil {
				return err
			}

			tr := app.translator(prefs.Language)
			sim := app.newSimulator(loc, tr)
			sim.Init(ctx)

			if noCopy {
				fmt.Fprintln(cmd.OutOrStdout(), sim.Snapshot(ctx).ShareLink)
				return nil
			}

			formatter.ApplyTheme(prefs.Theme)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShare(sim.Share(ctx)))
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "print the link without touching the clipboard")
	return cmd
}
