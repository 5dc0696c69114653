package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/triad/internal/cli/formatter"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/spf13/cobra"
)

func newAdjustCmd(app *App) *cobra.Command {
	var flags stateFlags
	var out evalOutput

	cmd := &cobra.Command{
		Use:   "adjust <factor> <value>",
		Short: "Drag one slider and print the resulting state",
		Long: "Moves one factor to value, spreads the difference over the other two\n" +
			"and normalizes the shares back to 100%.",
		Example: "  triad adjust time 70\n" +
			"  triad adjust quality 20 --url 'http://localhost:8080/?time=50&budget=25&quality=25'",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, err := domain.ParseFactor(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: must be a number", args[1])
			}

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

			e, err := sim.Adjust(ctx, factor, value)
			if err != nil {
				return err
			}
			return printEvaluation(cmd.OutOrStdout(), e, tr, out)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&out.json, "json", false, "print the evaluation as JSON")
	cmd.Flags().BoolVar(&out.analysis, "analysis", false, "include the detailed analysis")
	cmd.Flags().BoolVar(&out.breakdown, "breakdown", false, "list the rules that moved the score")
	cmd.Flags().BoolVar(&out.link, "link", true, "print the share link")
	return cmd
}
