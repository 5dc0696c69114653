package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/triad/internal/cli/formatter"
	"github.com/alexanderramin/triad/internal/contract"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/spf13/cobra"
)

type evalOutput struct {
	json      bool
	analysis  bool
	breakdown bool
	link      bool
}

func newEvalCmd(app *App) *cobra.Command {
	var flags stateFlags
	var out evalOutput

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print the evaluation of a triangle state",
		Example: "  triad eval --time 70 --budget 15 --quality 15\n" +
			"  triad eval --url 'http://localhost:8080/?time=60&budget=20&quality=20' --json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, app, &flags, out)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&out.json, "json", false, "print the evaluation as JSON")
	cmd.Flags().BoolVar(&out.analysis, "analysis", true, "include the detailed analysis")
	cmd.Flags().BoolVar(&out.breakdown, "breakdown", false, "list the rules that moved the score")
	cmd.Flags().BoolVar(&out.link, "link", true, "print the share link")
	return cmd
}

func runEval(cmd *cobra.Command, app *App, flags *stateFlags, out evalOutput) error {
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

	return printEvaluation(cmd.OutOrStdout(), sim.Snapshot(ctx), tr, out)
}

func printEvaluation(w io.Writer, e *contract.Evaluation, tr i18n.Translator, out evalOutput) error {
	if out.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	}

	fmt.Fprint(w, formatter.FormatEvaluation(e, tr))
	if out.analysis {
		fmt.Fprintln(w)
		fmt.Fprint(w, formatter.FormatAnalysis(e, tr))
	}
	if out.breakdown {
		fmt.Fprintln(w)
		fmt.Fprintln(w, formatter.FormatBreakdown(e.Breakdown))
	}
	if out.link {
		fmt.Fprintf(w, "\n%s %s\n", formatter.Dim(tr.T("share_settings")+":"), e.ShareLink)
	}
	return nil
}
