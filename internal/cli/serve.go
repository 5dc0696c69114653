package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/triad/internal/logging"
	"github.com/alexanderramin/triad/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr, baseURL string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator page over HTTP",
		Long: "Starts the web simulator. The page state lives in the query string,\n" +
			"so every address is a shareable link.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Request logs go to stderr unless a log file was configured.
			if app.Config.LogFile == "" {
				logging.Init(app.Config.LogLevel, app.Config.LogFormat, cmd.ErrOrStderr())
			}

			srv, err := web.NewServer(addr, web.Options{
				Catalog:     app.catalog(),
				Preferences: app.Preferences,
				Defaults:    app.Config.DefaultPreferences(),
				Language:    app.Config.Language,
				BaseURL:     baseURL,
				Observers:   app.Observers,
				Logger:      logging.New("web"),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Serving the simulator on http://%s/ (Ctrl+C to stop)\n", addr)
			return web.ListenAndRun(ctx, srv, app.Config.ShutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", app.Config.Addr, "listen address")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "share link base (default: derived from each request)")
	return cmd
}
