package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/triad/internal/cli"
	"github.com/alexanderramin/triad/internal/clipboard"
	"github.com/alexanderramin/triad/internal/config"
	"github.com/alexanderramin/triad/internal/db"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/logging"
	"github.com/alexanderramin/triad/internal/repository"
	"github.com/alexanderramin/triad/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// The TUI owns the terminal, so logs only go to a file when one is set.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logging.Init(cfg.LogLevel, cfg.LogFormat, f)
	} else {
		logging.Discard()
	}

	catalog, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	observer := service.NewSlogUseCaseObserver(logging.New("service"))
	prefs := service.NewPreferencesService(
		repository.NewSQLitePreferencesRepo(database),
		db.NewSQLiteUnitOfWork(database),
		cfg.DefaultPreferences(),
		observer,
	)

	app := &cli.App{
		Config:      cfg,
		Preferences: prefs,
		Catalog:     catalog,
		Clipboard:   clipboard.System{},
		Observers:   []service.UseCaseObserver{observer},
	}

	// Detect interactive terminal for the bare command.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
