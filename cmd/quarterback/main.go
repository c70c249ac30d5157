package main

import (
	"fmt"
	"os"

	"github.com/lszabadkai/quarterback/internal/cli"
	"github.com/lszabadkai/quarterback/internal/config"
	"github.com/lszabadkai/quarterback/internal/db"
	"github.com/lszabadkai/quarterback/internal/export"
	"github.com/lszabadkai/quarterback/internal/repository"
	"github.com/lszabadkai/quarterback/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	personRepo := repository.NewSQLitePersonRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Team:     service.NewTeamService(personRepo),
		Settings: service.NewSettingsService(settingsRepo),
		Snapshot: export.NewSnapshotter(projectRepo, personRepo, settingsRepo),
		Config:   cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
