package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fwewterm/internal/bootstrap"
	"github.com/at-ishikawa/fwewterm/internal/screen"
	"github.com/at-ishikawa/fwewterm/internal/tui"
)

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Search the dictionary interactively (default)",
		Args:  cobra.NoArgs,
		RunE:  runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	app := bootstrap.New()
	// The alternate screen owns the terminal, so logs go to a file.
	if logFile == "" && cfg.UI.LogFile != "" {
		file, err := openLogFile(cfg.UI.LogFile)
		if err != nil {
			return err
		}
		setupLogger(file, debugMode)
		app.AddShutdownHook(func(context.Context) error {
			return file.Close()
		})
	}

	store, closeStore, err := openSettingsStore(cfg)
	if err != nil {
		return err
	}
	app.AddShutdownHook(closeStore)

	client := newClient(cfg)
	app.AddShutdownHook(func(context.Context) error {
		return client.Close()
	})

	return app.Run(cmd.Context(), func(ctx context.Context) error {
		searchScreen := screen.New(cfg.API.BaseURL, store, cfg.Settings.DefaultLanguage)
		model := tui.New(ctx, searchScreen, tui.FetchCmd(ctx, client), tui.Options{
			PageSize: cfg.UI.PageSize,
		})

		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("program.Run > %w", err)
		}
		return nil
	})
}
