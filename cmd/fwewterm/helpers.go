package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fwewterm/internal/config"
	"github.com/at-ishikawa/fwewterm/internal/database"
	"github.com/at-ishikawa/fwewterm/internal/dictionary"
	"github.com/at-ishikawa/fwewterm/internal/dictionary/fwew"
	"github.com/at-ishikawa/fwewterm/internal/settings"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded configuration",
		"base_url", cfg.API.BaseURL,
		"settings_backend", cfg.Settings.Backend,
	)
	return cfg, nil
}

func newClient(cfg *config.Config) *dictionary.Client {
	return dictionary.NewClient(dictionary.Config{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		RetryAttempts: cfg.API.RetryAttempts,
	})
}

// openSettingsStore returns the configured store and a function releasing its resources.
func openSettingsStore(cfg *config.Config) (settings.Store, func(context.Context) error, error) {
	closeStore := func(context.Context) error { return nil }

	var db *sqlx.DB
	if cfg.Settings.Backend == config.SettingsBackendMySQL {
		var err error
		db, err = database.Open(cfg.Database)
		if err != nil {
			return nil, closeStore, fmt.Errorf("database.Open > %w", err)
		}
		closeStore = func(context.Context) error {
			return db.Close()
		}
	}

	store, err := settings.New(cfg.Settings, db)
	if err != nil {
		_ = closeStore(context.Background())
		return nil, func(context.Context) error { return nil }, fmt.Errorf("settings.New > %w", err)
	}
	return store, closeStore, nil
}

func validateLanguage(languageCode string) error {
	if slices.Contains(fwew.LanguageCodes(), languageCode) {
		return nil
	}
	return fmt.Errorf("unsupported language %q, must be one of %s", languageCode, strings.Join(fwew.LanguageCodes(), " "))
}

type queryFlags struct {
	direction    dictionary.Direction
	languageCode string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	f.direction = dictionary.DirectionForward
	cmd.Flags().Var(&f.direction, "direction", "search direction, forward or reverse. Defaults to the saved setting")
	cmd.Flags().StringVar(&f.languageCode, "lang", "", "language code of definitions. Defaults to the saved setting")
}

// resolve fills the flags the user did not set from the saved settings.
func (f queryFlags) resolve(ctx context.Context, cmd *cobra.Command, store settings.Store) (dictionary.Direction, string, error) {
	saved, err := store.Load(ctx)
	if err != nil {
		return "", "", fmt.Errorf("store.Load > %w", err)
	}

	direction := f.direction
	if !cmd.Flags().Changed("direction") {
		direction = dictionary.DirectionOf(saved.ReverseEnabled)
	}
	languageCode := f.languageCode
	if languageCode == "" {
		languageCode = saved.LanguageCode
	}
	if err := validateLanguage(languageCode); err != nil {
		return "", "", err
	}
	return direction, languageCode, nil
}

func printWords(output io.Writer, words []fwew.Word, languageCode string) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(output, "No results")
		return err
	}

	navi := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)
	for i, word := range words {
		line := fmt.Sprintf("%d: %s", i+1, navi.Sprint(word.Navi))
		if word.IPA != "" {
			line += " " + dim.Sprintf("[%s]", word.IPA)
		}
		if word.PartOfSpeech != "" {
			line += " " + word.PartOfSpeech
		}
		if _, err := fmt.Fprintf(output, "%s\t%s\n", line, word.Definition(languageCode)); err != nil {
			return err
		}
	}
	return nil
}

// printLookupError prints structured errors from the dictionary as a normal outcome.
func printLookupError(output io.Writer, err error) error {
	if apiErr, ok := asAPIError(err); ok {
		_, printErr := color.New(color.FgRed).Fprintln(output, apiErr.Payload.String())
		return printErr
	}
	return err
}
