package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fwewterm/internal/dictionary"
)

func newLookupCommand() *cobra.Command {
	var flags queryFlags
	command := &cobra.Command{
		Use:   "lookup <text>...",
		Short: "Look up a word once and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			ctx := cmd.Context()

			store, closeStore, err := openSettingsStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeStore(ctx)
			}()

			direction, languageCode, err := flags.resolve(ctx, cmd, store)
			if err != nil {
				return err
			}

			client := newClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			words, err := client.Lookup(ctx, strings.Join(args, " "), direction, languageCode)
			if err != nil {
				return printLookupError(cmd.OutOrStdout(), fmt.Errorf("client.Lookup > %w", err))
			}
			return printWords(cmd.OutOrStdout(), words, languageCode)
		},
	}
	flags.register(command)
	return command
}

func newListCommand() *cobra.Command {
	var languageCode string
	command := &cobra.Command{
		Use:   "list",
		Short: "Print every word of the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if languageCode == "" {
				languageCode = cfg.Settings.DefaultLanguage
			}
			if err := validateLanguage(languageCode); err != nil {
				return err
			}

			client := newClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			words, err := client.List(cmd.Context())
			if err != nil {
				return printLookupError(cmd.OutOrStdout(), fmt.Errorf("client.List > %w", err))
			}
			return printWords(cmd.OutOrStdout(), words, languageCode)
		},
	}
	command.Flags().StringVar(&languageCode, "lang", "", "language code of definitions")
	return command
}

func asAPIError(err error) (*dictionary.APIError, bool) {
	var apiErr *dictionary.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
