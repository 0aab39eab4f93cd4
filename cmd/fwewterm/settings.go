package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fwewterm/internal/dictionary"
	"github.com/at-ishikawa/fwewterm/internal/dictionary/fwew"
)

func newSettingsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the saved search settings",
	}
	command.AddCommand(newSettingsShowCommand(), newSettingsSetCommand())
	return command
}

func newSettingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "show",
		Args: cobra.NoArgs,
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

			saved, err := store.Load(ctx)
			if err != nil {
				return fmt.Errorf("store.Load > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "language: %s (%s)\ndirection: %s\n",
				saved.LanguageCode,
				fwew.LanguageName(saved.LanguageCode),
				dictionary.DirectionOf(saved.ReverseEnabled),
			)
			return err
		},
	}
}

func newSettingsSetCommand() *cobra.Command {
	var (
		languageCode string
		direction    = dictionary.DirectionForward
	)
	command := &cobra.Command{
		Use:  "set",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if languageCode == "" && !cmd.Flags().Changed("direction") {
				return fmt.Errorf("nothing to set: pass --lang or --direction")
			}

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

			saved, err := store.Load(ctx)
			if err != nil {
				return fmt.Errorf("store.Load > %w", err)
			}
			if languageCode != "" {
				if err := validateLanguage(languageCode); err != nil {
					return err
				}
				saved.LanguageCode = languageCode
			}
			if cmd.Flags().Changed("direction") {
				saved.ReverseEnabled = direction.IsReverse()
			}

			if err := store.Save(ctx, saved); err != nil {
				return fmt.Errorf("store.Save > %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved: language=%s direction=%s\n",
				saved.LanguageCode, dictionary.DirectionOf(saved.ReverseEnabled))
			return err
		},
	}
	command.Flags().StringVar(&languageCode, "lang", "", "language code of definitions")
	command.Flags().Var(&direction, "direction", "search direction, forward or reverse")
	return command
}
