package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/fwewterm/internal/assets"
	"github.com/at-ishikawa/fwewterm/internal/pdf"
)

func newExportCommand() *cobra.Command {
	var (
		flags        queryFlags
		output       string
		templatePath string
		toPDF        bool
		pdfOptions   pdf.Options
	)
	command := &cobra.Command{
		Use:   "export [text]...",
		Short: "Write lookup results to a Markdown file, optionally converted to PDF",
		Long:  "Without text, every word of the dictionary is exported.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if toPDF && !strings.HasSuffix(output, ".md") {
				return fmt.Errorf("--output must have the .md extension to convert it to PDF: %s", output)
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

			direction, languageCode, err := flags.resolve(ctx, cmd, store)
			if err != nil {
				return err
			}

			client := newClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			text := strings.Join(args, " ")
			words, err := client.Lookup(ctx, text, direction, languageCode)
			if err != nil {
				return printLookupError(cmd.OutOrStdout(), fmt.Errorf("client.Lookup > %w", err))
			}

			if templatePath == "" {
				templatePath = cfg.Templates.ExportTemplate
			}
			if err := writeMarkdown(output, templatePath, assets.WordsTemplate{
				Query:        text,
				Reverse:      direction.IsReverse(),
				LanguageCode: languageCode,
				Words:        words,
			}); err != nil {
				return err
			}
			outputPath := output

			if toPDF {
				outputPath, err = pdf.ConvertMarkdownToPDF(output, pdfOptions)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", output, err)
				}
			}
			_, err = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "exported %d words to %s\n", len(words), outputPath)
			return err
		},
	}
	flags.register(command)
	command.Flags().StringVarP(&output, "output", "o", "words.md", "output Markdown file")
	command.Flags().StringVar(&templatePath, "template", "", "template file. Defaults to templates.export_template or the built-in one")
	command.Flags().BoolVar(&toPDF, "pdf", false, "also convert the Markdown file to PDF")
	command.Flags().BoolVar(&pdfOptions.Dark, "dark", false, "use the dark PDF theme")
	command.Flags().StringVar(&pdfOptions.PageSize, "page-size", "A4", "PDF page size")
	return command
}

func writeMarkdown(path string, templatePath string, data assets.WordsTemplate) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := assets.WriteWords(file, templatePath, data); err != nil {
		return fmt.Errorf("assets.WriteWords > %w", err)
	}
	return nil
}
