package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	logFile    string
	debugMode  bool

	logOutput io.Closer
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "fwewterm",
		Short:         "Look up Na'vi words in the fwew dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var output io.Writer = os.Stderr
			if logFile != "" {
				file, err := openLogFile(logFile)
				if err != nil {
					return err
				}
				logOutput = file
				output = file
			}
			setupLogger(output, debugMode)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logOutput == nil {
				return nil
			}
			err := logOutput.Close()
			logOutput = nil
			return err
		},
		RunE: runSearch,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newSearchCommand(),
		newLookupCommand(),
		newListCommand(),
		newSettingsCommand(),
		newExportCommand(),
		newMigrateCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(output io.Writer, debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func openLogFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("os.OpenFile(%s) > %w", path, err)
	}
	return file, nil
}
