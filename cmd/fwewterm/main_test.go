package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/fwewterm/internal/testutil"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			setupLogger(&buf, tt.debugMode)

			logger := slog.Default()
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))

			logger.Info("fetched", "endpoint", "/list/")
			assert.Contains(t, buf.String(), "endpoint=/list/")
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "fwewterm", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	for _, flag := range []string{"config", "log-file", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"search", "lookup", "list", "settings", "export", "migrate"}, names)
}

func TestLogFileFlag(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir, "http://127.0.0.1:1")
	path := filepath.Join(tmpDir, "debug.log")
	t.Cleanup(func() {
		setupLogger(os.Stderr, false)
	})

	_, err := executeCommand(t, "--log-file", path, "--debug", "--config", cfgPath, "settings", "show")
	require.NoError(t, err)
	assert.Nil(t, logOutput)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "level=DEBUG")
}
