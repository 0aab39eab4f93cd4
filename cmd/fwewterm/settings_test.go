package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/fwewterm/internal/testutil"
)

func TestSettingsCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir, "http://127.0.0.1:1")

	got, err := executeCommand(t, "--config", cfgPath, "settings", "show")
	require.NoError(t, err)
	assert.Equal(t, "language: en (English)\ndirection: forward\n", got)

	got, err = executeCommand(t, "--config", cfgPath, "settings", "set", "--lang", "de", "--direction", "reverse")
	require.NoError(t, err)
	assert.Equal(t, "saved: language=de direction=reverse\n", got)

	got, err = executeCommand(t, "--config", cfgPath, "settings", "set", "--direction", "forward")
	require.NoError(t, err)
	assert.Equal(t, "saved: language=de direction=forward\n", got)

	got, err = executeCommand(t, "--config", cfgPath, "settings", "show")
	require.NoError(t, err)
	assert.Equal(t, "language: de (Deutsch)\ndirection: forward\n", got)
}

func TestSettingsSetCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "nothing to set",
			args:    []string{"settings", "set"},
			wantErr: "nothing to set",
		},
		{
			name:    "unsupported language",
			args:    []string{"settings", "set", "--lang", "xx"},
			wantErr: "unsupported language",
		},
		{
			name:    "invalid direction",
			args:    []string{"settings", "set", "--direction", "up"},
			wantErr: "invalid direction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := testutil.SetupTestConfig(t, t.TempDir(), "http://127.0.0.1:1")

			_, err := executeCommand(t, append([]string{"--config", cfgPath}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
