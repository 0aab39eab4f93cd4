package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLStore_Load(t *testing.T) {
	defaults := Settings{LanguageCode: "en"}

	tests := []struct {
		name    string
		content *string
		want    Settings
		wantErr bool
	}{
		{
			name: "missing file returns defaults",
			want: defaults,
		},
		{
			name:    "saved settings",
			content: ptr("language_code: de\nreverse_enabled: true\n"),
			want:    Settings{LanguageCode: "de", ReverseEnabled: true},
		},
		{
			name:    "missing keys keep defaults",
			content: ptr("reverse_enabled: true\n"),
			want:    Settings{LanguageCode: "en", ReverseEnabled: true},
		},
		{
			name:    "broken file",
			content: ptr("language_code: [[["),
			want:    defaults,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}

			got, err := NewYAMLStore(path, defaults).Load(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYAMLStore_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.yml")
	store := NewYAMLStore(path, Settings{LanguageCode: "en"})

	want := Settings{LanguageCode: "fr", ReverseEnabled: true}
	require.NoError(t, store.Save(context.Background(), want))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "language_code: fr\nreverse_enabled: true\n", string(contents))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func ptr[T any](v T) *T {
	return &v
}
