// Package testutil provides shared test helpers for config files and a fake fwew API.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes a config file pointing to baseURL with a file settings store
// under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`api:
  base_url: %s
settings:
  backend: file
  file: %s
  default_language: en
ui:
  log_file: %s
`,
		baseURL,
		SettingsFile(tmpDir),
		filepath.Join(tmpDir, "fwewterm.log"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

func SettingsFile(tmpDir string) string {
	return filepath.Join(tmpDir, "settings", "settings.yml")
}

// NewFwewServer serves the given JSON bodies by escaped request path.
// Any other path gets a 404 with a structured error body.
func NewFwewServer(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body, ok := bodies[r.URL.EscapedPath()]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprintf(w, `{"message": "no results: %s"}`, r.URL.Path)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}
