package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(home string) *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Settings: SettingsConfig{
			Backend:         SettingsBackendFile,
			File:            filepath.Join(home, ".config", "fwewterm", "settings.yml"),
			Profile:         "default",
			DefaultLanguage: "en",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "fwewterm",
			Username: "user",
		},
		UI: UIConfig{
			PageSize: 10,
			LogFile:  "fwewterm.log",
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func(home string) *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `api:
  base_url: https://fwew.example.com/api
  timeout: 5s
  retry_attempts: 2
settings:
  file: custom/settings.yml
  profile: kiri
  default_language: de
ui:
  page_size: 20
  log_file: custom.log
`,
			want: func(home string) *Config {
				cfg := defaultConfig(home)
				cfg.API = APIConfig{
					BaseURL:       "https://fwew.example.com/api",
					Timeout:       5 * time.Second,
					RetryAttempts: 2,
				}
				cfg.Settings.File = "custom/settings.yml"
				cfg.Settings.Profile = "kiri"
				cfg.Settings.DefaultLanguage = "de"
				cfg.UI = UIConfig{PageSize: 20, LogFile: "custom.log"}
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `settings:
  default_language: fr
`,
			useExplicitPath: true,
			want: func(home string) *Config {
				cfg := defaultConfig(home)
				cfg.Settings.DefaultLanguage = "fr"
				return cfg
			},
		},
		{
			name: "environment variables override the file",
			configContent: `api:
  base_url: https://from-file.example.com
`,
			env: map[string]string{
				"FWEW_API_URL":     "https://from-env.example.com",
				"FWEW_DB_PASSWORD": "secret",
			},
			want: func(home string) *Config {
				cfg := defaultConfig(home)
				cfg.API.BaseURL = "https://from-env.example.com"
				cfg.Database.Password = "secret"
				return cfg
			},
		},
		{
			name: "mysql backend",
			configContent: `settings:
  backend: mysql
database:
  host: db
  port: 3307
  database: dictionary
  username: eywa
  tls: true
`,
			want: func(home string) *Config {
				cfg := defaultConfig(home)
				cfg.Settings.Backend = SettingsBackendMySQL
				cfg.Database = DatabaseConfig{
					Host:     "db",
					Port:     3307,
					Database: "dictionary",
					Username: "eywa",
					TLS:      true,
				}
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `api:
  base_url: https://fwew.example.com
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unsupported language",
			configContent: `settings:
  default_language: xx
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"settings.default_language must be one of",
			},
		},
		{
			name: "invalid base URL",
			configContent: `api:
  base_url: not a url
`,
			wantErr:           true,
			wantErrorContains: []string{"base_url"},
		},
		{
			name: "unknown settings backend",
			configContent: `settings:
  backend: sqlite
`,
			wantErr:           true,
			wantErrorContains: []string{"backend"},
		},
		{
			name: "mysql backend without a database name",
			configContent: `settings:
  backend: mysql
database:
  database: ""
`,
			wantErr:           true,
			wantErrorContains: []string{"database"},
		},
		{
			name: "export template must exist",
			configContent: `templates:
  export_template: /non/existent/template.md.go.tmpl
`,
			wantErr:           true,
			wantErrorContains: []string{"templates.export_template must be an existing and readable file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			home := filepath.Join(tempDir, "home")
			require.NoError(t, os.MkdirAll(home, 0755))
			t.Setenv("HOME", home)
			t.Setenv("FWEW_API_URL", "")
			t.Setenv("FWEW_DB_PASSWORD", "")
			t.Setenv("FWEW_SETTINGS_BACKEND", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "custom.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want(home), got)
		})
	}
}
