// Package settings persists the lookup preferences of a user between sessions.
package settings

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/fwewterm/internal/config"
	"github.com/jmoiron/sqlx"
)

type Settings struct {
	LanguageCode   string `yaml:"language_code" db:"language_code"`
	ReverseEnabled bool   `yaml:"reverse_enabled" db:"reverse_enabled"`
}

//go:generate mockgen -source=settings.go -destination=../mocks/settings/mock_store.go -package=mock_settings

// Store loads and saves Settings. Load returns the defaults when nothing has been saved yet.
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

func Defaults(cfg config.SettingsConfig) Settings {
	return Settings{
		LanguageCode: cfg.DefaultLanguage,
	}
}

// New returns the store for the configured backend. db is only used by the mysql backend.
func New(cfg config.SettingsConfig, db *sqlx.DB) (Store, error) {
	switch cfg.Backend {
	case config.SettingsBackendMySQL:
		if db == nil {
			return nil, fmt.Errorf("the %s settings backend requires a database connection", cfg.Backend)
		}
		return NewDBStore(db, cfg.Profile, Defaults(cfg)), nil
	case config.SettingsBackendFile, "":
		return NewYAMLStore(cfg.File, Defaults(cfg)), nil
	default:
		return nil, fmt.Errorf("unknown settings backend: %s", cfg.Backend)
	}
}
