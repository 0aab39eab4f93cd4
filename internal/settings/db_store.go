package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DBStore keeps Settings in the user_settings table, one row per profile.
type DBStore struct {
	db       *sqlx.DB
	profile  string
	defaults Settings
}

func NewDBStore(db *sqlx.DB, profile string, defaults Settings) *DBStore {
	return &DBStore{
		db:       db,
		profile:  profile,
		defaults: defaults,
	}
}

func (s *DBStore) Load(ctx context.Context) (Settings, error) {
	var settings Settings
	err := s.db.GetContext(ctx, &settings,
		"SELECT language_code, reverse_enabled FROM user_settings WHERE profile = ?",
		s.profile)
	if errors.Is(err, sql.ErrNoRows) {
		return s.defaults, nil
	}
	if err != nil {
		return s.defaults, fmt.Errorf("db.GetContext(user_settings) > %w", err)
	}
	return settings, nil
}

func (s *DBStore) Save(ctx context.Context, settings Settings) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_settings (profile, language_code, reverse_enabled)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE language_code = VALUES(language_code), reverse_enabled = VALUES(reverse_enabled)`,
		s.profile, settings.LanguageCode, settings.ReverseEnabled)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert user_settings) > %w", err)
	}
	return nil
}
