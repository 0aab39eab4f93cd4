package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAMLStore keeps Settings in a single YAML file.
type YAMLStore struct {
	path     string
	defaults Settings
}

func NewYAMLStore(path string, defaults Settings) *YAMLStore {
	return &YAMLStore{
		path:     path,
		defaults: defaults,
	}
}

func (s *YAMLStore) Load(_ context.Context) (Settings, error) {
	contents, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.defaults, nil
	}
	if err != nil {
		return s.defaults, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	// keys missing from the file keep their defaults
	settings := s.defaults
	if err := yaml.Unmarshal(contents, &settings); err != nil {
		return s.defaults, fmt.Errorf("yaml.Unmarshal(%s) > %w", s.path, err)
	}
	if settings.LanguageCode == "" {
		settings.LanguageCode = s.defaults.LanguageCode
	}
	return settings, nil
}

func (s *YAMLStore) Save(_ context.Context, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(s.path), err)
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", s.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewEncoder(file).Encode(settings); err != nil {
		return fmt.Errorf("yaml.Encode(%s) > %w", s.path, err)
	}
	return nil
}
