package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	SettingsBackendFile  = "file"
	SettingsBackendMySQL = "mysql"

	DefaultBaseURL = "https://tirea.learnnavi.org/api"
)

type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Settings  SettingsConfig  `mapstructure:"settings"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"-"`
	Templates TemplatesConfig `mapstructure:"templates"`
	UI        UIConfig        `mapstructure:"ui"`
}

type APIConfig struct {
	BaseURL       string        `mapstructure:"base_url" validate:"required,url"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"min=0"`
	RetryAttempts uint          `mapstructure:"retry_attempts" validate:"max=5"`
}

type SettingsConfig struct {
	Backend         string `mapstructure:"backend" validate:"oneof=file mysql"`
	File            string `mapstructure:"file" validate:"required_if=Backend file"`
	Profile         string `mapstructure:"profile" validate:"required"`
	DefaultLanguage string `mapstructure:"default_language" validate:"language"`
}

// DatabaseConfig is only validated when the settings backend is mysql.
type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"required,min=1,max=65535"`
	Database        string            `mapstructure:"database" validate:"required"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type TemplatesConfig struct {
	ExportTemplate string `mapstructure:"export_template" validate:"omitempty,file"`
}

type UIConfig struct {
	PageSize int    `mapstructure:"page_size" validate:"min=1"`
	LogFile  string `mapstructure:"log_file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fwewterm")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func defaultSettingsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "settings.yml"
	}
	return filepath.Join(home, ".config", "fwewterm", "settings.yml")
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("api.base_url", DefaultBaseURL)
	// No timeout unless configured: a lookup waits for the service as long as it takes.
	v.SetDefault("api.timeout", 0)
	v.SetDefault("api.retry_attempts", 0)
	v.SetDefault("settings.backend", SettingsBackendFile)
	v.SetDefault("settings.file", defaultSettingsFile())
	v.SetDefault("settings.profile", "default")
	v.SetDefault("settings.default_language", "en")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "fwewterm")
	v.SetDefault("database.username", "user")
	v.SetDefault("templates.export_template", "")
	v.SetDefault("ui.page_size", 10)
	v.SetDefault("ui.log_file", "fwewterm.log")

	if err := v.BindEnv("api.base_url", "FWEW_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind FWEW_API_URL environment variable: %w", err)
	}
	if err := v.BindEnv("settings.backend", "FWEW_SETTINGS_BACKEND"); err != nil {
		return nil, fmt.Errorf("failed to bind FWEW_SETTINGS_BACKEND environment variable: %w", err)
	}
	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "FWEW_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind FWEW_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (loader *ConfigLoader) validate(cfg Config) error {
	var errorMsgs []string
	collect := func(err error) error {
		if err == nil {
			return nil
		}
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil
	}

	if err := collect(loader.validator.Struct(cfg)); err != nil {
		return fmt.Errorf("validator.Struct > %w", err)
	}
	if cfg.Settings.Backend == SettingsBackendMySQL {
		if err := collect(loader.validator.Struct(cfg.Database)); err != nil {
			return fmt.Errorf("validator.Struct(database) > %w", err)
		}
	}

	if len(errorMsgs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}
	return nil
}
