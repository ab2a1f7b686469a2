// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Storage struct {
		Backend    string `mapstructure:"backend" yaml:"backend"`
		Directory  string `mapstructure:"directory" yaml:"directory"`
		SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	} `mapstructure:"storage" yaml:"storage"`

	Ledger struct {
		DefaultPortfolioName string `mapstructure:"default_portfolio_name" yaml:"default_portfolio_name"`
		Currency             string `mapstructure:"currency" yaml:"currency"`
		DebtCategory         string `mapstructure:"debt_category" yaml:"debt_category"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Reminders struct {
		DefaultLeadDays int `mapstructure:"default_lead_days" yaml:"default_lead_days"`
	} `mapstructure:"reminders" yaml:"reminders"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`

	Export struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return InitializeConfigFrom("")
}

// InitializeConfigFrom is InitializeConfig reading configFile instead of
// searching the standard locations when configFile is not empty.
func InitializeConfigFrom(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.financeos")
		v.AddConfigPath(".financeos")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("FINANCEOS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration made of defaults only.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// defaults always decode
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Storage defaults
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.directory", "~/.financeos/data")
	v.SetDefault("storage.sqlite_path", "~/.financeos/financeos.db")

	// Ledger defaults
	v.SetDefault("ledger.default_portfolio_name", "Main Portfolio")
	v.SetDefault("ledger.currency", "MXN")
	v.SetDefault("ledger.debt_category", "Debts")

	// Reminder defaults
	v.SetDefault("reminders.default_lead_days", 3)

	// Category defaults
	v.SetDefault("categories.file", "categories.yaml")

	// Export defaults
	v.SetDefault("export.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Storage.Backend {
	case "file":
		if strings.TrimSpace(config.Storage.Directory) == "" {
			return fmt.Errorf("storage.directory is required for the file backend")
		}
	case "sqlite":
		if strings.TrimSpace(config.Storage.SQLitePath) == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite backend")
		}
	case "memory":
	default:
		return fmt.Errorf("invalid storage backend: %s (must be 'file', 'sqlite' or 'memory')", config.Storage.Backend)
	}

	if strings.TrimSpace(config.Ledger.DefaultPortfolioName) == "" {
		return fmt.Errorf("ledger.default_portfolio_name must not be blank")
	}

	if len(config.Ledger.Currency) != 3 {
		return fmt.Errorf("ledger.currency must be a 3-letter ISO code, got: %s", config.Ledger.Currency)
	}

	if strings.TrimSpace(config.Ledger.DebtCategory) == "" {
		return fmt.Errorf("ledger.debt_category must not be blank")
	}

	if config.Reminders.DefaultLeadDays < 0 || config.Reminders.DefaultLeadDays > 365 {
		return fmt.Errorf("reminders.default_lead_days must be between 0 and 365, got: %d", config.Reminders.DefaultLeadDays)
	}

	if utf8.RuneCountInString(config.Export.Delimiter) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// DelimiterRune returns the export delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Export.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}
