// Package config provides configuration management for the scanner.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Provider    ProviderConfig `mapstructure:"provider"`
	Scan        ScanConfig     `mapstructure:"scan"`
	Cache       CacheConfig    `mapstructure:"cache"`
	UI          UIConfig       `mapstructure:"ui"`
	Logging     LoggingConfig  `mapstructure:"logging"`
	Credentials Credentials    `mapstructure:"-"` // Loaded separately
}

// ProviderConfig holds market data provider configuration.
type ProviderConfig struct {
	Name           string `mapstructure:"name"` // "tiingo"
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ScanConfig holds the default analysis parameters. Each can be overridden
// per run with command flags.
type ScanConfig struct {
	RollingWindow      int     `mapstructure:"rolling_window"`
	VolumeThresholdPct float64 `mapstructure:"volume_threshold_pct"`
	PriceThresholdPct  float64 `mapstructure:"price_threshold_pct"`
	HoldingPeriodDays  int     `mapstructure:"holding_period_days"`
}

// CacheConfig holds local bar cache configuration.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  bool   `mapstructure:"file"`
}

// Credentials holds API credentials.
type Credentials struct {
	Tiingo TiingoCredentials `mapstructure:"tiingo"`
}

// TiingoCredentials holds the Tiingo API token.
type TiingoCredentials struct {
	APIToken string `mapstructure:"api_token"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/breakout-scanner"
	}
	return filepath.Join(home, ".config", "breakout-scanner")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// Defaults mirror the original tool's input form.
	v.SetDefault("provider.name", "tiingo")
	v.SetDefault("provider.timeout_seconds", 30)
	v.SetDefault("scan.rolling_window", 20)
	v.SetDefault("scan.volume_threshold_pct", 200.0)
	v.SetDefault("scan.price_threshold_pct", 2.0)
	v.SetDefault("scan.holding_period_days", 10)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", filepath.Join(configDir, "bars.db"))
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createTemplateConfig(configDir)
		}
		return err
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing credentials only matter once a network fetch happens.
			return nil
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TIINGO_API_TOKEN"); v != "" {
		cfg.Credentials.Tiingo.APIToken = v
	}
	if v := os.Getenv("SCANNER_PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Provider.Name != "" && c.Provider.Name != "tiingo" {
		return fmt.Errorf("unknown provider: %s", c.Provider.Name)
	}
	if c.Scan.RollingWindow < 2 {
		return fmt.Errorf("scan.rolling_window must be at least 2")
	}
	if c.Scan.VolumeThresholdPct <= 100 {
		return fmt.Errorf("scan.volume_threshold_pct must be greater than 100")
	}
	if c.Scan.PriceThresholdPct <= 0 {
		return fmt.Errorf("scan.price_threshold_pct must be greater than 0")
	}
	if c.Scan.HoldingPeriodDays < 1 {
		return fmt.Errorf("scan.holding_period_days must be at least 1")
	}
	return nil
}
