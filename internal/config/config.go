// Package config handles configuration loading for datwatch.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"       yaml:"api"`
	Fetch     FetchConfig     `mapstructure:"fetch"     yaml:"fetch"`
	Providers ProvidersConfig `mapstructure:"providers" yaml:"providers"`
	Audit     AuditConfig     `mapstructure:"audit"     yaml:"audit"`
	Portfolio PortfolioConfig `mapstructure:"portfolio" yaml:"portfolio"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// FetchConfig holds market data fetch settings.
type FetchConfig struct {
	CacheTTL          int `mapstructure:"cache_ttl"          yaml:"cache_ttl"`          // seconds
	ConcurrentFetches int `mapstructure:"concurrent_fetches" yaml:"concurrent_fetches"`
	RefreshInterval   int `mapstructure:"refresh_interval"   yaml:"refresh_interval"` // seconds, websocket push cadence
	RetryAttempts     int `mapstructure:"retry_attempts"     yaml:"retry_attempts"`
	RetryDelaySec     int `mapstructure:"retry_delay_sec"    yaml:"retry_delay_sec"`
}

// ProvidersConfig holds upstream data source settings.
type ProvidersConfig struct {
	FREDAPIKey   string `mapstructure:"fred_api_key"  yaml:"fred_api_key"`
	SECUserAgent string `mapstructure:"sec_user_agent" yaml:"sec_user_agent"` // SEC requires a contact UA
}

// AuditConfig holds data verification log settings.
type AuditConfig struct {
	DBPath string `mapstructure:"db_path" yaml:"db_path"`
}

// PortfolioPosition is one tracked holding from the config file.
type PortfolioPosition struct {
	Ticker    string   `mapstructure:"ticker"     yaml:"ticker"`
	Shares    float64  `mapstructure:"shares"     yaml:"shares"`
	CostBasis *float64 `mapstructure:"cost_basis" yaml:"cost_basis"` // nil when unknown
}

// PortfolioConfig holds the user's tracked positions.
type PortfolioConfig struct {
	Positions []PortfolioPosition `mapstructure:"positions" yaml:"positions"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "console" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.datwatch/config.yaml (home directory)
//  3. /etc/datwatch/config.yaml (system)
//
// Environment variables override config file values.
// Format: DATWATCH_<SECTION>_<KEY>, e.g., DATWATCH_PROVIDERS_FRED_API_KEY
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".datwatch"))
	v.AddConfigPath("/etc/datwatch")

	v.SetEnvPrefix("DATWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not found is fine, defaults plus env vars apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("DATWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// Fetch defaults
	v.SetDefault("fetch.cache_ttl", 300) // 5 minutes
	v.SetDefault("fetch.concurrent_fetches", 6)
	v.SetDefault("fetch.refresh_interval", 60)
	v.SetDefault("fetch.retry_attempts", 3)
	v.SetDefault("fetch.retry_delay_sec", 2)

	// Provider defaults
	v.SetDefault("providers.sec_user_agent", "datwatch/1.0 (research; contact@reservelabs.xyz)")

	// Audit defaults
	v.SetDefault("audit.db_path", filepath.Join(homeDir(), ".datwatch", "audit.db"))

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("DATWATCH_PROVIDERS_FRED_API_KEY"); key != "" {
		cfg.Providers.FREDAPIKey = key
	}
	if ua := os.Getenv("DATWATCH_PROVIDERS_SEC_USER_AGENT"); ua != "" {
		cfg.Providers.SECUserAgent = ua
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
