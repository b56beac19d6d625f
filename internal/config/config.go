// Package config loads the recase configuration from recase.yaml and the
// environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the recase configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Convert  ConvertConfig  `mapstructure:"convert"`
}

// ServerConfig represents the comments service configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	// Path is the SQLite database file
	Path string `mapstructure:"path"`
}

// ConvertConfig holds default conversion options applied by the CLI when
// the corresponding flag is not set
type ConvertConfig struct {
	NormalizeDiacritics bool   `mapstructure:"normalize_diacritics"`
	Locale              string `mapstructure:"locale"`
	PreserveNumbers     bool   `mapstructure:"preserve_numbers"`
}

// Load loads the configuration from recase.yml or recase.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.path", "recase.db")
	v.SetDefault("convert.preserve_numbers", true)

	// Set config name and paths
	v.SetConfigName("recase")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("RECASE")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Address returns the server listen address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// OptionBag converts the configured conversion defaults to the option bag
// shape consumed by caseconv.ParseOptions
func (c *ConvertConfig) OptionBag() map[string]any {
	bag := map[string]any{
		"normalizeDiacritics": c.NormalizeDiacritics,
		"preserveNumbers":     c.PreserveNumbers,
	}
	if c.Locale != "" {
		bag["locale"] = c.Locale
	}
	return bag
}

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	return nil
}
