// Package config loads the demo server configuration through viper,
// from an optional config file and QUERYFILTER_-prefixed environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the demo server configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	API    APIConfig    `mapstructure:"api"`
	// LogLevel is a zerolog level name (trace, debug, info, warn,
	// error). Defaults to info.
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains listener settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// APIConfig contains query-string handling settings.
type APIConfig struct {
	FilterRoot      string `mapstructure:"filter_root"`       // query key for filter expressions
	SortKey         string `mapstructure:"sort_key"`          // query key for sort descriptors
	DefaultPageSize int    `mapstructure:"default_page_size"` // applied when the request names no limit
	MaxPageSize     int    `mapstructure:"max_page_size"`     // cap on requested limits, <=0 for none
}

// Load reads configuration with defaults, an optional
// queryfilter.yaml in the working directory, and environment
// overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("api.filter_root", "filter")
	v.SetDefault("api.sort_key", "sort")
	v.SetDefault("api.default_page_size", 25)
	v.SetDefault("api.max_page_size", 100)
	v.SetDefault("log_level", "info")

	v.SetConfigName("queryfilter")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("QUERYFILTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks bounds that would otherwise surface as confusing
// runtime behavior.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be 1-65535, got: %d", c.Server.Port)
	}
	if c.API.FilterRoot == "" {
		return fmt.Errorf("api filter_root must not be empty")
	}
	if c.API.MaxPageSize > 0 && c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api default_page_size %d exceeds max_page_size %d",
			c.API.DefaultPageSize, c.API.MaxPageSize)
	}
	return nil
}
