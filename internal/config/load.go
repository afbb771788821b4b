package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "SOCIAL"

// ConfigDirEnv names an extra directory searched for config.yaml.
const ConfigDirEnv = "SOCIAL_CONFIG_DIR"

var defaults = map[string]any{
	"server.port":                        8080,
	"server.log_level":                   "info",
	"server.log_file":                    "",
	"server.shutdown_timeout_seconds":    15,
	"database.url":                       "",
	"database.max_open_conns":            25,
	"database.max_idle_conns":            25,
	"database.conn_max_lifetime_minutes": 5,
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
