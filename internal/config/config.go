package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API    APIConfig
	Search SearchConfig
	Log    LogConfig
}

// APIConfig holds backend settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// SearchConfig holds live-search settings.
type SearchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// LogConfig holds diagnostics settings. Logs go to a file; stdout belongs to
// the TUI.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix SCRIBE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("search.debounce_ms", 1000)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "scribe", "scribe.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SCRIBE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "scribe"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SCRIBE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.API.BaseURL == "" {
		return Config{}, fmt.Errorf("api.base_url must not be empty")
	}
	if c.Search.DebounceMS <= 0 {
		return Config{}, fmt.Errorf("search.debounce_ms must be positive, got %d", c.Search.DebounceMS)
	}
	return c, nil
}
