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
	Storage StorageConfig
	UI      UIConfig
}

// StorageConfig holds the durable key-value store settings.
type StorageConfig struct {
	Path           string
	MigrationsPath string `mapstructure:"migrations_path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Theme names the palette used when no preference has been stored yet.
	Theme string
}

// Load reads configuration from file and env. Env var overrides use prefix
// KANBAN_ (e.g. KANBAN_STORAGE_PATH).
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("storage.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "kanban", "kanban.db"))
	v.SetDefault("storage.migrations_path", "internal/storage/migrations")
	v.SetDefault("ui.theme", "default")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KANBAN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "kanban"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KANBAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
