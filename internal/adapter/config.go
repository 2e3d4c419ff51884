package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	UI      UIConfig      `mapstructure:"ui"`
	Journal JournalConfig `mapstructure:"journal"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BackendConfig names the backend executable spoken to over stdio
type BackendConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	AlbumColumns int    `mapstructure:"album_columns"`
}

// JournalConfig controls event recording
type JournalConfig struct {
	Path   string `mapstructure:"path"`
	Record bool   `mapstructure:"record"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			Command: "muse-backend",
			Args:    []string{},
		},
		UI: UIConfig{
			Theme:        "default",
			AlbumColumns: 4,
		},
		Journal: JournalConfig{
			Path: filepath.Join(defaultDataPath(), "journal.db"),
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "muse.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the per-user data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "muse")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "muse")
	}
}

// DefaultConfigDir returns the directory searched for config.yaml
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "muse")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "muse")
	}
}

// LoadConfig loads configuration from file and MUSE_* environment
// variables. An empty path searches the default config directory and the
// working directory; a missing file there is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("backend.command", cfg.Backend.Command)
	v.SetDefault("backend.args", cfg.Backend.Args)
	v.SetDefault("ui.theme", cfg.UI.Theme)
	v.SetDefault("ui.album_columns", cfg.UI.AlbumColumns)
	v.SetDefault("journal.path", cfg.Journal.Path)
	v.SetDefault("journal.record", cfg.Journal.Record)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. MUSE_BACKEND_COMMAND
	v.SetEnvPrefix("MUSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if cfg.UI.AlbumColumns < 1 {
		cfg.UI.AlbumColumns = 1
	}

	return cfg, nil
}

// SaveConfig writes cfg to path, or to the default location when empty
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("backend.command", cfg.Backend.Command)
	v.Set("backend.args", cfg.Backend.Args)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.album_columns", cfg.UI.AlbumColumns)
	v.Set("journal.path", cfg.Journal.Path)
	v.Set("journal.record", cfg.Journal.Record)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
