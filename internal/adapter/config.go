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

// Picker modes for search result selection
const (
	PickerAuto = "auto" // TUI when stdin is a terminal, line prompt otherwise
	PickerTUI  = "tui"
	PickerLine = "line"
)

// Config holds all application configuration
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Playback PlaybackConfig `mapstructure:"playback"`
	UI       UIConfig       `mapstructure:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// CatalogConfig selects the video catalog to load
type CatalogConfig struct {
	Path   string `mapstructure:"path"`   // Empty loads the built-in sample library
	Format string `mapstructure:"format"` // "text", "bolt", or empty to sniff the extension
}

// PlaybackConfig holds playback configuration
type PlaybackConfig struct {
	Seed uint64 `mapstructure:"seed"` // Random play seed; 0 = nondeterministic
}

// UIConfig holds UI configuration
type UIConfig struct {
	Picker string `mapstructure:"picker"` // "auto", "tui" or "line"
	Color  bool   `mapstructure:"color"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// envKeyReplacer maps nested keys to env names: catalog.path -> REEL_CATALOG_PATH
var envKeyReplacer = strings.NewReplacer(".", "_")

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:   "",
			Format: "",
		},
		UI: UIConfig{
			Picker: PickerAuto,
			Color:  true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel", "reel.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel", "reel.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "reel")
	}
}

// LoadConfig loads configuration from file and environment.
// configFile overrides the search path when non-empty.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Defaults registered with viper so environment overrides apply on Unmarshal
	v.SetDefault("catalog.path", cfg.Catalog.Path)
	v.SetDefault("catalog.format", cfg.Catalog.Format)
	v.SetDefault("playback.seed", cfg.Playback.Seed)
	v.SetDefault("ui.picker", cfg.UI.Picker)
	v.SetDefault("ui.color", cfg.UI.Color)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	// Environment variable overrides, e.g. REEL_CATALOG_PATH
	v.SetEnvPrefix("REEL")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolvePicker returns PickerTUI or PickerLine for the configured mode.
// The TUI picker needs a terminal on stdin, so without one every mode
// resolves to the line prompt.
func ResolvePicker(mode string, interactive bool) string {
	if interactive && (mode == PickerTUI || mode == PickerAuto) {
		return PickerTUI
	}
	return PickerLine
}

// Validate rejects values the application cannot act on
func (c *Config) Validate() error {
	switch c.UI.Picker {
	case PickerAuto, PickerTUI, PickerLine:
	default:
		return fmt.Errorf("invalid ui.picker %q (want auto, tui or line)", c.UI.Picker)
	}
	switch c.Catalog.Format {
	case "", "text", "bolt":
	default:
		return fmt.Errorf("invalid catalog.format %q (want text or bolt)", c.Catalog.Format)
	}
	return nil
}
