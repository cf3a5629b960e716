// Package config loads the module's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/scribe-edit/scribe/internal/logger"
)

// Config holds the combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds buffer and highlighting settings.
type EditorConfig struct {
	TabWidth   int `toml:"tab_width"`
	MaxHistory int `toml:"max_history"`

	// Highlight enables the chroma highlighting pass.
	Highlight bool `toml:"highlight"`
	// Lexer overrides chroma's filename-based lexer detection.
	Lexer string `toml:"lexer"`

	// WatchFile enables on-disk change detection for open documents.
	WatchFile bool `toml:"watch_file"`
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:   DefaultTabWidth,
			MaxHistory: DefaultMaxHistory,
			Highlight:  true,
			WatchFile:  true,
		},
	}
}

// Load reads configuration from a TOML file, merged over defaults. A
// missing file is not an error; the defaults apply.
func Load(filePath string) (*Config, error) {
	cfg := NewDefaultConfig()

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("error checking config file %q: %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("config file %q: unrecognized keys: %v", filePath, undecoded)
	}

	cfg.validate()
	return cfg, nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName), nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}
