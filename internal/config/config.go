// Package config handles loading tally.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Theme names accepted in the config file and on the command line.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultBreakpoint is the column count at which the wide layout
// kicks in.
const DefaultBreakpoint = 100

const defaultBanner = "**Welcome to tally!** Press `?` for keys, `b` to dismiss this banner."

// Config represents the tally.toml configuration file.
type Config struct {
	UI     UI     `toml:"ui"`
	Layout Layout `toml:"layout"`
}

// UI contains appearance-related configuration.
type UI struct {
	// Theme selects the initial palette, "light" or "dark".
	Theme string `toml:"theme"`

	// Banner is the markdown shown in the dismissible banner.
	Banner string `toml:"banner"`
}

// Layout contains responsive-layout configuration.
type Layout struct {
	// Breakpoint is the terminal width, in columns, at or above which
	// the cards render side by side.
	Breakpoint int `toml:"breakpoint"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI:     UI{Theme: ThemeLight, Banner: defaultBanner},
		Layout: Layout{Breakpoint: DefaultBreakpoint},
	}
}

// Load reads configuration from path, or from the per-user config
// file when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := ValidateTheme(cfg.UI.Theme); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if cfg.Layout.Breakpoint <= 0 {
		cfg.Layout.Breakpoint = DefaultBreakpoint
	}

	return cfg, nil
}

// ValidateTheme checks a theme name from config or flags.
func ValidateTheme(name string) error {
	switch name {
	case ThemeLight, ThemeDark:
		return nil
	}
	return fmt.Errorf("unknown theme %q (want %q or %q)", name, ThemeLight, ThemeDark)
}

func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "tally", "config.toml"), nil
}
