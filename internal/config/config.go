// Package config loads the editor configuration from a TOML file and
// watches it for live reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Editor holds text editing settings.
type Editor struct {
	// TabWidth is the number of columns a tab character occupies.
	TabWidth int `toml:"tab_width"`

	// ScrollMarginVertical keeps the cursor this many rows from the
	// window edges while scrolling.
	ScrollMarginVertical int `toml:"scroll_margin_vertical"`

	// ScrollMarginHorizontal keeps the cursor this many columns from
	// the window edges while scrolling.
	ScrollMarginHorizontal int `toml:"scroll_margin_horizontal"`
}

// UI holds presentation settings.
type UI struct {
	// Theme selects the color theme by name.
	Theme string `toml:"theme"`

	// Welcome controls the banner shown for an empty unnamed document.
	Welcome bool `toml:"welcome"`
}

// Search holds search behavior settings.
type Search struct {
	// Wrap continues from the opposite end of the document when match
	// navigation runs past the first or last match.
	Wrap bool `toml:"wrap"`
}

// Config is the root of the configuration file.
type Config struct {
	Editor Editor `toml:"editor"`
	UI     UI     `toml:"ui"`
	Search Search `toml:"search"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			TabWidth:               4,
			ScrollMarginVertical:   0,
			ScrollMarginHorizontal: 0,
		},
		UI: UI{
			Theme:   "default",
			Welcome: true,
		},
		Search: Search{
			Wrap: true,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scribe", "config.toml")
}

// Load reads the file at path over the defaults. A missing file yields
// the defaults without error; a malformed or invalid file returns the
// defaults alongside the error so the caller can keep running.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects values the editor cannot operate with.
func (c Config) validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width must be between 1 and 16, got %d", c.Editor.TabWidth)
	}
	if c.Editor.ScrollMarginVertical < 0 {
		return fmt.Errorf("editor.scroll_margin_vertical must not be negative")
	}
	if c.Editor.ScrollMarginHorizontal < 0 {
		return fmt.Errorf("editor.scroll_margin_horizontal must not be negative")
	}
	return nil
}
