// Package config loads vcsgraph settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is looked up in the working directory when no config path
// is given
const DefaultFileName = ".vcsgraph.toml"

// Head orderings understood by the layout
const (
	HeadOrderIndex = "index"
	HeadOrderTime  = "time"
	HeadOrderRefs  = "refs"
)

// Config is the complete vcsgraph configuration
type Config struct {
	Log    LogConfig    `toml:"log"`
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Level string `toml:"level"`
}

// LayoutConfig controls lane assignment
type LayoutConfig struct {
	// HeadOrder is one of index, time or refs
	HeadOrder string `toml:"head_order"`

	// PreferredRefs are walked first, in this order, when HeadOrder is refs
	PreferredRefs []string `toml:"preferred_refs"`
}

// RenderConfig controls terminal output
type RenderConfig struct {
	MaxRows    int      `toml:"max_rows"`
	Color      bool     `toml:"color"`
	LaneColors []string `toml:"lane_colors"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Layout: LayoutConfig{
			HeadOrder:     HeadOrderRefs,
			PreferredRefs: []string{"HEAD", "main", "master"},
		},
		Render: RenderConfig{
			MaxRows: 0,
			Color:   true,
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultFileName
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	switch strings.ToLower(c.Layout.HeadOrder) {
	case HeadOrderIndex, HeadOrderTime, HeadOrderRefs:
		c.Layout.HeadOrder = strings.ToLower(c.Layout.HeadOrder)
	default:
		return fmt.Errorf("invalid layout.head_order %q: want %s, %s or %s",
			c.Layout.HeadOrder, HeadOrderIndex, HeadOrderTime, HeadOrderRefs)
	}

	if c.Render.MaxRows < 0 {
		return fmt.Errorf("invalid render.max_rows %d: must not be negative", c.Render.MaxRows)
	}

	for _, color := range c.Render.LaneColors {
		if !strings.HasPrefix(color, "#") || (len(color) != 4 && len(color) != 7) {
			return fmt.Errorf("invalid lane colour %q: want #RGB or #RRGGBB", color)
		}
	}

	return nil
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
