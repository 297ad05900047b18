// Package config loads the skiff TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/plus3/skiff/geom"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Arena   ArenaConfig   `toml:"arena"`
	Debug   DebugConfig   `toml:"debug"`
	Scene   SceneConfig   `toml:"scene"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"` // ticks per second
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

// ArenaConfig is the playfield ships are clamped to and bullets are culled
// outside of.
type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type DebugConfig struct {
	Enabled bool `toml:"enabled"` // imgui overlay
}

type SceneConfig struct {
	Path  string `toml:"path"`  // empty uses the built-in scene
	Watch bool   `toml:"watch"` // reload on write
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "skiff",
			Width:  640,
			Height: 480,
			TPS:    60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Arena: ArenaConfig{
			Width:  640,
			Height: 480,
		},
	}
}

// ArenaBox returns the arena as a box anchored at the origin.
func (c *Config) ArenaBox() geom.Box {
	return geom.NewBox(0, 0, c.Arena.Width, c.Arena.Height)
}

func (c *Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("window tps %d must be positive", c.Window.TPS)
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("arena size %gx%g must be positive", c.Arena.Width, c.Arena.Height)
	}
	return nil
}
