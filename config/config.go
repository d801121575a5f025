// Package config loads the application configuration for rroguelib
// frontends.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the top-level application configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Font    FontConfig    `yaml:"font"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig contains window creation parameters.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// FontConfig names the font file and its point size.
type FontConfig struct {
	Path      string  `yaml:"path"`
	PointSize float32 `yaml:"point_size"`
}

// RenderConfig contains render colors as RGB triples in [0,1].
type RenderConfig struct {
	ClearColor [3]float32 `yaml:"clear_color"`
	GridColor  [3]float32 `yaml:"grid_color"`
	TextColor  [3]float32 `yaml:"text_color"`
}

// LoggingConfig configures the leveled logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty means stdout only
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "rroguelib",
			Width:  1920,
			Height: 1080,
			VSync:  true,
		},
		Font: FontConfig{
			Path:      "fonts/square.ttf",
			PointSize: 24,
		},
		Render: RenderConfig{
			ClearColor: [3]float32{0, 0, 0},
			GridColor:  [3]float32{1, 1, 1},
			TextColor:  [3]float32{1, 1, 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file is
// not an error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
