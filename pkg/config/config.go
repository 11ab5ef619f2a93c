// Package config loads qview settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/adrg/xdg"
	"github.com/blacktop/qview"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RelPath is the config file location relative to the XDG config directories
const RelPath = "qview/config.toml"

type Config struct {
	FineStep   int           `koanf:"fine_step"`   // pixels moved by a/d/s/w
	CoarseStep int           `koanf:"coarse_step"` // pixels moved by A/D/S/W
	Checker    CheckerConfig `koanf:"checker"`

	// Path is the file the config was read from, empty for defaults
	Path string `koanf:"-"`
}

// CheckerConfig holds the two checkerboard shades as hex colors
type CheckerConfig struct {
	Odd  string `koanf:"odd"`
	Even string `koanf:"even"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		FineStep:   qview.DefaultFineStep,
		CoarseStep: qview.DefaultCoarseStep,
		Checker: CheckerConfig{
			Odd:  "#aaaaaa",
			Even: "#dddddd",
		},
	}
}

// Load reads the config at path. An empty path searches the XDG config
// directories for qview/config.toml and falls back to the defaults when
// there is none.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(RelPath)
		if err != nil {
			return Default(), nil
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, which must exist
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the steps and colors
func (c *Config) Validate() error {
	var errs []error
	if c.FineStep < 1 {
		errs = append(errs, fmt.Errorf("fine_step must be at least 1, got %d", c.FineStep))
	}
	if c.CoarseStep < 1 {
		errs = append(errs, fmt.Errorf("coarse_step must be at least 1, got %d", c.CoarseStep))
	}
	if _, err := c.Checkerboard(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Bindings returns the key table for the configured steps
func (c *Config) Bindings() qview.Bindings {
	return qview.NewBindings(c.FineStep, c.CoarseStep)
}

// Checkerboard returns the configured transparency pattern
func (c *Config) Checkerboard() (qview.Checkerboard, error) {
	odd, err := parseHex(c.Checker.Odd)
	if err != nil {
		return qview.Checkerboard{}, fmt.Errorf("checker.odd: %w", err)
	}
	even, err := parseHex(c.Checker.Even)
	if err != nil {
		return qview.Checkerboard{}, fmt.Errorf("checker.even: %w", err)
	}
	return qview.Checkerboard{Odd: odd, Even: even}, nil
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
