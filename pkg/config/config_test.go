package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/blacktop/qview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cb, err := cfg.Checkerboard()
	require.NoError(t, err)
	assert.Equal(t, qview.DefaultCheckerboard, cb)

	dx, _ := cfg.Bindings().Lookup('D').Offset()
	assert.Equal(t, qview.DefaultCoarseStep, dx)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
fine_step = 2
coarse_step = 16

[checker]
odd = "#102030"
even = "#f0e0d0"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 2, cfg.FineStep)
	assert.Equal(t, 16, cfg.CoarseStep)

	cb, err := cfg.Checkerboard()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}, cb.Odd)
	assert.Equal(t, color.RGBA{R: 0xF0, G: 0xE0, B: 0xD0, A: 0xFF}, cb.Even)

	_, dy := cfg.Bindings().Lookup('s').Offset()
	assert.Equal(t, -2, dy)
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "coarse_step = 5\n"))
	require.NoError(t, err)
	assert.Equal(t, qview.DefaultFineStep, cfg.FineStep)
	assert.Equal(t, 5, cfg.CoarseStep)
	assert.Equal(t, "#aaaaaa", cfg.Checker.Odd)
	assert.Equal(t, "#dddddd", cfg.Checker.Even)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed TOML", body: "fine_step = = 1"},
		{name: "Zero fine step", body: "fine_step = 0"},
		{name: "Negative coarse step", body: "coarse_step = -10"},
		{name: "Bad odd color", body: "[checker]\nodd = \"gray\""},
		{name: "Bad even color", body: "[checker]\neven = \"#zzzzzz\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadSearchesXDG(t *testing.T) {
	home := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "qview"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, RelPath), []byte("fine_step = 3\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.FineStep)
}
