package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/skiff/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skiff.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, geom.NewBox(0, 0, 640, 480), cfg.ArenaBox())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "arena"
tps = 30

[logging]
level = "debug"
format = "json"

[arena]
width = 800

[debug]
enabled = true

[scene]
path = "scenes/duel.yaml"
watch = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "arena", cfg.Window.Title)
	assert.Equal(t, 30, cfg.Window.TPS)
	assert.Equal(t, 640, cfg.Window.Width, "unset keys keep their default")
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
	assert.Equal(t, geom.NewBox(0, 0, 800, 480), cfg.ArenaBox())
	assert.True(t, cfg.Debug.Enabled)
	assert.Equal(t, SceneConfig{Path: "scenes/duel.yaml", Watch: true}, cfg.Scene)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[window\n"},
		{"wrong type", "[window]\nwidth = \"wide\"\n"},
		{"zero tps", "[window]\ntps = 0\n"},
		{"negative arena", "[arena]\nheight = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
