package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/skiff/config"
	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSceneDefault(t *testing.T) {
	sched := ecs.NewScheduler()
	g, err := loadScene(sched, "", game.DefaultArena)
	require.NoError(t, err)

	assert.Equal(t, g.scene.Objects, sched.Objects())
	assert.Zero(t, g.scene.Score.Get())
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := loadScene(ecs.NewScheduler(), filepath.Join(t.TempDir(), "none.yaml"), game.DefaultArena)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skiff.log")
	log, err := newLogger(config.LoggingConfig{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	log.Debug("hello")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	log, err := newLogger(config.LoggingConfig{Level: "loud"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1))
	assert.True(t, log.Core().Enabled(0))
}
