package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/navedit/internal/config"
)

func TestDebugLogName(t *testing.T) {
	now := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "navedit-menus-debug-2025-01-02-15-04-05.log", debugLogName(sessionMenus, now))
	assert.Equal(t, "navedit-post-debug-2025-01-02-15-04-05.log", debugLogName(sessionPost, now))
}

func TestDebugLogDirFollowsLogFile(t *testing.T) {
	app := &App{config: &config.Config{Logging: config.LoggingConfig{File: "/var/log/navedit/navedit.log"}}}

	dir, err := app.debugLogDir()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/navedit", dir)
}

func TestDebugLogDirDefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := (&App{config: &config.Config{}}).debugLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, config.DirName, "logs"), dir)

	dir, err = (&App{}).debugLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, config.DirName, "logs"), dir)
}

func TestCreateDebugLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	file, err := createDebugLogFile(dir, sessionMenus)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, dir, filepath.Dir(file.Name()))
	assert.True(t, strings.HasPrefix(filepath.Base(file.Name()), "navedit-menus-debug-"))

	content, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# navedit "+Version+" menus session started "))
}

func TestCreateDebugLogFileDirectoryError(t *testing.T) {
	// a regular file where the logs directory should go fails for every user
	blocker := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	file, err := createDebugLogFile(filepath.Join(blocker, "navedit"), sessionPost)
	require.Error(t, err)
	assert.Nil(t, file)
	assert.Contains(t, err.Error(), "failed to create logs directory")
}
