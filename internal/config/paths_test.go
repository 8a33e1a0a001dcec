package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty path", input: "", expected: ""},
		{name: "absolute path", input: "/absolute/path", expected: "/absolute/path"},
		{name: "relative path", input: "relative/path", expected: "relative/path"},
		{name: "home directory only", input: "~", expected: homeDir},
		{name: "path with tilde", input: "~/.blueprints", expected: filepath.Join(homeDir, ".blueprints")},
		{name: "tilde username pattern (not expanded)", input: "~username/file", expected: "~username/file"},
		{name: "tilde in middle (not expanded)", input: "/path/~/file", expected: "/path/~/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".blueprint"), paths.HomeDir)
	assert.Equal(t, filepath.Join(homeDir, ".blueprint", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile_Env(t *testing.T) {
	t.Setenv("BLUEPRINT_CONFIG", "/env/config.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/env/config.yaml", path)
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	store := filepath.Join(root, ".blueprints")
	deep := filepath.Join(root, "src", "components", "ui")
	require.NoError(t, os.MkdirAll(store, 0o755))
	require.NoError(t, os.MkdirAll(deep, 0o755))

	t.Run("finds store in ancestor", func(t *testing.T) {
		got, found := FindProjectRoot(deep, ".blueprints", "")
		assert.True(t, found)
		assert.Equal(t, store, got)
	})

	t.Run("skips excluded directory", func(t *testing.T) {
		got, found := FindProjectRoot(deep, ".blueprints", store)
		if found {
			assert.NotEqual(t, store, got)
		} else {
			assert.Equal(t, filepath.Join(deep, ".blueprints"), got)
		}
	})

	t.Run("falls back to start directory", func(t *testing.T) {
		other := t.TempDir()
		got, found := FindProjectRoot(other, ".no-such-store-name", "")
		assert.False(t, found)
		assert.Equal(t, filepath.Join(other, ".no-such-store-name"), got)
	})
}
