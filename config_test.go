package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), ConfigFile))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "backend = \"go-git\"\ncolor = \"auto\"\ndebug = true\n")

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Backend: BackendGoGit, Color: ColorAuto, Debug: true}, cfg)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "debug = true\n")

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Backend: BackendCLI, Color: ColorAlways, Debug: true}, cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":        "backend = [",
		"wrong type":    "debug = \"yes\"",
		"unknown value": "backend = \"hg\"",
		"unknown color": "color = \"sometimes\"",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := loadConfigFile(writeConfig(t, content))
			assert.Error(t, err)
			assert.Equal(t, defaultConfig(), cfg)
		})
	}
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "promptline", "config.toml"), path)
}
