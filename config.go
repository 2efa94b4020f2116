package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	ConfigDir  = "promptline"
	ConfigFile = "config.toml"
)

const (
	BackendGoGit = "go-git"
	BackendCLI   = "git"
)

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Config represents the promptline configuration
type Config struct {
	Backend string `toml:"backend"`
	Color   string `toml:"color"`
	Debug   bool   `toml:"debug"`
}

func defaultConfig() *Config {
	return &Config{
		// go-git hashes the whole worktree to compute status, git uses the
		// index stat cache.
		Backend: BackendCLI,
		// Prompts capture stdout through a pipe, so terminal detection would
		// always turn color off.
		Color: ColorAlways,
	}
}

// ConfigPath returns the location of the config file under the user config directory
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigDir, ConfigFile), nil
}

// LoadConfig loads the configuration, falling back to defaults when no file exists.
// On any other error the defaults are returned along with the error.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return defaultConfig(), err
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return defaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendGoGit, BackendCLI:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	switch c.Color {
	case ColorAlways, ColorAuto, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}
