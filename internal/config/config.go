// Package config loads the shell host configuration from a YAML file in the
// user's home directory. A missing or unreadable file falls back to the
// defaults; the engine itself takes no configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-user configuration file looked up in the home
// directory when no explicit path is given.
const FileName = ".friendlyclp.yaml"

// ShellConfig holds interactive shell settings.
type ShellConfig struct {
	Prompt           string `yaml:"prompt"`
	TranscriptLimit  int    `yaml:"transcript_limit"`
	HelpCacheMinutes int    `yaml:"help_cache_minutes"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the host configuration.
type Config struct {
	Shell ShellConfig `yaml:"shell"`
	Log   LogConfig   `yaml:"log"`
}

var defaultConfig = Config{
	Shell: ShellConfig{
		Prompt:           "> ",
		TranscriptLimit:  500,
		HelpCacheMinutes: 30,
	},
	Log: LogConfig{
		Level:  "info",
		Format: "text",
	},
}

// Default returns a copy of the built-in configuration.
func Default() Config {
	return defaultConfig
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, FileName), nil
}

// Load reads the configuration at path. An empty path means the default
// location. A missing file yields the defaults; a present but malformed
// file is an error so that typos do not silently vanish.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			cfg := Default()
			return &cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", c.Log.Level)
	}
	if c.Shell.TranscriptLimit < 1 {
		return fmt.Errorf("transcript_limit must be positive, got %d", c.Shell.TranscriptLimit)
	}
	if c.Shell.HelpCacheMinutes < 1 {
		return fmt.Errorf("help_cache_minutes must be positive, got %d", c.Shell.HelpCacheMinutes)
	}
	return nil
}
