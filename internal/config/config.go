package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "smarthome"

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// StorageConfig selects where the dashboard keeps its state
type StorageConfig struct {
	// file, sqlite or memory
	Backend string `yaml:"backend"`
	// Data directory for file, database path for sqlite
	Path string `yaml:"path"`
}

// LogConfig controls the log file
type LogConfig struct {
	// debug, info, warn or error
	Level string `yaml:"level"`
	// Path of the rotating log file
	File string `yaml:"file"`
}

// UIConfig holds dashboard defaults
type UIConfig struct {
	// Theme used when no settings are stored yet
	Theme string `yaml:"theme"`
	// Number of activity entries kept in memory and in the store
	HistoryLimit int `yaml:"history_limit"`
}

// Config stores all application configuration
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`

	// File the configuration was read from
	path string
}

var ErrUnknownBackend = errors.New("unknown storage backend")

// dir returns $XDG_<kind>_HOME/smarthome, falling back to ~/<fallback>/smarthome
func dir(envVar string, fallback ...string) (string, error) {
	if xdg := os.Getenv(envVar); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, appName)...), nil
}

// ConfigDir returns the configuration directory path
func ConfigDir() (string, error) {
	return dir("XDG_CONFIG_HOME", ".config")
}

// DataDir returns the directory holding persisted dashboard state
func DataDir() (string, error) {
	return dir("XDG_DATA_HOME", ".local", "share")
}

// StateDir returns the directory holding logs
func StateDir() (string, error) {
	return dir("XDG_STATE_HOME", ".local", "state")
}

// DefaultPath returns the full path to the config file
func DefaultPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// Default returns the configuration used when no file exists
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration from path, or from DefaultPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{path: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Keep the empty config, defaults are applied below
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() error {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Storage.Path == "" {
		if err := c.SetDefaultStoragePath(); err != nil {
			return err
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		d, err := StateDir()
		if err != nil {
			return err
		}
		c.Log.File = filepath.Join(d, appName+".log")
	}
	if c.UI.HistoryLimit <= 0 {
		c.UI.HistoryLimit = 50
	}
	return nil
}

// SetDefaultStoragePath points Storage.Path at the data directory
// (file backend) or a database inside it (sqlite backend).
func (c *Config) SetDefaultStoragePath() error {
	d, err := DataDir()
	if err != nil {
		return err
	}
	switch c.Storage.Backend {
	case BackendSQLite:
		c.Storage.Path = filepath.Join(d, appName+".db")
	default:
		c.Storage.Path = d
	}
	return nil
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%q: %w", c.Storage.Backend, ErrUnknownBackend)
	}
	switch c.UI.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("ui.theme must be light or dark, got %q", c.UI.Theme)
	}
	return nil
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to the file it was loaded from,
// or to DefaultPath for a config built in memory.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}
	c.path = path
	return nil
}
