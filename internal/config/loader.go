package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/palm/internal/fsutil"
	"github.com/spf13/viper"
)

const (
	// ConfigFile is the config file name looked up in the working directory.
	ConfigFile = "ui_config.json"
	// EnvPrefix prefixes environment overrides, e.g. PALM_RUN_PYTHON.
	EnvPrefix = "PALM"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	Getwd() (string, error)
	ReadFile(path string) ([]byte, error)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs         FileSystem
	configFile string
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: fsutil.NewOSFileSystem()}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// SetConfigFile sets an explicit config file path. An explicit file must exist.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// Path returns the file Load reads.
func (l *Loader) Path() (string, error) {
	if l.configFile != "" {
		return l.configFile, nil
	}
	dir, err := l.fs.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Load reads ui_config.json from the working directory (or the explicit file)
// and merges it over defaults. PALM_* environment variables override both.
// Returns the defaults if the implicit file doesn't exist or the working
// directory can't be determined.
// Returns error only for parse errors, permission issues, a missing explicit
// file, or validation failures.
func (l *Loader) Load() (*Config, error) {
	defaults, err := json.Marshal(DefaultConfig())
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Seeding with the defaults registers every key, which is what lets
	// AutomaticEnv reach keys the file doesn't mention.
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, err
	}

	data, err := l.readFile()
	if err != nil {
		return nil, err
	}
	if data != nil {
		if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
			return nil, &ParseError{Cause: err}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &ParseError{Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) readFile() ([]byte, error) {
	path, err := l.Path()
	if err != nil {
		return nil, nil // Use defaults if the working directory is unknown
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && l.configFile == "" {
			return nil, nil // Use defaults if the file doesn't exist
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
