package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/d2verb/resolvepath"
	"github.com/d2verb/resolvepath/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration file.
type Config struct {
	// Strict surfaces stat errors on base paths instead of ignoring them.
	Strict bool      `yaml:"strict"`
	Log    LogConfig `yaml:"log"`
}

// LogConfig configures the rotating log file. An empty File disables file logging.
type LogConfig struct {
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Rotation returns the log rotation settings for the logging package.
func (l LogConfig) Rotation() logging.Config {
	return logging.Config{
		Path:       l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}

// DefaultConfig returns the configuration used when no file exists.
// File logging is off until a log file is configured.
func DefaultConfig() Config {
	rotation := logging.DefaultConfig("")
	return Config{
		Log: LogConfig{
			File:       rotation.Path,
			MaxSizeMB:  rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
			MaxAgeDays: rotation.MaxAgeDays,
			Compress:   rotation.Compress,
		},
	}
}

// Load reads the config file at path on top of DefaultConfig.
// A missing file is not an error. A relative log file is resolved against
// the directory holding the config file.
func Load(r *resolvepath.Resolver, path string) (Config, error) {
	cfg := DefaultConfig()

	path, err := r.TryResolve(path)
	if err != nil {
		return cfg, fmt.Errorf("resolve config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Log.File != "" {
		file, err := r.TryResolveIn(cfg.Log.File, path)
		if err != nil {
			return cfg, fmt.Errorf("resolve log file: %w", err)
		}
		cfg.Log.File = file
	}
	return cfg, nil
}

// Write saves cfg to path, creating or truncating the file.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
