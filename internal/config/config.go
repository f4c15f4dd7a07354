// Package config loads taskline settings from a TOML file under the user
// config directory. Every field is optional; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	tlerrors "github.com/kvisser/taskline/internal/errors"
	"github.com/kvisser/taskline/internal/snapshot"
	"github.com/kvisser/taskline/internal/task"
)

// Config holds user-level settings. SnapshotPath points at the persisted
// task snapshot; DarkMode and Celebrate are presentation preferences the
// core never reads or writes.
type Config struct {
	SnapshotPath    string `toml:"snapshot_path"`
	DefaultCategory string `toml:"default_category"`
	DefaultPriority string `toml:"default_priority"`
	DarkMode        bool   `toml:"dark_mode"`
	Celebrate       bool   `toml:"celebrate"`
}

// Load reads configuration in priority order: defaults, then the user
// config file. Flag overrides are applied by the CLI afterwards.
func Load() (*Config, error) {
	cfg := defaults()

	path, err := userConfigFile()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if err := loadFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges a TOML file into cfg. Unlike the task snapshot, the config
// file is developer-facing, so a malformed file is an error rather than a
// silent fallback.
func loadFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		DefaultCategory: string(task.CategoryOther),
		DefaultPriority: string(task.PriorityMedium),
		Celebrate:       true,
	}
}

func validate(cfg *Config) error {
	if !task.IsValidCategory(task.Category(cfg.DefaultCategory)) {
		return tlerrors.InvalidCategoryError{Value: cfg.DefaultCategory}
	}
	if !task.IsValidPriority(task.Priority(cfg.DefaultPriority)) {
		return tlerrors.InvalidPriorityError{Value: cfg.DefaultPriority}
	}
	return nil
}

// ResolveSnapshotPath returns the configured snapshot path, falling back to
// the default location under the user config directory.
func (c *Config) ResolveSnapshotPath() (string, error) {
	if c.SnapshotPath != "" {
		return c.SnapshotPath, nil
	}
	return snapshot.DefaultPath()
}

func userConfigFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taskline", "config.toml"), nil
}
