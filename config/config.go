// Package config holds the settings of the sieve command.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is read from yaml, missing keys keep their defaults.
type Config struct {
	// Catalog is the path of a locale catalog, empty for untranslated.
	Catalog string `yaml:"catalog,omitempty"`
	// LogPath receives the structured log, empty for stderr.
	LogPath string `yaml:"log_path,omitempty"`
	// Limit caps the records printed by search.
	Limit int `yaml:"limit"`
	// Timeout bounds loading filter catalogues.
	Timeout time.Duration `yaml:"timeout"`
}

func Default() *Config {
	return &Config{
		Limit:   20,
		Timeout: 5 * time.Second,
	}
}

// Load reads path over the defaults.  A missing file is not an error.
func Load(path string) (cfg *Config, err error) {

	cfg = Default()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal %s", path)
		return
	}

	if cfg.Limit <= 0 {
		err = errors.Errorf("limit must be positive, got %d", cfg.Limit)
	}
	return
}

// Write saves cfg as yaml unless path already exists.
func (cfg *Config) Write(path string, mode os.FileMode) (err error) {

	_, err = os.Stat(path)
	if err == nil {
		return errors.Errorf("will not overwrite %s", path)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}

	err = os.WriteFile(path, data, mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}
