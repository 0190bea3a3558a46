// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads the converter's YAML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the commands. Command line flags
// override these values when they are set.
type Config struct {
	// DataDir holds the region files, named <region>.json.
	DataDir string `yaml:"data_dir"`
	// EnlirDir holds the reference dataset. Empty disables it.
	EnlirDir string `yaml:"enlir_dir"`
	// Database is the archive path. Empty disables archiving.
	Database string   `yaml:"database"`
	Workers  int      `yaml:"workers"`
	Regions  []string `yaml:"regions"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DataDir:  "data",
		EnlirDir: "enlir",
		Workers:  4,
		Regions:  []string{"gl", "jp"},
	}
}

// Load loads the configuration from a YAML file. Missing settings keep
// their defaults. If the file doesn't exist, returns defaults.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Workers < 1 {
		return cfg, fmt.Errorf("config %s: workers must be at least 1", path)
	} else if len(cfg.Regions) == 0 {
		return cfg, fmt.Errorf("config %s: no regions", path)
	}

	return cfg, nil
}
