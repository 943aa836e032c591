// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config provides run configuration loading for algoscope.
//
// Defaults are embedded in the binary; an optional YAML file overrides
// them. Every loaded configuration is validated before use.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MaxYAMLFileSize bounds config files at 1MB to keep a malformed or
// hostile file from ballooning memory.
const MaxYAMLFileSize = 1024 * 1024

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrConfigTooLarge indicates the config file exceeds MaxYAMLFileSize.
var ErrConfigTooLarge = errors.New("config file exceeds size limit")

// Config is the run configuration for the CLI and TUI.
type Config struct {
	// Algorithm is the display name of the sort to run.
	Algorithm string `yaml:"algorithm" validate:"required"`

	// InputLen is the generated sequence length.
	InputLen int `yaml:"input_len" validate:"gte=0,lte=1000000"`

	// Seed drives the input shuffle. Same seed, same input.
	Seed uint64 `yaml:"seed"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	// The embedded defaults are compiled in and known-good; failure here
	// is a build defect, not a runtime condition.
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load reads a YAML config file over the embedded defaults. A missing
// file is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if len(data) > MaxYAMLFileSize {
		return Config{}, fmt.Errorf("config %s: %w", path, ErrConfigTooLarge)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against its constraints.
func (c Config) Validate() error {
	return validate.Struct(c)
}
