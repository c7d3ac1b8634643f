// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/voxel/base/errors"
)

// Config is the application configuration, read from TOML or YAML files.
type Config struct {

	// LogLevel is the minimum level of log messages that are shown.
	LogLevel string `toml:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`

	// BorderColor is the color of the border value of new volumes.
	// The border of a volume is what reads outside of its region return.
	BorderColor uint8 `toml:"border_color" yaml:"border_color"`

	// MaxVolumeBytes is the largest volume that [Context.NewVolume]
	// allocates. Zero disables the limit.
	MaxVolumeBytes int `toml:"max_volume_bytes" yaml:"max_volume_bytes" validate:"gte=0"`

	// DefaultSize is the edge length of the cube that
	// [Context.NewDefaultVolume] allocates.
	DefaultSize int32 `toml:"default_size" yaml:"default_size" validate:"min=1,max=4096"`

	// Metrics is whether the scene graph collector is registered.
	Metrics bool `toml:"metrics" yaml:"metrics"`
}

// Defaults sets the default values of all fields.
func (c *Config) Defaults() {
	c.LogLevel = "info"
	c.BorderColor = 0
	c.MaxVolumeBytes = 1 << 30
	c.DefaultSize = 128
	c.Metrics = true
}

var validate = validator.New()

// Validate returns an error describing every invalid field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("app: invalid config: %w", err)
	}
	return nil
}

// OpenConfig returns the default config overwritten by the given files
// in order, so that later files win. The format of each file is chosen
// by its extension: .toml, .yaml or .yml. Unknown keys are errors.
// The result is validated.
func OpenConfig(files ...string) (*Config, error) {
	c := &Config{}
	c.Defaults()
	var errs []error
	for _, file := range files {
		errs = append(errs, c.Open(file))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Open reads the given file into the config, leaving fields the file
// does not set unchanged. It does not validate the result.
func (c *Config) Open(file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(c)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(c)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return fmt.Errorf("app: config file %q: unsupported format", file)
	}
	if err != nil {
		return fmt.Errorf("app: config file %q: %w", file, err)
	}
	return nil
}

// Save writes the config to the given file, in the format
// given by its extension.
func (c *Config) Save(file string) error {
	var b []byte
	var err error
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		b, err = toml.Marshal(c)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("app: config file %q: unsupported format", file)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0o644)
}
