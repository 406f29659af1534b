// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns a Config with every default applied and no graph source.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the YAML file at path and applies defaults.
// It does not validate; call Validate once flags have been merged in.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes. Unknown keys are rejected. An empty document
// yields Default().
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Report.MaxComponents == 0 {
		c.Report.MaxComponents = 5
	}
	if c.Generate != nil {
		if c.Generate.Spacing == 0 {
			c.Generate.Spacing = 1
		}
		if c.Generate.Kind == KindGrid {
			if c.Generate.NY == 0 {
				c.Generate.NY = 1
			}
			if c.Generate.NZ == 0 {
				c.Generate.NZ = 1
			}
		}
	}
}
