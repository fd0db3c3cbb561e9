/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for renum.
package config

import "bennypowers.dev/renum/generate"

// Config represents the renum configuration.
type Config struct {
	// Format is the output format name: serde, enum, go, or ts.
	Format string `yaml:"format" json:"format"`

	// Name is the enum or type name for declaration-producing formats.
	Name string `yaml:"name" json:"name"`

	// Derives are the Rust derive traits for the enum format.
	Derives []string `yaml:"derives" json:"derives"`

	// Inputs are token-list files to read (globs supported).
	Inputs []string `yaml:"inputs" json:"inputs"`

	// Output is the file generated code is written to. Empty means stdout.
	Output string `yaml:"output" json:"output"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Format: string(generate.FormatSerde),
	}
}

// FormatOrDefault parses the configured format, falling back to serde when
// the field is empty or invalid.
func (c *Config) FormatOrDefault() generate.Format {
	f, err := generate.ParseFormat(c.Format)
	if err != nil {
		return generate.FormatSerde
	}
	return f
}
