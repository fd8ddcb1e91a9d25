// Package config provides TOML-based configuration loading with opt-in
// environment variable expansion.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load loads configuration from a TOML file. Values are taken literally;
// use ExpandEnv on the fields that may reference the environment.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	if err := toml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	return nil
}

// ExpandEnv replaces ${var} and $var in each field with the environment
// value.
func ExpandEnv(fields ...*string) {
	for _, f := range fields {
		*f = os.ExpandEnv(*f)
	}
}

// Encode renders v as a TOML document.
func Encode[T any](v T) ([]byte, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
