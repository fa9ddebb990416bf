// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the demo configuration from formkit.yaml, FORMKIT_*
// environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const name = "formkit"

type Config struct {
	Language    string            `mapstructure:"language" yaml:"language"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
	Text        TextConfig        `mapstructure:"text" yaml:"text"`
	Number      NumberConfig      `mapstructure:"number" yaml:"number"`
	Mask        MaskConfig        `mapstructure:"mask" yaml:"mask"`
	NumberMask  MaskConfig        `mapstructure:"number_mask" yaml:"number_mask"`
	MultiSelect MultiSelectConfig `mapstructure:"multiselect" yaml:"multiselect"`
}

type LogConfig struct {
	// File receives log output; empty disables logging.
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

type TextConfig struct {
	MaxLength   int    `mapstructure:"max_length" yaml:"max_length"`
	Kind        string `mapstructure:"kind" yaml:"kind"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
}

type NumberConfig struct {
	MaxLength int  `mapstructure:"max_length" yaml:"max_length"`
	Min       *int `mapstructure:"min" yaml:"min,omitempty"`
	Max       *int `mapstructure:"max" yaml:"max,omitempty"`
}

type MaskConfig struct {
	Pattern     string `mapstructure:"pattern" yaml:"pattern"`
	InputChar   string `mapstructure:"input_char" yaml:"input_char"`
	ShowPattern bool   `mapstructure:"show_pattern" yaml:"show_pattern"`
}

// Rune returns the first rune of InputChar, 0 when unset.
func (m MaskConfig) Rune() rune {
	for _, r := range m.InputChar {
		return r
	}
	return 0
}

type MultiSelectConfig struct {
	Height int    `mapstructure:"height" yaml:"height"`
	Items  []Item `mapstructure:"items" yaml:"items"`
}

type Item struct {
	Value   string `mapstructure:"value" yaml:"value"`
	Text    string `mapstructure:"text" yaml:"text"`
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

// Defaults are the values used when neither a file, the environment nor a
// flag sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"language":                 "en",
		"log.file":                 "",
		"log.level":                "info",
		"text.max_length":          32,
		"text.kind":                "text",
		"text.placeholder":         "",
		"number.max_length":        6,
		"mask.pattern":             "(###) ###-####",
		"mask.input_char":          "#",
		"mask.show_pattern":        true,
		"number_mask.pattern":      "#### #### #### ####",
		"number_mask.input_char":   "#",
		"number_mask.show_pattern": true,
		"multiselect.height":       5,
		"multiselect.items":        []map[string]any{
			{"value": "go", "text": "Go", "enabled": true},
			{"value": "rust", "text": "Rust", "enabled": true},
			{"value": "zig", "text": "Zig", "enabled": true},
			{"value": "haskell", "text": "Haskell", "enabled": true},
			{"value": "perl", "text": "Perl", "enabled": false},
			{"value": "elixir", "text": "Elixir", "enabled": true},
			{"value": "ocaml", "text": "OCaml", "enabled": true},
		},
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), name)
		default:
			configDir = filepath.Join("/etc", name)
		}
	} else {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(userDir, name)
	}

	return filepath.Join(configDir, name+".yaml"), nil
}

// LoadConfig merges defaults, the first formkit.yaml found (or path, when
// given), FORMKIT_* environment variables and the flags of cmd, in
// increasing order of precedence. A missing config file is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, path *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(name)
	v.SetConfigType("yaml")
	if path != nil {
		v.SetConfigFile(*path)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(name)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to the user (or system) config path and
// returns that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigTo(c, path)
}

func WriteConfigTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
