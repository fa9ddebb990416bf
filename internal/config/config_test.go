// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	cfg "github.com/toeirei/formkit/internal/config"
)

// isolate points the user config dir at an empty temp dir and moves into
// another one so no real formkit.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "en" || got.Mask.Pattern != "(###) ###-####" || got.Mask.Rune() != '#' {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if got.Number.Min != nil || got.Number.Max != nil {
		t.Fatalf("number bounds must default to unset")
	}
	if len(got.MultiSelect.Items) != 7 || got.MultiSelect.Items[4].Enabled {
		t.Fatalf("unexpected items: %+v", got.MultiSelect.Items)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	yaml := "language: de\nnumber:\n  min: -5\n  max: 50\nmask:\n  pattern: \"##/##\"\n"
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Number.Min == nil || *got.Number.Min != -5 || got.Number.Max == nil || *got.Number.Max != 50 {
		t.Fatalf("unexpected number bounds: %+v", got.Number)
	}
	if got.Mask.Pattern != "##/##" || !got.Mask.ShowPattern {
		t.Fatalf("file values must merge with defaults: %+v", got.Mask)
	}
}

func TestLoadConfig_EnvAndFlags(t *testing.T) {
	isolate(t)
	t.Setenv("FORMKIT_LANGUAGE", "de")
	t.Setenv("FORMKIT_LOG_LEVEL", "warn")

	cmd := &cobra.Command{}
	cmd.Flags().String("log.level", "info", "")
	if err := cmd.Flags().Set("log.level", "debug"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("env must override defaults, got %q", got.Language)
	}
	if got.Log.Level != "debug" {
		t.Fatalf("flag must override env, got %q", got.Log.Level)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(file, []byte("language: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := cfg.LoadConfig[cfg.Config](nil, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	home := isolate(t)

	want, err := cfg.LoadConfig[cfg.Config](nil, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	limit := 99
	want.Number.Max = &limit
	want.Language = "de"

	path, err := cfg.WriteConfigFile(&want, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	if !strings.HasPrefix(path, home) {
		t.Fatalf("config written outside the user config dir: %s", path)
	}

	got, err := cfg.LoadConfig[cfg.Config](nil, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
