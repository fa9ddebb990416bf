// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/toeirei/formkit/internal/config"
	"github.com/toeirei/formkit/internal/logging"
)

// execute runs the root command in an isolated config environment and
// returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return executeIn(t, args...)
}

func executeIn(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	closeLog()
	return out.String(), err
}

func TestFormatCmd(t *testing.T) {
	out, err := execute(t, "format", "--digits", "5551234567", "555-12", "")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "(555) 123-4567\n(555) 12\n\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatCmdCustomPattern(t *testing.T) {
	out, err := execute(t, "format", "--pattern", "XX/XX", "--input-char", "X", "1231")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "12/31\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestFormatCmdComplete(t *testing.T) {
	out, err := execute(t, "format", "--complete", "--pattern", "##-##", "1234", "12")
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("expected incomplete error, got %v", err)
	}
	if out != "12-34\n12\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestFormatCmdNeedsArgs(t *testing.T) {
	if _, err := execute(t, "format"); err == nil {
		t.Fatalf("expected an argument error")
	}
}

func TestConfigInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	out, err := executeIn(t, "config", "init", "--language", "de")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	path := strings.TrimSpace(out)
	if !strings.HasPrefix(path, home) {
		t.Fatalf("written to %q, want below %q", path, home)
	}

	written := path
	got, err := config.LoadConfig[config.Config](nil, config.Defaults(), &written)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("language = %q, want de", got.Language)
	}

	if _, err := executeIn(t, "config", "init"); err == nil {
		t.Fatalf("existing file must not be overwritten")
	}
	if _, err := executeIn(t, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}

func TestDemoRequiresTerminal(t *testing.T) {
	orig := isTerminal
	defer func() { isTerminal = orig }()
	isTerminal = func(*os.File) bool { return false }

	for _, args := range [][]string{{}, {"text"}, {"number"}, {"masked-text"}, {"masked-number"}, {"multiselect"}, {"gallery"}} {
		if _, err := execute(t, args...); !errors.Is(err, errNoTerminal) {
			t.Fatalf("%v: expected errNoTerminal, got %v", args, err)
		}
	}
}

func TestLogFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "formkit.log")
	if _, err := execute(t, "--log.file", file, "--log.level", "debug", "version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "language en") {
		t.Fatalf("log = %q", data)
	}
	logging.SetOutput(io.Discard)
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := execute(t, "--log.level", "loud", "version"); err == nil {
		t.Fatalf("expected an invalid log level error")
	}
}

func TestGetConfigPathFromCli(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")

	p, err := getConfigPathFromCli(cmd)
	if err != nil || p != nil {
		t.Fatalf("unset flag: %v, %v", p, err)
	}

	if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if _, err := getConfigPathFromCli(cmd); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}
