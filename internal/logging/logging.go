// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging provides the package-level logger shared by the inputs and
// the demo application.
//
// While a Bubble Tea program owns the terminal, log output must not go to
// stderr; the demo redirects it with SetOutput to a file.
package logging

import (
	"fmt"
	"io"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It discards output until configured so the
// components stay silent inside host applications.
var L = clog.New(io.Discard)

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// SetLevel sets the minimum level by name ("debug", "info", "warn",
// "error").
func SetLevel(level string) error {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	L.SetLevel(lvl)
	return nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
