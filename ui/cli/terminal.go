// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"os"

	"golang.org/x/term"
)

var errNoTerminal = errors.New("the demo needs an interactive terminal; use 'formkit-demo format' for scripted use")

// isTerminal is replaced in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func requireTerminal() error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNoTerminal
	}
	return nil
}
