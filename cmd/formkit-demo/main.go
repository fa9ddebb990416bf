// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Command formkit-demo shows the formkit inputs.
//
// Usage:
//
//	go run ./cmd/formkit-demo [command] [flags]
//
// Without a command the showcase form is started. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/formkit/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
