// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the demo views as a Bubble Tea program. The inputs
// themselves live in models/helpers/form and know nothing about the
// program around them.
package tui
