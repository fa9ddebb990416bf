// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the formkit-demo command line using Cobra. It loads
// configuration, sets up logging and translations and starts the demo views.
package cli
