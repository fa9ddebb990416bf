// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/formkit/ui/tui/models/views/root"
	"github.com/toeirei/formkit/ui/tui/util"
)

// Run shows content full screen until the user quits.
func Run(name string, content util.Model) error {
	if _, err := tea.NewProgram(
		root.New(name, content),
		tea.WithAltScreen(),
	).Run(); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}
