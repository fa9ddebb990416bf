// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/ui/tui/models/components/stack"
	"github.com/toeirei/formkit/ui/tui/util"
)

const (
	minSize int = 20
	maxSize int = 40
)

// SizeConfig gives the menu its natural width while focused and a narrow
// column otherwise.
var SizeConfig stack.SizeConfig = &sizeConfig{}

type sizeConfig struct{}

func (s *sizeConfig) Priority() int { return 20 }

func (s *sizeConfig) Calculate(model util.Model, remainingSize int, _ int) int {
	menu, ok := model.(*Model)
	if !ok || !menu.focused {
		return min(minSize, remainingSize)
	}
	// +2 for the horizontal margin
	return util.Clamp(
		min(minSize, remainingSize),
		lipgloss.Width(menu.view())+2,
		min(maxSize, remainingSize),
	)
}
