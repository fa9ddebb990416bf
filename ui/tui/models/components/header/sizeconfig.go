// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/ui/tui/models/components/stack"
	"github.com/toeirei/formkit/ui/tui/util"
)

// minContentHeight is kept free below the header.
const minContentHeight int = 10

// SizeConfig shows the full logo on tall terminals, the compact one on
// medium terminals and hides the header otherwise.
var SizeConfig stack.SizeConfig = &sizeConfig{}

type sizeConfig struct{}

func (s *sizeConfig) Priority() int { return 10 }

func (s *sizeConfig) Calculate(_ util.Model, _ int, totalSize int) int {
	switch full := lipgloss.Height(logo) + 1; {
	case totalSize >= minContentHeight+full:
		return full
	case totalSize >= minContentHeight+2:
		return 2
	}
	return 0
}
