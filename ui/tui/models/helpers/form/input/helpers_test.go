// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
)

func typeRunes(in form.FormInput, s string) {
	for _, r := range s {
		in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(in form.FormInput, t tea.KeyType) form.Action {
	_, action := in.Update(tea.KeyMsg{Type: t})
	return action
}
