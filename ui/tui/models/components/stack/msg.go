// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/formkit/ui/tui/util"
	"github.com/toeirei/formkit/util/slicest"
)

// MsgFilter may rewrite msg before it reaches model. Returning nil drops it.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msgFilters []MsgFilter) tea.Msg {
	return slicest.ReduceD(msgFilters, msg, func(msgFilter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return msgFilter(model, msg)
	})
}

// KeysToFocused drops key messages for every item that does not hold the
// stack's focus.
func (s *Model) KeysToFocused(model util.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return msg
	}
	if s.focusedIndex == FocusAll() {
		return msg
	}
	if s.items[s.focusedIndex].Model != model {
		return nil
	}
	return msg
}
