// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/formkit/internal/i18n"
)

type KeyMap struct {
	Menu key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Menu}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Menu}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func NewKeyMap() KeyMap {
	return KeyMap{
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("key.menu")),
		),
	}
}
