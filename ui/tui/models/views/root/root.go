// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the program model of the demo: the active demo view above
// the key help footer.
package root

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	windowtitle "github.com/toeirei/formkit/ui/tui/models/helpers/title"
	"github.com/toeirei/formkit/ui/tui/models/views/footer"
	"github.com/toeirei/formkit/ui/tui/util"
)

const title string = "formkit"

type Model struct {
	KeyMap KeyMap

	name         string
	content      util.Model
	footer       *footer.Model
	titleHandler *windowtitle.TitleHandler
	size         util.Size
}

func New(name string, content util.Model) *Model {
	keyMap := NewKeyMap()
	return &Model{
		KeyMap:       keyMap,
		name:         name,
		content:      content,
		footer:       footer.New(keyMap),
		titleHandler: windowtitle.NewHandler(title, " | "),
	}
}

func (m *Model) Init() tea.Cmd {
	titleCmd := tea.Sequence(m.titleHandler.Init(), windowtitle.Set(m.name))
	initCmd := m.content.Init()
	focusCmd, keyMap := m.content.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		footerCmd := m.footer.Update(msg)
		contentSize := m.size.Shrink(0, m.footer.Height())
		return m, tea.Batch(footerCmd, m.content.Update(contentSize.ToMsg()))
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.KeyMap.Help):
			m.footer.ToggleExpanded()
			contentSize := m.size.Shrink(0, m.footer.Height())
			return m, m.content.Update(contentSize.ToMsg())
		}
		return m, m.content.Update(msg)
	case util.AnnounceKeyMapMsg:
		return m, m.footer.Update(msg)
	}

	if cmd, handled := m.titleHandler.Handle(msg); handled {
		return m, cmd
	}
	return m, m.content.Update(msg)
}

func (m *Model) View() string {
	content := lipgloss.NewStyle().
		Height(max(0, m.size.Height-m.footer.Height())).
		MaxHeight(max(0, m.size.Height-m.footer.Height())).
		Render(m.content.View())
	return lipgloss.JoinVertical(lipgloss.Left, content, m.footer.View())
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
