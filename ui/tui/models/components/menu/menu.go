// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package menu is a keyboard driven tree menu. Opening a leaf either runs
// its command or reports ItemSelected.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/ui/tui/util"
	"github.com/toeirei/formkit/util/slicest"
)

type Model struct {
	Items       []Item
	ActiveStack []int
	KeyMap      KeyMap
	size        util.Size
	focused     bool
}

func New(items ...Item) *Model {
	return &Model{
		Items:       items,
		ActiveStack: []int{0},
		KeyMap:      NewKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.Items) == 0 {
		return nil
	}
	switch {
	case key.Matches(kmsg, m.KeyMap.Up):
		m.up()
	case key.Matches(kmsg, m.KeyMap.Down):
		m.down()
	case key.Matches(kmsg, m.KeyMap.Left):
		m.left()
	case key.Matches(kmsg, m.KeyMap.Right):
		return m.right()
	}
	return nil
}

func (m *Model) view() string {
	view := renderItems(m.Items, m.ActiveStack)

	// scroll proportionally to how deep into the tree the cursor is
	height := lipgloss.Height(view)
	if m.size.Height > 0 && height > m.size.Height {
		depth := slicest.ReduceD(m.ActiveStack, 0, func(i int, sum int) int { return sum + i + 1 })
		align := float64(depth) / float64(height)
		lines := strings.Split(view, "\n")
		i := min(int(float64(height-m.size.Height)*align), height-m.size.Height)
		view = strings.Join(lines[i:i+m.size.Height], "\n")
	}
	return view
}

func (m *Model) View() string {
	return lipgloss.
		NewStyle().
		MaxWidth(m.size.Width).
		MaxHeight(m.size.Height).
		Margin(0, 1).
		Render(m.view())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.KeyMap
}

func (m *Model) Blur() tea.Cmd {
	m.focused = false
	return nil
}

func (m *Model) Focused() bool { return m.focused }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
