// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package header renders the logo bar above the gallery.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/ui/tui/util"
)

const logo string = "" +
	"┌─┐┌─┐┬─┐┌┬┐┬┌─┬┌┬┐\n" +
	"├┤ │ │├┬┘│││├┴┐│ │ \n" +
	"└  └─┘┴└─┴ ┴┴ ┴┴ ┴ "

// compactLogo replaces logo when the terminal is too narrow for it.
const compactLogo string = "formkit"

var (
	logoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	barStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false).BorderBottom(true)
)

type Model struct {
	size util.Size
}

func New() *Model {
	return &Model{}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m *Model) View() string {
	text := logo
	if m.size.Width < lipgloss.Width(logo) || m.size.Height < lipgloss.Height(logo)+1 {
		text = compactLogo
	}
	return barStyle.Render(lipgloss.PlaceHorizontal(
		m.size.Width,
		lipgloss.Center,
		logoStyle.Render(text),
	))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() tea.Cmd { return nil }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
