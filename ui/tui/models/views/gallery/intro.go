// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/ui/tui/util"
)

var (
	introTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	introTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// intro fills the content area until a demo is opened.
type intro struct {
	size util.Size
}

func newIntro() *intro { return &intro{} }

func (m *intro) Init() tea.Cmd { return nil }

func (m *intro) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m *intro) View() string {
	text := lipgloss.JoinVertical(lipgloss.Left,
		introTitleStyle.Render(i18n.T("gallery.title")),
		"",
		introTextStyle.Width(max(1, m.size.Width)).Render(i18n.T("gallery.intro")),
	)
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Left, lipgloss.Top, text)
}

func (m *intro) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }

func (m *intro) Blur() tea.Cmd { return nil }
