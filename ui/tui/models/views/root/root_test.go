// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/formkit/ui/tui/util"
)

type stubKeyMap struct{}

func (stubKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next"))}
}
func (k stubKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type stub struct {
	msgs []tea.Msg
	size tea.WindowSizeMsg
}

func (s *stub) Init() tea.Cmd { return nil }
func (s *stub) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		s.size = size
	}
	s.msgs = append(s.msgs, msg)
	return nil
}
func (s *stub) View() string                  { return "content" }
func (s *stub) Focus() (tea.Cmd, help.KeyMap) { return nil, stubKeyMap{} }
func (s *stub) Blur() tea.Cmd                 { return nil }

func TestRootQuits(t *testing.T) {
	m := New("test", &stub{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestRootLayout(t *testing.T) {
	content := &stub{}
	m := New("test", content)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: stubKeyMap{}})

	if content.size.Width != 60 || content.size.Height != 20-m.footer.Height() {
		t.Fatalf("content size = %+v", content.size)
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "content") || !strings.Contains(view, "tab next") || !strings.Contains(view, "ctrl+c") {
		t.Fatalf("View() = %q", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if _, ok := content.msgs[len(content.msgs)-1].(tea.KeyMsg); !ok {
		t.Fatalf("key not forwarded to content")
	}
}
