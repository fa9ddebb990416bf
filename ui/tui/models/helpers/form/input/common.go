// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package forminput contains the inputs a form.Form can hold: plain text,
// number, masked text, masked number, multi-select and button.
//
// Every input is configured with an options record (callbacks, limits,
// pattern) that mirrors how host code reacts to it: OnInput/OnChange fire
// after an accepted change, HasFocus fires with true/false on focus and
// blur. Keystrokes an input does not accept are dropped without feedback.
package forminput

import (
	"strings"
	"sync/atomic"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/internal/logging"
)

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	hintStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	faintStyle        = lipgloss.NewStyle().Faint(true)
	cursorStyle       = lipgloss.NewStyle().Reverse(true)
	promptStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

const prompt = "> "

var lastID atomic.Int64

func nextID() int64 { return lastID.Add(1) }

// pasteMsg carries clipboard text back to the input that asked for it.
type pasteMsg struct {
	id   int64
	text string
}

func readClipboard(id int64) tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		if err != nil {
			logging.Debugf("clipboard read failed: %v", err)
			return nil
		}
		return pasteMsg{id: id, text: text}
	}
}

func pasteBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", i18n.T("key.paste")),
	)
}

func nextBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", i18n.T("key.next")),
	)
}

func focusCmd(fn func(bool) tea.Cmd, focused bool) tea.Cmd {
	if fn == nil {
		return nil
	}
	return fn(focused)
}

// renderLabel renders label left-aligned and hint right-aligned in width
// columns.
func renderLabel(label, hint string, focused bool, width int) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	left := style.Render(label)
	if hint == "" || width <= 0 {
		return left
	}
	right := hintStyle.Render(hint)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
