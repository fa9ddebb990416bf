// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/internal/keys"
	"github.com/toeirei/formkit/internal/logging"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
	"github.com/toeirei/formkit/util/convt"
)

type NumberOptions struct {
	// MaxLength limits the number of digits. Zero means unlimited.
	MaxLength int
	// MaxValue rejects keystrokes that would exceed it.
	MaxValue *int
	// MinValue is applied when the input loses focus. A non-negative
	// MinValue also forbids the minus sign.
	MinValue      *int
	OnInput       func(*int) tea.Cmd
	OnInputString func(string) tea.Cmd
	HasFocus      func(bool) tea.Cmd
}

func DefaultNumberOptions(onInput func(*int) tea.Cmd) NumberOptions {
	return NumberOptions{
		OnInput: onInput,
	}
}

func (o NumberOptions) allowsNegative() bool {
	return o.MinValue == nil || *o.MinValue < 0
}

// Valid reports whether s is an acceptable (possibly unfinished) value.
func (o NumberOptions) Valid(s string) bool {
	if s == "" {
		return true
	}
	digits := s
	if strings.HasPrefix(s, "-") {
		if !o.allowsNegative() {
			return false
		}
		digits = s[1:]
		if digits == "" {
			return true
		}
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	if o.MaxLength > 0 && len(digits) > o.MaxLength {
		return false
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	if o.MaxValue != nil && n > *o.MaxValue {
		return false
	}
	// more digits only move a negative value further down
	if o.MinValue != nil && n < 0 && n < *o.MinValue {
		return false
	}
	return true
}

type Number struct {
	Label       string
	Placeholder string
	Options     NumberOptions
	KeyMap      TextKeyMap

	input   textinput.Model
	focused bool
	id      int64
}

func NewNumber(label, placeholder string, opts NumberOptions) *Number {
	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = promptStyle
	input.KeyMap.Paste.SetEnabled(false)

	return &Number{
		Label:       label,
		Placeholder: placeholder,
		Options:     opts,
		KeyMap: TextKeyMap{
			Next:  nextBinding(),
			Paste: pasteBinding(),
		},
		input: input,
		id:    nextID(),
	}
}

// filterNumber inserts the event's runes at pos and accepts the keystroke
// only if the result is still valid.
func filterNumber(opts NumberOptions, value string, pos int, ev keys.Event) bool {
	if !ev.Paste && !keys.IsPrintable(ev) {
		return true
	}
	runes := []rune(value)
	pos = max(0, min(pos, len(runes)))

	insert := ev.Runes
	if ev.Paste {
		insert = []rune(strings.TrimFunc(string(insert), unicode.IsSpace))
	}
	if len(insert) == 0 {
		return false
	}

	candidate := string(runes[:pos]) + string(insert) + string(runes[pos:])
	return opts.Valid(candidate)
}

func (n *Number) Blur() tea.Cmd {
	n.input.Blur()
	n.focused = false

	var cmd tea.Cmd
	switch value := n.input.Value(); {
	case value == "-":
		cmd = n.setValue("")
	case n.Options.MinValue != nil:
		if v := convt.ParseInt(value); v != nil && *v < *n.Options.MinValue {
			cmd = n.setValue(strconv.Itoa(*n.Options.MinValue))
		}
	}
	return tea.Batch(cmd, focusCmd(n.Options.HasFocus, false))
}

func (n *Number) Focus() (tea.Cmd, help.KeyMap) {
	n.focused = true
	return tea.Batch(n.input.Focus(), focusCmd(n.Options.HasFocus, true)), n.KeyMap
}

func (n *Number) Focused() bool { return n.focused }

// Get returns the value as *int, nil while empty.
func (n *Number) Get() any {
	return n.Value()
}

func (n *Number) Value() *int {
	return convt.ParseInt(n.input.Value())
}

func (n *Number) Init() tea.Cmd {
	return nil
}

func (n *Number) Reset() {
	n.input.SetValue("")
}

func (n *Number) Set(value any) {
	var s string
	switch v := value.(type) {
	case int:
		s = strconv.Itoa(v)
	case *int:
		s = convt.Int(v)
	case string:
		s = strings.TrimSpace(v)
	case nil:
	default:
		return
	}
	if !n.Options.Valid(s) {
		logging.Debugf("number %q: ignoring invalid value %q", n.Label, s)
		return
	}
	n.input.SetValue(s)
}

func (n *Number) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	switch msg := msg.(type) {
	case pasteMsg:
		if msg.id != n.id {
			return nil, form.ActionNone
		}
		return n.apply(keys.Event{Code: keys.Char, Paste: true, Runes: []rune(msg.text)}), form.ActionNone
	case tea.KeyMsg:
		if !n.focused {
			return nil, form.ActionNone
		}
		switch {
		case key.Matches(msg, n.KeyMap.Next):
			return nil, form.ActionNext
		case key.Matches(msg, n.KeyMap.Paste):
			return readClipboard(n.id), form.ActionNone
		}
		ev := keys.Decode(msg)
		if !ev.Paste && !keys.IsPrintable(ev) {
			return n.forward(msg), form.ActionNone
		}
		return n.apply(ev), form.ActionNone
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return cmd, form.ActionNone
}

func (n *Number) apply(ev keys.Event) tea.Cmd {
	if !filterNumber(n.Options, n.input.Value(), n.input.Position(), ev) {
		logging.Debugf("number %q: rejected %q", n.Label, string(ev.Runes))
		return nil
	}
	runes := ev.Runes
	if ev.Paste {
		runes = []rune(strings.TrimFunc(string(runes), unicode.IsSpace))
	}
	return n.forward(tea.KeyMsg{Type: tea.KeyRunes, Runes: runes, Paste: ev.Paste})
}

func (n *Number) forward(msg tea.Msg) tea.Cmd {
	before := n.input.Value()
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	if n.input.Value() != before {
		cmd = tea.Batch(cmd, n.changed())
	}
	return cmd
}

func (n *Number) setValue(s string) tea.Cmd {
	if s == n.input.Value() {
		return nil
	}
	n.input.SetValue(s)
	return n.changed()
}

func (n *Number) changed() tea.Cmd {
	var cmds []tea.Cmd
	if n.Options.OnInput != nil {
		cmds = append(cmds, n.Options.OnInput(n.Value()))
	}
	if n.Options.OnInputString != nil {
		cmds = append(cmds, n.Options.OnInputString(n.input.Value()))
	}
	return tea.Batch(cmds...)
}

func (n *Number) View(width int) string {
	hint := ""
	if n.Options.MinValue != nil || n.Options.MaxValue != nil {
		hint = i18n.T("input.range", convt.Int(n.Options.MinValue), convt.Int(n.Options.MaxValue))
	} else if n.Options.MaxLength > 0 {
		hint = i18n.T("input.limit", n.Options.MaxLength)
	}
	label := renderLabel(n.Label, hint, n.focused, width)

	n.input.Width = max(1, width-lipgloss.Width(prompt)-1)
	n.input.Placeholder = n.Placeholder

	return lipgloss.JoinVertical(lipgloss.Left, label, n.input.View())
}

var _ form.FormInput = (*Number)(nil)
