// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/internal/keys"
	"github.com/toeirei/formkit/internal/logging"
	"github.com/toeirei/formkit/internal/mask"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
)

// DefaultFill renders open slots when ShowPattern is set.
const DefaultFill = '_'

type MaskedKeyMap struct {
	Next  key.Binding
	Paste key.Binding
}

func (k MaskedKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next, k.Paste} }

func (k MaskedKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next, k.Paste}} }

// maskedField holds what masked text and masked number share: the editor
// state, focus and rendering.
type maskedField struct {
	label       string
	editor      mask.Editor
	state       mask.State
	fill        rune
	showPattern bool
	focused     bool
	id          int64
	keyMap      MaskedKeyMap

	onState  func(mask.State) tea.Cmd
	hasFocus func(bool) tea.Cmd
	// onInput is called with the new raw value after it changed
	onInput func(raw string) tea.Cmd
}

func newMaskedField(label, pattern string, inputChar, fill rune, class mask.Class) maskedField {
	if fill == 0 {
		fill = DefaultFill
	}
	return maskedField{
		label:  label,
		editor: mask.NewEditor(pattern, inputChar, class),
		fill:   fill,
		id:     nextID(),
		keyMap: MaskedKeyMap{
			Next:  nextBinding(),
			Paste: pasteBinding(),
		},
	}
}

func (m *maskedField) update(msg tea.Msg) (tea.Cmd, form.Action) {
	switch msg := msg.(type) {
	case pasteMsg:
		if msg.id != m.id {
			return nil, form.ActionNone
		}
		next, ok := m.editor.Insert(m.state, msg.text)
		if !ok {
			logging.Debugf("masked %q: rejected paste %q", m.label, msg.text)
			return nil, form.ActionNone
		}
		return m.setState(next), form.ActionNone
	case tea.KeyMsg:
		if !m.focused {
			return nil, form.ActionNone
		}
		switch {
		case key.Matches(msg, m.keyMap.Next):
			return nil, form.ActionNext
		case key.Matches(msg, m.keyMap.Paste):
			return readClipboard(m.id), form.ActionNone
		}
		ev := keys.Decode(msg)
		next, ok := m.editor.Apply(m.state, ev)
		if !ok {
			if keys.IsPrintable(ev) {
				logging.Debugf("masked %q: rejected %q", m.label, string(ev.Runes))
			}
			return nil, form.ActionNone
		}
		return m.setState(next), form.ActionNone
	}
	return nil, form.ActionNone
}

func (m *maskedField) setState(next mask.State) tea.Cmd {
	prev := m.state
	m.state = next

	var cmds []tea.Cmd
	if next.Raw != prev.Raw && m.onInput != nil {
		cmds = append(cmds, m.onInput(next.Raw))
	}
	if next != prev && m.onState != nil {
		cmds = append(cmds, m.onState(next))
	}
	return tea.Batch(cmds...)
}

func (m *maskedField) focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return focusCmd(m.hasFocus, true), m.keyMap
}

func (m *maskedField) blur() tea.Cmd {
	m.focused = false
	return focusCmd(m.hasFocus, false)
}

func (m *maskedField) set(value string) {
	m.state = m.editor.Set(value)
}

func (m *maskedField) formatted() string {
	return m.editor.Formatted(m.state)
}

func (m *maskedField) view(width int) string {
	hint := m.editor.Pattern.String()
	label := renderLabel(m.label, hint, m.focused, width)

	value := []rune(m.formatted())
	shown := value
	if m.showPattern || (m.focused && len(value) == 0) {
		shown = []rune(m.editor.Pattern.Placeholder(m.state.Raw, m.fill))
	}

	cursor := -1
	if m.focused {
		cursor = m.editor.DisplayCursor(m.state)
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(prompt))
	for i, r := range shown {
		switch {
		case i == cursor:
			b.WriteString(cursorStyle.Render(string(r)))
		case i >= len(value):
			b.WriteString(faintStyle.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	if cursor >= len(shown) {
		b.WriteString(cursorStyle.Render(" "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, truncate(b.String(), width))
}

// MaskedTextOptions configures a MaskedText. Pattern slots are marked with
// InputChar ('#' by default); every other pattern rune is inserted
// automatically.
type MaskedTextOptions struct {
	Pattern   string
	InputChar rune
	Fill      rune
	// Class filters the runes a slot accepts, any printable rune when nil.
	// mask.Digits keeps codes like zip codes digit-only without losing
	// leading zeros.
	Class mask.Class
	// ShowPattern renders the unfilled part of the pattern.
	ShowPattern bool
	// OnInput receives the formatted value.
	OnInput  func(string) tea.Cmd
	OnState  func(mask.State) tea.Cmd
	HasFocus func(bool) tea.Cmd
}

func DefaultMaskedTextOptions(pattern string, onInput func(string) tea.Cmd, onState func(mask.State) tea.Cmd) MaskedTextOptions {
	return MaskedTextOptions{
		Pattern:   pattern,
		InputChar: mask.DefaultInputChar,
		Fill:      DefaultFill,
		OnInput:   onInput,
		OnState:   onState,
	}
}

type MaskedText struct {
	Options MaskedTextOptions
	maskedField
}

func NewMaskedText(label string, opts MaskedTextOptions) *MaskedText {
	m := &MaskedText{
		Options:     opts,
		maskedField: newMaskedField(label, opts.Pattern, opts.InputChar, opts.Fill, opts.Class),
	}
	m.showPattern = opts.ShowPattern
	m.onState = opts.OnState
	m.hasFocus = opts.HasFocus
	if opts.OnInput != nil {
		m.onInput = func(string) tea.Cmd { return opts.OnInput(m.formatted()) }
	}
	return m
}

func (m *MaskedText) Focus() (tea.Cmd, help.KeyMap) { return m.focus() }
func (m *MaskedText) Blur() tea.Cmd                 { return m.blur() }
func (m *MaskedText) Focused() bool                 { return m.focused }
func (m *MaskedText) Init() tea.Cmd                 { return nil }
func (m *MaskedText) Reset()                        { m.state = mask.State{} }

// Get returns the formatted value.
func (m *MaskedText) Get() any { return m.formatted() }

func (m *MaskedText) Value() string { return m.formatted() }

// Raw returns the value without pattern literals.
func (m *MaskedText) Raw() string { return m.state.Raw }

func (m *MaskedText) State() mask.State { return m.state }

// SetState restores a state previously reported through OnState.
func (m *MaskedText) SetState(s mask.State) {
	m.state = m.editor.Set(s.Raw)
	m.state.Cursor = max(0, min(s.Cursor, len([]rune(m.state.Raw))))
}

// Complete reports whether every slot of the pattern is filled.
func (m *MaskedText) Complete() bool { return m.editor.Pattern.Complete(m.state.Raw) }

// Set accepts a raw or formatted string.
func (m *MaskedText) Set(value any) {
	if s, ok := value.(string); ok {
		m.set(s)
	}
}

func (m *MaskedText) Update(msg tea.Msg) (tea.Cmd, form.Action) { return m.update(msg) }

func (m *MaskedText) View(width int) string { return m.view(width) }

var _ form.FormInput = (*MaskedText)(nil)
