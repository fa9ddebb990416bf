// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/formkit/internal/mask"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
	"github.com/toeirei/formkit/util/convt"
)

// MaskedNumberOptions configures a MaskedNumber. Slots only accept digits.
// The value is an int, so leading zeros are lost and patterns with 19 or more
// slots can overflow; use a MaskedText with Class mask.Digits for codes.
type MaskedNumberOptions struct {
	Pattern     string
	InputChar   rune
	Fill        rune
	ShowPattern bool
	// OnInput receives the digits as a number, nil while empty.
	OnInput  func(*int) tea.Cmd
	OnState  func(mask.State) tea.Cmd
	HasFocus func(bool) tea.Cmd
}

func DefaultMaskedNumberOptions(pattern string, onInput func(*int) tea.Cmd, onState func(mask.State) tea.Cmd) MaskedNumberOptions {
	return MaskedNumberOptions{
		Pattern:   pattern,
		InputChar: mask.DefaultInputChar,
		Fill:      DefaultFill,
		OnInput:   onInput,
		OnState:   onState,
	}
}

type MaskedNumber struct {
	Options MaskedNumberOptions
	maskedField
}

func NewMaskedNumber(label string, opts MaskedNumberOptions) *MaskedNumber {
	m := &MaskedNumber{
		Options:     opts,
		maskedField: newMaskedField(label, opts.Pattern, opts.InputChar, opts.Fill, mask.Digits),
	}
	m.showPattern = opts.ShowPattern
	m.onState = opts.OnState
	m.hasFocus = opts.HasFocus
	if opts.OnInput != nil {
		m.onInput = func(raw string) tea.Cmd { return opts.OnInput(convt.ParseInt(raw)) }
	}
	return m
}

func (m *MaskedNumber) Focus() (tea.Cmd, help.KeyMap) { return m.focus() }
func (m *MaskedNumber) Blur() tea.Cmd                 { return m.blur() }
func (m *MaskedNumber) Focused() bool                 { return m.focused }
func (m *MaskedNumber) Init() tea.Cmd                 { return nil }
func (m *MaskedNumber) Reset()                        { m.state = mask.State{} }

// Get returns the digits as *int, nil while empty or beyond the int range.
// Leading zeros do not survive: "01234" reads as 1234.
func (m *MaskedNumber) Get() any { return m.Value() }

func (m *MaskedNumber) Value() *int { return convt.ParseInt(m.state.Raw) }

// Formatted returns the value as displayed, literals included.
func (m *MaskedNumber) Formatted() string { return m.formatted() }

func (m *MaskedNumber) Raw() string { return m.state.Raw }

func (m *MaskedNumber) State() mask.State { return m.state }

func (m *MaskedNumber) SetState(s mask.State) {
	m.state = m.editor.Set(s.Raw)
	m.state.Cursor = max(0, min(s.Cursor, len([]rune(m.state.Raw))))
}

func (m *MaskedNumber) Complete() bool { return m.editor.Pattern.Complete(m.state.Raw) }

// Set accepts an int, *int or a raw/formatted string. Negative numbers have
// no representation in a digit mask and are ignored.
func (m *MaskedNumber) Set(value any) {
	switch v := value.(type) {
	case int:
		if v >= 0 {
			m.set(strconv.Itoa(v))
		}
	case *int:
		if v == nil {
			m.state = mask.State{}
		} else if *v >= 0 {
			m.set(strconv.Itoa(*v))
		}
	case string:
		m.set(v)
	case nil:
		m.state = mask.State{}
	}
}

func (m *MaskedNumber) Update(msg tea.Msg) (tea.Cmd, form.Action) { return m.update(msg) }

func (m *MaskedNumber) View(width int) string { return m.view(width) }

var _ form.FormInput = (*MaskedNumber)(nil)
