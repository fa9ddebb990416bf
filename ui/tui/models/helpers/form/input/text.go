// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/internal/keys"
	"github.com/toeirei/formkit/internal/logging"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
)

type TextKind int

const (
	KindText TextKind = iota
	// KindPassword hides the value behind echo characters.
	KindPassword
	// KindEmail rejects whitespace.
	KindEmail
)

type TextOptions struct {
	// MaxLength limits the value to this many runes. Zero means unlimited.
	MaxLength int
	Kind      TextKind
	OnInput   func(string) tea.Cmd
	HasFocus  func(bool) tea.Cmd
}

func DefaultTextOptions(onInput func(string) tea.Cmd) TextOptions {
	return TextOptions{
		Kind:    KindText,
		OnInput: onInput,
	}
}

type Text struct {
	Label       string
	Placeholder string
	Options     TextOptions
	KeyMap      TextKeyMap

	input   textinput.Model
	focused bool
	id      int64
}

type TextKeyMap struct {
	Next  key.Binding
	Paste key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next, k.Paste} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next, k.Paste}} }

func NewText(label, placeholder string, opts TextOptions) *Text {
	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = promptStyle
	input.CharLimit = max(0, opts.MaxLength)
	// pastes go through filterText instead
	input.KeyMap.Paste.SetEnabled(false)
	if opts.Kind == KindPassword {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	}

	return &Text{
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

// filterText decides whether ev may change value. Printable input is
// trimmed to what fits; the returned event carries the runes to insert.
func filterText(opts TextOptions, value string, ev keys.Event) (keys.Event, bool) {
	runes := ev.Runes
	switch {
	case ev.Paste:
		runes = slices.DeleteFunc(slices.Clone(runes), func(r rune) bool { return !unicode.IsPrint(r) })
	case !keys.IsPrintable(ev):
		return ev, true
	}

	if opts.Kind == KindEmail {
		kept := make([]rune, 0, len(runes))
		for _, r := range runes {
			if !unicode.IsSpace(r) {
				kept = append(kept, r)
			}
		}
		runes = kept
	}

	if opts.MaxLength > 0 {
		free := opts.MaxLength - utf8.RuneCountInString(value)
		if free <= 0 {
			return ev, false
		}
		if len(runes) > free {
			runes = runes[:free]
		}
	}

	if len(runes) == 0 {
		return ev, false
	}
	ev.Runes = runes
	return ev, true
}

func (t *Text) Blur() tea.Cmd {
	t.input.Blur()
	t.focused = false
	return focusCmd(t.Options.HasFocus, false)
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return tea.Batch(t.input.Focus(), focusCmd(t.Options.HasFocus, true)), t.KeyMap
}

func (t *Text) Focused() bool { return t.focused }

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Value() string {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v != nil {
			s = *v
		}
	case fmt.Stringer:
		s = v.String()
	default:
		return
	}
	if t.Options.MaxLength > 0 && utf8.RuneCountInString(s) > t.Options.MaxLength {
		s = string([]rune(s)[:t.Options.MaxLength])
	}
	t.input.SetValue(s)
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	switch msg := msg.(type) {
	case pasteMsg:
		if msg.id != t.id {
			return nil, form.ActionNone
		}
		return t.apply(keys.Event{Code: keys.Char, Paste: true, Runes: []rune(msg.text)}), form.ActionNone
	case tea.KeyMsg:
		if !t.focused {
			return nil, form.ActionNone
		}
		switch {
		case key.Matches(msg, t.KeyMap.Next):
			return nil, form.ActionNext
		case key.Matches(msg, t.KeyMap.Paste):
			return readClipboard(t.id), form.ActionNone
		}
		ev := keys.Decode(msg)
		if !ev.Paste && !keys.IsPrintable(ev) {
			return t.forward(msg), form.ActionNone
		}
		return t.apply(ev), form.ActionNone
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) apply(ev keys.Event) tea.Cmd {
	filtered, ok := filterText(t.Options, t.input.Value(), ev)
	if !ok {
		logging.Debugf("text %q: rejected %q", t.Label, string(ev.Runes))
		return nil
	}
	return t.forward(tea.KeyMsg{Type: tea.KeyRunes, Runes: filtered.Runes, Paste: filtered.Paste})
}

func (t *Text) forward(msg tea.Msg) tea.Cmd {
	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if after := t.input.Value(); after != before && t.Options.OnInput != nil {
		cmd = tea.Batch(cmd, t.Options.OnInput(after))
	}
	return cmd
}

func (t *Text) View(width int) string {
	hint := ""
	if t.Options.MaxLength > 0 {
		hint = fmt.Sprintf("%d/%d", utf8.RuneCountInString(t.input.Value()), t.Options.MaxLength)
	}
	label := renderLabel(t.Label, hint, t.focused, width)

	t.input.Width = max(1, width-lipgloss.Width(prompt)-1)
	t.input.Placeholder = t.Placeholder

	return lipgloss.JoinVertical(lipgloss.Left, label, t.input.View())
}

var _ form.FormInput = (*Text)(nil)
