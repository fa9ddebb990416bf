// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
	"github.com/toeirei/formkit/ui/tui/util"
	"github.com/toeirei/formkit/util/slicest"
)

// Item is one selectable option. Value is what gets reported, Text what is
// shown.
type Item struct {
	Value   string `mapstructure:"value" yaml:"value"`
	Text    string `mapstructure:"text" yaml:"text"`
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

type MultiSelectOptions struct {
	Items    []Item
	OnChange func([]string) tea.Cmd
	HasFocus func(bool) tea.Cmd
	// Height is the number of visible rows; the list scrolls beyond it.
	Height int
}

func DefaultMultiSelectOptions(onChange func([]string) tea.Cmd) MultiSelectOptions {
	return MultiSelectOptions{
		OnChange: onChange,
		Height:   5,
	}
}

type MultiSelectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Next   key.Binding
}

func (k MultiSelectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Next}
}

func (k MultiSelectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Next}}
}

type MultiSelect struct {
	Label   string
	Options MultiSelectOptions
	KeyMap  MultiSelectKeyMap

	selected map[string]bool
	cursor   int
	offset   int
	focused  bool
}

func NewMultiSelect(label string, opts MultiSelectOptions) *MultiSelect {
	return &MultiSelect{
		Label:   label,
		Options: opts,
		KeyMap: MultiSelectKeyMap{
			Up: key.NewBinding(
				key.WithKeys("k", "up"),
				key.WithHelp("↑/k", i18n.T("key.up")),
			),
			Down: key.NewBinding(
				key.WithKeys("j", "down"),
				key.WithHelp("↓/j", i18n.T("key.down")),
			),
			Toggle: key.NewBinding(
				key.WithKeys(" ", "x"),
				key.WithHelp("space", i18n.T("key.toggle")),
			),
			Next: nextBinding(),
		},
		selected: make(map[string]bool),
	}
}

func (m *MultiSelect) Blur() tea.Cmd {
	m.focused = false
	return focusCmd(m.Options.HasFocus, false)
}

func (m *MultiSelect) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return focusCmd(m.Options.HasFocus, true), m.KeyMap
}

func (m *MultiSelect) Focused() bool { return m.focused }

func (m *MultiSelect) Init() tea.Cmd { return nil }

func (m *MultiSelect) Reset() {
	clear(m.selected)
	m.cursor, m.offset = 0, 0
}

// Get returns the selected values in item order.
func (m *MultiSelect) Get() any { return m.Selected() }

func (m *MultiSelect) Selected() []string {
	values := slicest.Map(
		slicest.Filter(m.Options.Items, func(item Item) bool { return m.selected[item.Value] }),
		func(item Item) string { return item.Value },
	)
	if values == nil {
		return []string{}
	}
	return values
}

// Set replaces the selection. Values that are unknown or belong to disabled
// items are dropped.
func (m *MultiSelect) Set(value any) {
	var values []string
	switch v := value.(type) {
	case []string:
		values = v
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				values = append(values, s)
			}
		}
	case nil:
	default:
		return
	}

	clear(m.selected)
	for _, s := range values {
		if item, ok := m.item(s); ok && item.Enabled {
			m.selected[s] = true
		}
	}
}

// Toggle flips the selection of the enabled item with the given value and
// reports whether anything changed.
func (m *MultiSelect) Toggle(value string) bool {
	item, ok := m.item(value)
	if !ok || !item.Enabled {
		return false
	}
	if m.selected[value] {
		delete(m.selected, value)
	} else {
		m.selected[value] = true
	}
	return true
}

func (m *MultiSelect) item(value string) (Item, bool) {
	for _, item := range m.Options.Items {
		if item.Value == value {
			return item, true
		}
	}
	return Item{}, false
}

func (m *MultiSelect) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil, form.ActionNone
	}
	m.clampCursor()

	switch {
	case key.Matches(kmsg, m.KeyMap.Next):
		return nil, form.ActionNext
	case len(m.Options.Items) == 0:
		return nil, form.ActionNone
	case key.Matches(kmsg, m.KeyMap.Up):
		m.move(-1)
	case key.Matches(kmsg, m.KeyMap.Down):
		m.move(1)
	case key.Matches(kmsg, m.KeyMap.Toggle):
		if m.Toggle(m.Options.Items[m.cursor].Value) && m.Options.OnChange != nil {
			return m.Options.OnChange(m.Selected()), form.ActionNone
		}
	}
	return nil, form.ActionNone
}

func (m *MultiSelect) move(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// clampCursor keeps cursor and offset inside Options.Items, which host code
// may replace at any time.
func (m *MultiSelect) clampCursor() {
	n := len(m.Options.Items)
	m.cursor = util.Clamp(0, m.cursor, max(0, n-1))
	m.offset, _ = util.Window(n, m.Options.Height, m.offset, m.cursor)
}

// Cursor returns the index of the highlighted item.
func (m *MultiSelect) Cursor() int { return m.cursor }

func (m *MultiSelect) View(width int) string {
	m.clampCursor()
	hint := fmt.Sprintf("%d/%d", len(m.Selected()), len(m.Options.Items))
	lines := []string{renderLabel(m.Label, hint, m.focused, width)}

	start, end := util.Window(len(m.Options.Items), m.Options.Height, m.offset, m.cursor)
	if start > 0 {
		lines = append(lines, faintStyle.Render(fmt.Sprintf("  ↑ %d", start)))
	}
	for i, item := range m.Options.Items[start:end] {
		lines = append(lines, truncate(m.renderItem(start+i, item), width))
	}
	if rest := len(m.Options.Items) - end; rest > 0 {
		lines = append(lines, faintStyle.Render(fmt.Sprintf("  ↓ %d", rest)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *MultiSelect) renderItem(index int, item Item) string {
	pointer := "  "
	if m.focused && index == m.cursor {
		pointer = promptStyle.Render("› ")
	}
	box := "[ ]"
	if m.selected[item.Value] {
		box = "[x]"
	}
	row := box + " " + item.Text
	switch {
	case !item.Enabled:
		row = faintStyle.Render(row)
	case m.focused && index == m.cursor:
		row = focusedLabelStyle.Render(row)
	}
	return pointer + row
}

var _ form.FormInput = (*MultiSelect)(nil)
