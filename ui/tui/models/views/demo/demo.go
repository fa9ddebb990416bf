// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package demo contains the views of the demo application: a showcase form
// holding every input and one view per input kind.
package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/internal/logging"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
	"github.com/toeirei/formkit/ui/tui/util"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	keyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Row is one line of the value panel.
type Row struct {
	Label string
	Value string
}

// eventMsg reports a callback of one of the inputs.
type eventMsg string

// Event returns a command reporting that label changed to value.
func Event(label, value string) tea.Cmd {
	return func() tea.Msg {
		return eventMsg(fmt.Sprintf("%s: %s", label, value))
	}
}

type submittedMsg[T any] struct {
	result T
	err    error
}

// Model shows a form next to a panel of its current values.
type Model[T any] struct {
	title     string
	form      form.Form[T]
	rows      func(T) []Row
	last      string
	submitted []Row
	size      util.Size
}

// New builds a demo around a form made from opts. rows renders the current
// form value for the panel.
func New[T any](title string, rows func(T) []Row, opts ...form.NewOpt[T]) *Model[T] {
	opts = append(opts, form.WithOnSubmit(func(result T, err error) tea.Cmd {
		return func() tea.Msg { return submittedMsg[T]{result: result, err: err} }
	}))
	return &Model[T]{
		title: title,
		form:  form.New(opts...),
		rows:  rows,
	}
}

func (m *Model[T]) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(tea.WindowSizeMsg{Width: m.formWidth(), Height: m.size.Height})
		return cmd
	}

	switch msg := msg.(type) {
	case eventMsg:
		m.last = string(msg)
		return nil
	case submittedMsg[T]:
		if msg.err != nil {
			logging.Errorf("%s: decode form: %v", m.title, msg.err)
			m.submitted = []Row{{Label: i18n.T("demo.submitted"), Value: msg.err.Error()}}
			return nil
		}
		logging.Infof("%s: submitted %+v", m.title, msg.result)
		m.submitted = m.rows(msg.result)
		return nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model[T]) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model[T]) Blur() tea.Cmd {
	return m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model[any])(nil)

// Values returns the current value of the form.
func (m *Model[T]) Values() (T, error) {
	return m.form.Get()
}

// Submitted returns the panel rows of the last submission.
func (m *Model[T]) Submitted() []Row {
	return m.submitted
}

// Last returns the most recent input event.
func (m *Model[T]) Last() string {
	return m.last
}

// narrow terminals stack the panel below the form
func (m *Model[T]) stacked() bool {
	return m.size.Width < 80
}

func (m *Model[T]) formWidth() int {
	if m.stacked() {
		return m.size.Width
	}
	return m.size.Width * 3 / 5
}

func (m *Model[T]) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		subtitleStyle.Render(i18n.T("demo.subtitle")),
		"",
	)

	formView := m.form.View()
	panelWidth := m.size.Width - m.formWidth() - 1
	if m.stacked() {
		panelWidth = m.size.Width
	}
	panel := m.panel(max(10, panelWidth))

	var body string
	if m.stacked() {
		body = lipgloss.JoinVertical(lipgloss.Left, formView, panel)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, formView, " ", panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m *Model[T]) panel(width int) string {
	inner := max(1, width-panelStyle.GetHorizontalFrameSize())

	lines := []string{titleStyle.Render(i18n.T("demo.values"))}
	current, err := m.form.Get()
	if err != nil {
		lines = append(lines, err.Error())
	} else {
		lines = append(lines, renderRows(m.rows(current), inner)...)
	}
	if m.last != "" {
		lines = append(lines, "", subtitleStyle.Render(ansi.Truncate(m.last, inner, "…")))
	}
	if m.submitted != nil {
		lines = append(lines, "", titleStyle.Render(i18n.T("demo.submitted")))
		lines = append(lines, renderRows(m.submitted, inner)...)
	}

	return panelStyle.Width(width - panelStyle.GetHorizontalBorderSize()).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderRows(rows []Row, width int) []string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		value := r.Value
		if value == "" {
			value = i18n.T("input.empty")
		}
		line := keyStyle.Render(fmt.Sprintf("%-*s", labelWidth, r.Label)) + " " + value
		out = append(out, ansi.Truncate(line, width, "…"))
	}
	return out
}
