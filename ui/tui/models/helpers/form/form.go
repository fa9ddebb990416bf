// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/formkit/ui/tui/util"
	"github.com/toeirei/formkit/util/slicest"
)

// FormInput is implemented by every input a Form can hold.
type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool
	KeyMap           KeyMap

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	baseKeyMap  help.KeyMap
	inputKeyMap help.KeyMap
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		// results of commands (clipboard reads, cursor blinks) belong to
		// whichever input issued them
		return f, f.broadcast(msg)
	}

	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	switch {
	case key.Matches(kmsg, f.KeyMap.Next):
		return f, f.changeActiveIndex(1)
	case key.Matches(kmsg, f.KeyMap.Prev):
		return f, f.changeActiveIndex(-1)
	}

	// pass msg to active input
	cmd := f.updateActiveInput(msg)
	return f, cmd
}

func (f Form[T]) View() string {
	gap := lipgloss.NewStyle().PaddingRight(1)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			width := f.size.Width / len(row.items)
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(itemIndex int) string {
					return gap.Render(f.items[itemIndex].input.View(width - 1))
				})...,
			)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.keyMap()
	}
	cmd, inputKeyMap := f.items[f.activeIndex].input.Focus()
	f.inputKeyMap = inputKeyMap
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(f.keyMap())), f.keyMap()
}

func (f *Form[T]) Blur() tea.Cmd {
	f.focused = false
	if len(f.items) == 0 {
		return nil
	}
	return f.items[f.activeIndex].input.Blur()
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

func (f *Form[T]) Focused() bool { return f.focused }

// Active returns the id of the input that receives key messages.
func (f *Form[T]) Active() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}

	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd, submitCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	return tea.Batch(resetCmd, submitCmd)
}

func (f *Form[T]) keyMap() help.KeyMap {
	return util.MergeKeyMaps(f.baseKeyMap, f.KeyMap, f.inputKeyMap)
}

func (f *Form[T]) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(f.items))
	for i := range f.items {
		cmd, action := f.items[i].input.Update(msg)
		cmds = append(cmds, cmd)
		if i == f.activeIndex {
			cmds = append(cmds, f.handleAction(action))
		}
	}
	return tea.Batch(cmds...)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	updateCmd, action := f.items[f.activeIndex].input.Update(msg)
	return tea.Batch(updateCmd, f.handleAction(action))
}

func (f *Form[T]) handleAction(action Action) tea.Cmd {
	switch action {
	case ActionNext:
		return f.changeActiveIndex(1)
	case ActionPrev:
		return f.changeActiveIndex(-1)
	case ActionSubmit:
		return f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			return f.OnCancel()
		}
	}
	return nil
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	delta = delta % len(f.items)

	var blurCmd tea.Cmd
	if delta != 0 {
		oldActiveIndex := f.activeIndex
		f.activeIndex = (f.activeIndex + delta + len(f.items)) % len(f.items)
		if f.focused {
			blurCmd = f.items[oldActiveIndex].input.Blur()
		}
	}

	if !f.focused {
		return blurCmd
	}

	focusCmd, inputKeyMap := f.items[f.activeIndex].input.Focus()
	f.inputKeyMap = inputKeyMap
	return tea.Batch(blurCmd, focusCmd, util.AnnounceKeyMapCmd(f.keyMap()))
}

// Get decodes the current input values into T, keyed by input id.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		values[item.id] = item.input.Get()
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

// Set distributes the fields of data to the inputs with matching ids. Ids
// match field names case-insensitively, like Get.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	byID := make(map[string]any, len(values))
	for k, v := range values {
		byID[strings.ToLower(k)] = v
	}

	for i := range f.items {
		if value, ok := byID[strings.ToLower(f.items[i].id)]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
