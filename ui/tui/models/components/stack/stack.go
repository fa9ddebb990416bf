// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out models next to or below each other and splits the
// available size between them.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/ui/tui/util"
	"github.com/toeirei/formkit/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items        []Item
	size         util.Size
	focusedIndex Focus
	focused      bool
}

type Item struct {
	Model      util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

func (s *Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return item.Model.Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			itemMsg := applyMessageFilters(item.Model, msg, item.MsgFilters)
			itemMsg = applyMessageFilters(item.Model, itemMsg, s.MsgFilters)
			if itemMsg == nil {
				return nil
			}
			return item.Model.Update(itemMsg)
		})...)

		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s *Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	views := make([]string, 0, len(s.items))
	for i, item := range s.items {
		if item.size == 0 {
			continue
		}
		// no gap before the first item
		margin := s.Gap * min(i, 1)
		views = append(views, styler(item.size, margin).Render(item.Model.View()))
	}
	return joiner(s.Align, views...)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	s.focused = true
	if s.focusedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))
		for i, item := range s.items {
			cmds[i], keyMaps[i] = item.Model.Focus()
		}
		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	if len(s.items) == 0 {
		return nil, nil
	}
	return s.items[s.focusedIndex].Model.Focus()
}

func (s *Model) Blur() tea.Cmd {
	s.focused = false
	if s.focusedIndex == FocusAll() {
		return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
			return item.Model.Blur()
		})...)
	}
	if len(s.items) == 0 {
		return nil
	}
	return s.items[s.focusedIndex].Model.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Focus selects which item receives focus, FocusAll focuses every item.
type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

// Focused returns the current focus target.
func (s *Model) Focused() Focus { return s.focusedIndex }

// SetFocus moves focus to another item. The returned key map belongs to the
// new target and should be announced by the caller.
func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	blurCmd := s.Blur()
	s.focusedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	focusCmd, keyMap := s.Focus()

	// size configs may depend on focus
	cmds := []tea.Cmd{blurCmd, focusCmd}
	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(false)...)
	return tea.Batch(cmds...), keyMap
}

// Replace swaps the model of item i. The new model is initialised, sized
// and, if the old one held focus, focused. The old model is blurred.
func (s *Model) Replace(i int, model util.Model) (tea.Cmd, help.KeyMap) {
	if i < 0 || i >= len(s.items) {
		return nil, nil
	}
	hasFocus := s.focused && (s.focusedIndex == FocusAll() || s.focusedIndex == Focus(i))

	var blurCmd tea.Cmd
	if hasFocus {
		blurCmd = s.items[i].Model.Blur()
	}
	s.items[i].Model = model

	cmds := []tea.Cmd{blurCmd, model.Init()}
	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(true)...)

	var keyMap help.KeyMap
	if hasFocus {
		var focusCmd tea.Cmd
		focusCmd, keyMap = model.Focus()
		cmds = append(cmds, focusCmd)
	}
	return tea.Batch(cmds...), keyMap
}

// Sizes returns the main axis size of every item after the last layout.
func (s *Model) Sizes() []int {
	return slicest.Map(s.items, func(item Item) int { return item.size })
}
