// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/formkit/util/slicest"
)

var (
	parentStyle = lipgloss.NewStyle().Underline(true).Italic(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8655B1"))
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#8655B1"))
	subItemStyle = lipgloss.NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			PaddingLeft(1)
)

func WithItem(id string, name string, subItems ...Item) Item {
	return Item{
		ID:       id,
		Name:     name,
		SubItems: subItems,
	}
}

// WithCmd returns a leaf item that runs cmd instead of reporting
// ItemSelected.
func WithCmd(id string, name string, cmd tea.Cmd) Item {
	return Item{ID: id, Name: name, Cmd: cmd}
}

type Item struct {
	ID       string
	Name     string
	SubItems []Item
	Cmd      tea.Cmd
}

// View renders the item and, while it lies on the active path, its sub
// items.
func (i Item) View(isActive bool, activeStack []int) string {
	style := lipgloss.NewStyle()
	if len(i.SubItems) > 0 {
		style = parentStyle
	}
	if isActive {
		if len(activeStack) > 0 {
			style = style.Inherit(pathStyle)
		} else {
			style = style.Inherit(activeStyle)
		}
	}
	content := style.Render(i.Name)

	if isActive && len(i.SubItems) > 0 && len(activeStack) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			subItemStyle.Render(renderItems(i.SubItems, activeStack)),
		)
	}
	return content
}

// ItemSelected is sent when a leaf without Cmd is opened.
type ItemSelected struct {
	ID string
}

func renderItems(items []Item, activeStack []int) string {
	activeIndex := -1
	if len(activeStack) > 0 {
		activeIndex, activeStack = activeStack[0], activeStack[1:]
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.MapI(items, func(i int, item Item) string {
			return item.View(activeIndex == i, activeStack)
		})...,
	)
}
