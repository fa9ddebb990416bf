// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) up() {
	index := &m.ActiveStack[len(m.ActiveStack)-1]
	*index = max(0, *index-1)
}

func (m *Model) down() {
	parentLen := m.parentLen(m.activeItemStack())
	index := &m.ActiveStack[len(m.ActiveStack)-1]
	*index = min(parentLen-1, *index+1)
}

func (m *Model) left() {
	if len(m.ActiveStack) > 1 {
		m.ActiveStack = m.ActiveStack[:len(m.ActiveStack)-1]
	}
}

func (m *Model) right() tea.Cmd {
	itemStack := m.activeItemStack()
	active := itemStack[len(itemStack)-1]
	switch {
	case len(active.SubItems) > 0:
		m.ActiveStack = append(m.ActiveStack, 0)
		return nil
	case active.Cmd != nil:
		return active.Cmd
	default:
		id := active.ID
		return func() tea.Msg { return ItemSelected{ID: id} }
	}
}

// activeItemStack returns the items along the active path, root first.
func (m *Model) activeItemStack() []Item {
	var stack []Item
	cursor := m.Items
	for _, i := range m.ActiveStack {
		item := cursor[i]
		cursor = item.SubItems
		stack = append(stack, item)
	}
	return stack
}

func (m *Model) parentLen(itemStack []Item) int {
	if len(itemStack) > 1 {
		return len(itemStack[len(itemStack)-2].SubItems)
	}
	return len(m.Items)
}

// Active returns the ID of the highlighted item.
func (m *Model) Active() string {
	if len(m.Items) == 0 {
		return ""
	}
	itemStack := m.activeItemStack()
	return itemStack[len(itemStack)-1].ID
}
