// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package gallery lists every demo in a menu and shows the selected one next
// to it.
package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/formkit/internal/config"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/internal/logging"
	"github.com/toeirei/formkit/ui/tui/models/components/header"
	"github.com/toeirei/formkit/ui/tui/models/components/menu"
	"github.com/toeirei/formkit/ui/tui/models/components/stack"
	"github.com/toeirei/formkit/ui/tui/models/views/demo"
	"github.com/toeirei/formkit/ui/tui/util"
	"github.com/toeirei/formkit/util/slicest"
)

const (
	showcaseID = "showcase"
	quitID     = "quit"

	menuIndex    = 0
	contentIndex = 1
)

type Model struct {
	KeyMap KeyMap

	config  config.Config
	layout  *stack.Model
	body    *stack.Model
	menu    *menu.Model
	current string
}

func New(c config.Config) *Model {
	m := &Model{
		KeyMap: NewKeyMap(),
		config: c,
		menu:   menu.New(items()...),
	}
	m.body = stack.New(
		stack.WithGap(1),
		stack.WithItem(m.menu, menu.SizeConfig),
		stack.WithItem(newIntro(), stack.VariableSize(1)),
		stack.WithKeysToFocused(),
		stack.WithFocus(stack.FocusIndex(menuIndex)),
	)
	m.layout = stack.New(
		stack.WithOrientation(stack.Vertical),
		stack.WithItem(header.New(), header.SizeConfig),
		stack.WithItem(m.body, stack.VariableSize(1)),
		stack.WithFocus(stack.FocusIndex(1)),
	)
	return m
}

func items() []menu.Item {
	inputs := slicest.Map(demo.Kinds, func(kind string) menu.Item {
		return menu.WithItem(kind, demo.KindLabel(kind))
	})
	return []menu.Item{
		menu.WithItem(showcaseID, i18n.T("gallery.showcase")),
		menu.WithItem("inputs", i18n.T("gallery.inputs"), inputs...),
		menu.WithCmd(quitID, i18n.T("gallery.quit"), tea.Quit),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.layout.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case menu.ItemSelected:
		return m.open(msg.ID)
	case tea.KeyMsg:
		if m.ContentFocused() && key.Matches(msg, m.KeyMap.Menu) {
			return m.focus(menuIndex)
		}
	}
	return m.layout.Update(msg)
}

// open replaces the content with the demo id and hands it the focus.
func (m *Model) open(id string) tea.Cmd {
	var content util.Model
	if id == showcaseID {
		content = demo.NewShowcase(m.config)
	} else {
		single, err := demo.NewSingle(id, m.config)
		if err != nil {
			logging.Errorf("gallery: %v", err)
			return nil
		}
		content = single
	}
	logging.Debugf("gallery: open %s", id)
	m.current = id

	replaceCmd, _ := m.body.Replace(contentIndex, content)
	return tea.Batch(replaceCmd, m.focus(contentIndex))
}

func (m *Model) focus(index int) tea.Cmd {
	focusCmd, keyMap := m.body.SetFocus(stack.FocusIndex(index))
	return tea.Batch(focusCmd, util.AnnounceKeyMapCmd(m.keyMap(keyMap)))
}

func (m *Model) keyMap(keyMap help.KeyMap) help.KeyMap {
	if m.ContentFocused() {
		return util.MergeKeyMaps(keyMap, m.KeyMap)
	}
	return keyMap
}

func (m *Model) View() string {
	return m.layout.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, keyMap := m.layout.Focus()
	return cmd, m.keyMap(keyMap)
}

func (m *Model) Blur() tea.Cmd {
	return m.layout.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Current returns the id of the open demo, empty before the first one.
func (m *Model) Current() string { return m.current }

// ContentFocused reports whether the open demo holds the focus.
func (m *Model) ContentFocused() bool {
	return m.body.Focused() == stack.FocusIndex(contentIndex)
}
