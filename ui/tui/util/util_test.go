// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type testKeyMap struct{ bindings []key.Binding }

func (k testKeyMap) ShortHelp() []key.Binding  { return k.bindings }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.bindings} }

func TestMergeKeyMaps(t *testing.T) {
	a := testKeyMap{[]key.Binding{key.NewBinding(key.WithKeys("a"))}}
	b := testKeyMap{[]key.Binding{key.NewBinding(key.WithKeys("b")), key.NewBinding(key.WithKeys("c"))}}

	merged := MergeKeyMaps(a, nil, b)
	if got := len(merged.ShortHelp()); got != 3 {
		t.Fatalf("ShortHelp has %d bindings, want 3", got)
	}
	if got := len(merged.FullHelp()); got != 2 {
		t.Fatalf("FullHelp has %d groups, want 2", got)
	}

	msg := AnnounceKeyMapCmd(a, b)()
	announce, ok := msg.(AnnounceKeyMapMsg)
	if !ok {
		t.Fatalf("AnnounceKeyMapCmd produced %T", msg)
	}
	if got := len(announce.KeyMap.ShortHelp()); got != 3 {
		t.Fatalf("announced key map has %d bindings, want 3", got)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                      string
		n, height, offset, cursor int
		wantStart, wantEnd        int
	}{
		{"fits", 3, 5, 0, 2, 0, 3},
		{"no height", 10, 0, 4, 9, 0, 10},
		{"cursor inside", 10, 4, 2, 3, 2, 6},
		{"cursor below", 10, 4, 0, 6, 3, 7},
		{"cursor above", 10, 4, 5, 1, 1, 5},
		{"offset too large", 10, 4, 9, 9, 6, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.n, tt.height, tt.offset, tt.cursor)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("Window = [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestSize(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("key message must not count as resize")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("resize not detected")
	}
	if got := s.Shrink(10, 30); got != (Size{Width: 70, Height: 0}) {
		t.Fatalf("Shrink = %+v", got)
	}
	if got := Clamp(1, 9, 5); got != 5 {
		t.Fatalf("Clamp = %d", got)
	}
}
