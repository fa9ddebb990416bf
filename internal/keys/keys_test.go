// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Event
	}{
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, Event{Code: Backspace}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, Event{Code: Tab, Shift: true}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, Event{Code: Enter}},
		{"ctrl left", tea.KeyMsg{Type: tea.KeyCtrlLeft}, Event{Code: Left, Ctrl: true}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, Event{Code: Space, Rune: ' ', Runes: []rune{' '}}},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}, Event{Code: Digit0 + 7, Rune: '7', Runes: []rune{'7'}}},
		{"upper letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}}, Event{Code: A + 16, Rune: 'Q', Shift: true, Runes: []rune{'Q'}}},
		{"minus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}}, Event{Code: Minus, Rune: '-', Runes: []rune{'-'}}},
		{"other rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'ä'}}, Event{Code: Char, Rune: 'ä', Runes: []rune{'ä'}}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("555"), Paste: true}, Event{Code: Char, Paste: true, Runes: []rune("555")}},
		{"ctrl+v", tea.KeyMsg{Type: tea.KeyCtrlV}, Event{Code: A + 21, Rune: 'v', Ctrl: true}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, Event{Code: A + 23, Rune: 'x', Alt: true, Runes: []rune{'x'}}},
		{"unknown", tea.KeyMsg{Type: tea.KeyF5}, Event{Code: None}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.msg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Decode(%v) mismatch (-want +got):\n%s", tt.msg, diff)
			}
		})
	}
}

func TestAllowLists(t *testing.T) {
	digit := Decode(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	letter := Decode(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	left := Decode(tea.KeyMsg{Type: tea.KeyLeft})
	del := Decode(tea.KeyMsg{Type: tea.KeyDelete})
	ctrlC := Decode(tea.KeyMsg{Type: tea.KeyCtrlC})
	paste := Decode(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12"), Paste: true})

	if !IsDigit(digit) || IsDigit(letter) || IsDigit(paste) {
		t.Fatalf("IsDigit classification wrong")
	}
	if !IsLetter(letter) || IsLetter(digit) || IsLetter(ctrlC) {
		t.Fatalf("IsLetter classification wrong")
	}
	if !IsEditing(left) || !IsEditing(del) || IsEditing(digit) {
		t.Fatalf("IsEditing classification wrong")
	}
	if !IsNavigation(left) || IsNavigation(del) {
		t.Fatalf("IsNavigation classification wrong")
	}
	if !IsShortcut(ctrlC) || IsShortcut(letter) {
		t.Fatalf("IsShortcut classification wrong")
	}
	if !IsPrintable(digit) || !IsPrintable(paste) || IsPrintable(left) || IsPrintable(ctrlC) {
		t.Fatalf("IsPrintable classification wrong")
	}
	if !In(del, Backspace, Delete) || In(left, Backspace, Delete) {
		t.Fatalf("In classification wrong")
	}
}
