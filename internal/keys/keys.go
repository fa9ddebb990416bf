// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keys decodes Bubble Tea key messages into flat key events and
// provides the allow-lists inputs use to decide whether a keystroke may
// change their value.
package keys

import (
	"slices"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Code identifies a key independent of the terminal escape sequence that
// produced it. Values follow the classic browser key codes so option records
// written against those numbers keep working.
type Code int

const (
	None      Code = 0
	Backspace Code = 8
	Tab       Code = 9
	Enter     Code = 13
	Escape    Code = 27
	Space     Code = 32
	End       Code = 35
	Home      Code = 36
	Left      Code = 37
	Up        Code = 38
	Right     Code = 39
	Down      Code = 40
	Delete    Code = 46
	Digit0    Code = 48
	Digit9    Code = 57
	A         Code = 65
	Z         Code = 90
	Minus     Code = 189
	// Char is any printable rune without a dedicated code.
	Char Code = 1000
)

// Event is a decoded keystroke.
type Event struct {
	Code  Code
	Rune  rune
	Ctrl  bool
	Alt   bool
	Shift bool
	Paste bool
	// Runes holds every rune of the message. It has more than one entry for
	// bracketed pastes and fast typing bursts.
	Runes []rune
}

// Editing keys never insert text and are always passed on to the input.
var Editing = []Code{Backspace, Delete, Tab, Enter, Escape, Home, End, Left, Right, Up, Down}

// Navigation keys only move the cursor.
var Navigation = []Code{Home, End, Left, Right, Up, Down}

var navigationTypes = map[tea.KeyType]Event{
	tea.KeyBackspace:  {Code: Backspace},
	tea.KeyCtrlH:      {Code: Backspace, Ctrl: true},
	tea.KeyDelete:     {Code: Delete},
	tea.KeyTab:        {Code: Tab},
	tea.KeyShiftTab:   {Code: Tab, Shift: true},
	tea.KeyEnter:      {Code: Enter},
	tea.KeyEsc:        {Code: Escape},
	tea.KeyHome:       {Code: Home},
	tea.KeyEnd:        {Code: End},
	tea.KeyLeft:       {Code: Left},
	tea.KeyRight:      {Code: Right},
	tea.KeyUp:         {Code: Up},
	tea.KeyDown:       {Code: Down},
	tea.KeyCtrlLeft:   {Code: Left, Ctrl: true},
	tea.KeyCtrlRight:  {Code: Right, Ctrl: true},
	tea.KeyShiftLeft:  {Code: Left, Shift: true},
	tea.KeyShiftRight: {Code: Right, Shift: true},
	tea.KeyCtrlHome:   {Code: Home, Ctrl: true},
	tea.KeyCtrlEnd:    {Code: End, Ctrl: true},
}

// Decode converts a Bubble Tea key message into an Event. Unknown key types
// decode to an Event with Code None.
func Decode(msg tea.KeyMsg) Event {
	if e, ok := navigationTypes[msg.Type]; ok {
		e.Alt = msg.Alt
		return e
	}

	switch msg.Type {
	case tea.KeySpace:
		return Event{Code: Space, Rune: ' ', Runes: []rune{' '}, Alt: msg.Alt}
	case tea.KeyRunes:
		e := Event{Alt: msg.Alt, Paste: msg.Paste, Runes: slices.Clone(msg.Runes)}
		if len(msg.Runes) == 1 {
			e.Rune = msg.Runes[0]
			e.Code, e.Shift = codeOf(e.Rune)
		} else if len(msg.Runes) > 1 {
			e.Code = Char
		}
		return e
	}

	// ctrl+a .. ctrl+z share the control character range 1..26
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		letter := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return Event{Code: A + Code(letter-'a'), Rune: letter, Ctrl: true, Alt: msg.Alt}
	}

	return Event{Code: None, Alt: msg.Alt}
}

func codeOf(r rune) (Code, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Digit0 + Code(r-'0'), false
	case r >= 'a' && r <= 'z':
		return A + Code(r-'a'), false
	case r >= 'A' && r <= 'Z':
		return A + Code(r-'A'), true
	case r == '-':
		return Minus, false
	case r == ' ':
		return Space, false
	}
	return Char, false
}

// In reports whether the event's code is one of codes.
func In(e Event, codes ...Code) bool {
	return slices.Contains(codes, e.Code)
}

func IsDigit(e Event) bool {
	return e.Code >= Digit0 && e.Code <= Digit9 && len(e.Runes) <= 1
}

func IsLetter(e Event) bool {
	return e.Code >= A && e.Code <= Z && !e.Ctrl && len(e.Runes) <= 1
}

func IsEditing(e Event) bool {
	return In(e, Editing...)
}

func IsNavigation(e Event) bool {
	return In(e, Navigation...)
}

// IsShortcut reports key combinations that belong to the host application
// (copy, paste, select all, ...) rather than to the text being edited.
func IsShortcut(e Event) bool {
	return e.Ctrl || e.Alt
}

// IsPrintable reports whether the event would insert text.
func IsPrintable(e Event) bool {
	if IsShortcut(e) || len(e.Runes) == 0 {
		return false
	}
	for _, r := range e.Runes {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
