// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

package mask

import (
	"slices"

	"github.com/toeirei/formkit/internal/keys"
)

// State is what a masked input needs to remember between keystrokes. Host
// code may keep it to restore an input.
type State struct {
	Raw    string
	Cursor int
}

// Editor applies keystrokes to a State.
type Editor struct {
	Pattern Pattern
	Class   Class
}

func NewEditor(pattern string, inputChar rune, class Class) Editor {
	if class == nil {
		class = AnyRune
	}
	return Editor{Pattern: Parse(pattern, inputChar), Class: class}
}

// Set builds a State from either a raw or a formatted value with the cursor
// at the end.
func (e Editor) Set(value string) State {
	raw := e.Pattern.Extract(value, e.Class)
	return State{Raw: raw, Cursor: len([]rune(raw))}
}

// Apply runs a keystroke against s. The returned bool reports whether the
// state changed; rejected keystrokes return s unchanged.
func (e Editor) Apply(s State, ev keys.Event) (State, bool) {
	raw := []rune(s.Raw)
	cursor := max(0, min(s.Cursor, len(raw)))

	if keys.IsShortcut(ev) {
		return s, false
	}

	switch ev.Code {
	case keys.Backspace:
		if cursor == 0 {
			return s, false
		}
		raw = slices.Delete(raw, cursor-1, cursor)
		return State{Raw: string(raw), Cursor: cursor - 1}, true
	case keys.Delete:
		if cursor >= len(raw) {
			return s, false
		}
		raw = slices.Delete(raw, cursor, cursor+1)
		return State{Raw: string(raw), Cursor: cursor}, true
	case keys.Left:
		return e.moveTo(s, raw, cursor, cursor-1)
	case keys.Right:
		return e.moveTo(s, raw, cursor, cursor+1)
	case keys.Home:
		return e.moveTo(s, raw, cursor, 0)
	case keys.End:
		return e.moveTo(s, raw, cursor, len(raw))
	}

	if !keys.IsPrintable(ev) {
		return s, false
	}
	if len(ev.Runes) > 1 {
		return e.Insert(s, string(ev.Runes))
	}

	// Only separators are swallowed; "+1 (###)" still takes a typed 1.
	r := ev.Runes[0]
	if !e.Class(r) || e.Pattern.separator(r, e.Class) || len(raw) >= e.Pattern.Slots() {
		return s, false
	}
	raw = slices.Insert(raw, cursor, r)
	return State{Raw: string(raw), Cursor: cursor + 1}, true
}

// Insert pastes text at the cursor. The text may be formatted; only runes
// accepted by the class are kept, up to the number of free slots.
func (e Editor) Insert(s State, text string) (State, bool) {
	raw := []rune(s.Raw)
	cursor := max(0, min(s.Cursor, len(raw)))
	free := e.Pattern.Slots() - len(raw)
	if free <= 0 {
		return s, false
	}

	add := []rune(e.Pattern.Extract(text, e.Class))
	if len(add) > free {
		add = add[:free]
	}
	if len(add) == 0 {
		return s, false
	}

	raw = slices.Insert(raw, cursor, add...)
	return State{Raw: string(raw), Cursor: cursor + len(add)}, true
}

func (e Editor) moveTo(s State, raw []rune, from, to int) (State, bool) {
	to = max(0, min(to, len(raw)))
	if to == from {
		return s, false
	}
	return State{Raw: string(raw), Cursor: to}, true
}

// Formatted returns the display value of s.
func (e Editor) Formatted(s State) string {
	return e.Pattern.Format(s.Raw)
}

// DisplayCursor returns the cursor position inside the formatted value.
func (e Editor) DisplayCursor(s State) int {
	return e.Pattern.Cursor(s.Raw, s.Cursor)
}
