// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mask formats user input against literal/placeholder patterns such
// as "(###) ###-####".
//
// A pattern is parsed into tokens: every occurrence of the input character
// is a slot the user fills, every other rune is a literal that is inserted
// automatically. Inputs keep only the raw (slot) runes as their value and
// derive the formatted string from it.
package mask

import (
	"strings"
	"unicode"
)

// DefaultInputChar marks a slot in a pattern unless configured otherwise.
const DefaultInputChar = '#'

type Token struct {
	Input bool
	Char  rune
}

type Pattern []Token

// Class decides which runes an input slot accepts.
type Class func(rune) bool

func AnyRune(r rune) bool { return unicode.IsPrint(r) }

func Digits(r rune) bool { return r >= '0' && r <= '9' }

func Parse(pattern string, inputChar rune) Pattern {
	if inputChar == 0 {
		inputChar = DefaultInputChar
	}
	tokens := make(Pattern, 0, len(pattern))
	for _, r := range pattern {
		if r == inputChar {
			tokens = append(tokens, Token{Input: true, Char: r})
		} else {
			tokens = append(tokens, Token{Char: r})
		}
	}
	return tokens
}

// Slots returns the number of input slots.
func (p Pattern) Slots() int {
	n := 0
	for _, t := range p {
		if t.Input {
			n++
		}
	}
	return n
}

// IsLiteral reports whether r appears as a literal anywhere in the pattern.
func (p Pattern) IsLiteral(r rune) bool {
	for _, t := range p {
		if !t.Input && t.Char == r {
			return true
		}
	}
	return false
}

// Format places raw into the pattern's slots. Literals are only written
// while raw runes remain to be placed, except that trailing literals are
// kept once every slot is filled. Runes beyond the last slot are dropped.
func (p Pattern) Format(raw string) string {
	s, _ := p.format([]rune(raw))
	return s
}

func (p Pattern) format(raw []rune) (string, int) {
	if len(raw) == 0 {
		return "", 0
	}
	var b strings.Builder
	slots := p.Slots()
	i := 0
	for ti, t := range p {
		if t.Input {
			if i >= len(raw) {
				return b.String(), ti
			}
			b.WriteRune(raw[i])
			i++
			continue
		}
		if i >= len(raw) && i < slots {
			return b.String(), ti
		}
		b.WriteRune(t.Char)
	}
	return b.String(), len(p)
}

// Placeholder is Format followed by the unfilled remainder of the pattern,
// with every open slot rendered as fill.
func (p Pattern) Placeholder(raw string, fill rune) string {
	formatted, next := p.format([]rune(raw))
	var b strings.Builder
	b.WriteString(formatted)
	for _, t := range p[next:] {
		if t.Input {
			b.WriteRune(fill)
		} else {
			b.WriteRune(t.Char)
		}
	}
	return b.String()
}

// Extract recovers the raw value from value, which may be either formatted
// or raw already. A literal is consumed where it lines up with the pattern.
// Elsewhere separator literals are skipped while letter or digit literals
// the class accepts count as input, so "+1 (###)" keeps a typed 1. Runes
// rejected by class are dropped and extraction stops once all slots are
// filled.
func (p Pattern) Extract(value string, class Class) string {
	if class == nil {
		class = AnyRune
	}
	out := make([]rune, 0, p.Slots())
	ti := 0
	for _, r := range value {
		if ti >= len(p) {
			break
		}
		if !p[ti].Input && p[ti].Char == r {
			ti++
			continue
		}
		if !class(r) || p.separator(r, class) {
			continue
		}
		for ti < len(p) && !p[ti].Input {
			ti++
		}
		if ti >= len(p) {
			break
		}
		out = append(out, r)
		ti++
	}
	return string(out)
}

// separator reports whether r is a literal of p that never counts as input.
func (p Pattern) separator(r rune, class Class) bool {
	if !p.IsLiteral(r) {
		return false
	}
	return !class(r) || !(unicode.IsLetter(r) || unicode.IsDigit(r))
}

// Cursor maps a cursor position inside raw to the rune position inside the
// formatted string.
func (p Pattern) Cursor(raw string, rawCursor int) int {
	runes := []rune(raw)
	rawCursor = max(0, min(rawCursor, len(runes)))
	if rawCursor < len(runes) {
		n := 0
		for ti, t := range p {
			if !t.Input {
				continue
			}
			if n == rawCursor {
				return ti
			}
			n++
		}
	}
	formatted, _ := p.format(runes)
	return len([]rune(formatted))
}

// Complete reports whether raw fills every slot.
func (p Pattern) Complete(raw string) bool {
	return len([]rune(raw)) >= p.Slots()
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, t := range p {
		b.WriteRune(t.Char)
	}
	return b.String()
}
