// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/toeirei/formkit/util/convt"
)

func TestNumberOptionsValid(t *testing.T) {
	tests := []struct {
		name string
		opts NumberOptions
		s    string
		want bool
	}{
		{"empty", NumberOptions{}, "", true},
		{"digits", NumberOptions{}, "42", true},
		{"letters", NumberOptions{}, "4a", false},
		{"lone minus", NumberOptions{}, "-", true},
		{"negative", NumberOptions{}, "-12", true},
		{"minus inside", NumberOptions{}, "1-2", false},
		{"minus forbidden", NumberOptions{MinValue: convt.Ptr(0)}, "-", false},
		{"too many digits", NumberOptions{MaxLength: 2}, "123", false},
		{"sign is no digit", NumberOptions{MaxLength: 2}, "-12", true},
		{"above max", NumberOptions{MaxValue: convt.Ptr(100)}, "101", false},
		{"at max", NumberOptions{MaxValue: convt.Ptr(100)}, "100", true},
		{"below negative min", NumberOptions{MinValue: convt.Ptr(-5)}, "-6", false},
		{"below positive min while typing", NumberOptions{MinValue: convt.Ptr(10)}, "5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Valid(tt.s); got != tt.want {
				t.Fatalf("Valid(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestNumberTyping(t *testing.T) {
	var seen []string
	opts := DefaultNumberOptions(func(i *int) tea.Cmd {
		seen = append(seen, convt.Int(i))
		return nil
	})
	opts.MaxValue = convt.Ptr(100)
	in := NewNumber("Age", "", opts)
	in.Focus()

	typeRunes(in, "1x001")
	if got := convt.Int(in.Value()); got != "100" {
		t.Fatalf("Value() = %q, want 100", got)
	}
	if diff := cmp.Diff([]string{"1", "10", "100"}, seen); diff != "" {
		t.Fatalf("OnInput calls mismatch (-want +got):\n%s", diff)
	}
}

func TestNumberBlurAppliesMinimum(t *testing.T) {
	var last *int
	opts := DefaultNumberOptions(func(i *int) tea.Cmd {
		last = i
		return nil
	})
	opts.MinValue = convt.Ptr(10)
	in := NewNumber("Age", "", opts)
	in.Focus()

	typeRunes(in, "-5")
	if got := convt.Int(in.Value()); got != "5" {
		t.Fatalf("minus must be rejected, Value() = %q", got)
	}
	in.Blur()
	if got := convt.Int(in.Value()); got != "10" {
		t.Fatalf("after blur Value() = %q, want 10", got)
	}
	if convt.Int(last) != "10" {
		t.Fatalf("OnInput not told about the clamped value, last = %q", convt.Int(last))
	}
}

func TestNumberBlurClearsLoneMinus(t *testing.T) {
	var strs []string
	opts := DefaultNumberOptions(nil)
	opts.OnInputString = func(s string) tea.Cmd {
		strs = append(strs, s)
		return nil
	}
	in := NewNumber("Delta", "", opts)
	in.Focus()
	typeRunes(in, "-")
	in.Blur()

	if in.Value() != nil {
		t.Fatalf("Value() = %v, want nil", *in.Value())
	}
	if diff := cmp.Diff([]string{"-", ""}, strs); diff != "" {
		t.Fatalf("OnInputString calls mismatch (-want +got):\n%s", diff)
	}
}

func TestNumberPaste(t *testing.T) {
	in := NewNumber("Age", "", NumberOptions{MaxLength: 3})
	in.Focus()
	in.Update(pasteMsg{id: in.id, text: " 12 \n"})
	if got := convt.Int(in.Value()); got != "12" {
		t.Fatalf("Value() = %q, want 12", got)
	}
	in.Update(pasteMsg{id: in.id, text: "345"})
	if got := convt.Int(in.Value()); got != "12" {
		t.Fatalf("overlong paste must be rejected, Value() = %q", got)
	}
}

func TestNumberSet(t *testing.T) {
	in := NewNumber("Age", "", NumberOptions{MaxValue: convt.Ptr(50)})
	in.Set(42)
	if got := convt.Int(in.Value()); got != "42" {
		t.Fatalf("Set(int): %q", got)
	}
	in.Set(99)
	if got := convt.Int(in.Value()); got != "42" {
		t.Fatalf("Set above max must be ignored: %q", got)
	}
	in.Set((*int)(nil))
	if in.Value() != nil {
		t.Fatalf("Set(nil *int) must clear")
	}
	in.Set("7")
	if got := in.Get().(*int); got == nil || *got != 7 {
		t.Fatalf("Set(string): %v", got)
	}
}
