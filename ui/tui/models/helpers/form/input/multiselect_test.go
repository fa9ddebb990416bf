// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
)

func testItems() []Item {
	return []Item{
		{Value: "go", Text: "Go", Enabled: true},
		{Value: "cobol", Text: "COBOL", Enabled: false},
		{Value: "rust", Text: "Rust", Enabled: true},
		{Value: "zig", Text: "Zig", Enabled: true},
	}
}

func TestMultiSelectToggle(t *testing.T) {
	var changes [][]string
	opts := DefaultMultiSelectOptions(func(values []string) tea.Cmd {
		changes = append(changes, values)
		return nil
	})
	opts.Items = testItems()
	in := NewMultiSelect("Languages", opts)
	in.Focus()

	press(in, tea.KeySpace) // go
	press(in, tea.KeyDown)
	press(in, tea.KeySpace) // cobol, disabled
	press(in, tea.KeyDown)
	typeRunes(in, "x") // rust
	press(in, tea.KeyUp)
	press(in, tea.KeyUp)
	press(in, tea.KeySpace) // go off

	want := [][]string{{"go"}, {"go", "rust"}, {"rust"}}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Fatalf("OnChange calls mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiSelectCursorClamps(t *testing.T) {
	in := NewMultiSelect("Languages", MultiSelectOptions{Items: testItems()})
	in.Focus()
	press(in, tea.KeyUp)
	if in.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", in.Cursor())
	}
	for range 10 {
		typeRunes(in, "j")
	}
	if in.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", in.Cursor())
	}
}

func TestMultiSelectItemsShrink(t *testing.T) {
	var changes [][]string
	opts := DefaultMultiSelectOptions(func(values []string) tea.Cmd {
		changes = append(changes, values)
		return nil
	})
	opts.Items = testItems()[:3]
	opts.Height = 2
	in := NewMultiSelect("Languages", opts)
	in.Focus()
	press(in, tea.KeyDown)
	press(in, tea.KeyDown)
	if in.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", in.Cursor())
	}

	in.Options.Items = in.Options.Items[:1]
	if view := ansi.Strip(in.View(30)); !strings.Contains(view, "Go") {
		t.Fatalf("View() after shrink = %q", view)
	}
	press(in, tea.KeySpace)
	if in.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", in.Cursor())
	}
	if diff := cmp.Diff([][]string{{"go"}}, changes); diff != "" {
		t.Fatalf("OnChange calls mismatch (-want +got):\n%s", diff)
	}

	in.Options.Items = nil
	press(in, tea.KeySpace)
	if !strings.Contains(in.View(30), "0/0") {
		t.Fatalf("View() with no items = %q", in.View(30))
	}
}

func TestMultiSelectSetGet(t *testing.T) {
	in := NewMultiSelect("Languages", MultiSelectOptions{Items: testItems()})
	if got := in.Get().([]string); got == nil || len(got) != 0 {
		t.Fatalf("empty selection must be an empty slice, got %#v", got)
	}

	in.Set([]string{"zig", "cobol", "nope", "go"})
	if diff := cmp.Diff([]string{"go", "zig"}, in.Selected()); diff != "" {
		t.Fatalf("Selected mismatch (-want +got):\n%s", diff)
	}

	in.Set([]any{"rust"})
	if diff := cmp.Diff([]string{"rust"}, in.Selected()); diff != "" {
		t.Fatalf("Selected mismatch (-want +got):\n%s", diff)
	}

	in.Reset()
	if len(in.Selected()) != 0 {
		t.Fatalf("Reset kept %v", in.Selected())
	}
}

func TestMultiSelectEmpty(t *testing.T) {
	in := NewMultiSelect("Nothing", DefaultMultiSelectOptions(nil))
	in.Focus()
	press(in, tea.KeySpace)
	press(in, tea.KeyDown)
	if action := press(in, tea.KeyEnter); action != form.ActionNext {
		t.Fatalf("enter: %v", action)
	}
	if !strings.Contains(in.View(30), "0/0") {
		t.Fatalf("View() = %q", in.View(30))
	}
}

func TestMultiSelectScrolls(t *testing.T) {
	in := NewMultiSelect("Languages", MultiSelectOptions{Items: testItems(), Height: 2})
	in.Focus()
	for range 3 {
		press(in, tea.KeyDown)
	}

	view := ansi.Strip(in.View(30))
	if !strings.Contains(view, "↑ 2") || !strings.Contains(view, "Zig") || strings.Contains(view, "Go") {
		t.Fatalf("View() = %q", view)
	}

	press(in, tea.KeyUp)
	view = ansi.Strip(in.View(30))
	if !strings.Contains(view, "Rust") || strings.Contains(view, "↓") {
		t.Fatalf("View() after up = %q", view)
	}
}
