// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package demo

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/formkit/internal/config"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/internal/mask"
	forminput "github.com/toeirei/formkit/ui/tui/models/helpers/form/input"
	"github.com/toeirei/formkit/util/convt"
	"github.com/toeirei/formkit/util/slicest"
)

// The builders below turn config sections into inputs whose callbacks
// report to the value panel.

func focusEvent(label string) func(bool) tea.Cmd {
	return func(focused bool) tea.Cmd {
		return Event(label, i18n.T("demo.focused")+" "+convt.OnOff(focused))
	}
}

func textKind(kind string) forminput.TextKind {
	switch strings.ToLower(kind) {
	case "password":
		return forminput.KindPassword
	case "email":
		return forminput.KindEmail
	}
	return forminput.KindText
}

func newText(label string, c config.TextConfig) *forminput.Text {
	opts := forminput.DefaultTextOptions(func(s string) tea.Cmd { return Event(label, s) })
	opts.MaxLength = c.MaxLength
	opts.Kind = textKind(c.Kind)
	opts.HasFocus = focusEvent(label)
	return forminput.NewText(label, c.Placeholder, opts)
}

func newNumber(label string, c config.NumberConfig) *forminput.Number {
	opts := forminput.DefaultNumberOptions(func(i *int) tea.Cmd { return Event(label, convt.Int(i)) })
	opts.MaxLength = c.MaxLength
	opts.MinValue = c.Min
	opts.MaxValue = c.Max
	opts.HasFocus = focusEvent(label)
	return forminput.NewNumber(label, "", opts)
}

func maskState(label string, pattern mask.Pattern) func(mask.State) tea.Cmd {
	return func(s mask.State) tea.Cmd {
		return Event(label, i18n.T("demo.complete")+" "+convt.Bool(pattern.Complete(s.Raw)))
	}
}

func newMaskedText(label string, c config.MaskConfig, class mask.Class) *forminput.MaskedText {
	opts := forminput.DefaultMaskedTextOptions(c.Pattern, func(s string) tea.Cmd { return Event(label, s) }, nil)
	opts.InputChar = c.Rune()
	opts.Class = class
	opts.ShowPattern = c.ShowPattern
	opts.HasFocus = focusEvent(label)
	opts.OnState = maskState(label, mask.Parse(c.Pattern, c.Rune()))
	return forminput.NewMaskedText(label, opts)
}

func newMaskedNumber(label string, c config.MaskConfig) *forminput.MaskedNumber {
	opts := forminput.DefaultMaskedNumberOptions(c.Pattern, func(i *int) tea.Cmd { return Event(label, convt.Int(i)) }, nil)
	opts.InputChar = c.Rune()
	opts.ShowPattern = c.ShowPattern
	opts.HasFocus = focusEvent(label)
	return forminput.NewMaskedNumber(label, opts)
}

func newMultiSelect(label string, c config.MultiSelectConfig) *forminput.MultiSelect {
	opts := forminput.DefaultMultiSelectOptions(func(values []string) tea.Cmd {
		return Event(label, strings.Join(values, ", "))
	})
	opts.Items = slicest.Map(c.Items, func(item config.Item) forminput.Item {
		return forminput.Item{Value: item.Value, Text: item.Text, Enabled: item.Enabled}
	})
	if c.Height > 0 {
		opts.Height = c.Height
	}
	opts.HasFocus = focusEvent(label)
	return forminput.NewMultiSelect(label, opts)
}
