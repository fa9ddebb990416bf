// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package demo

import (
	"fmt"
	"strings"

	"github.com/toeirei/formkit/internal/config"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/formkit/ui/tui/models/helpers/form/input"
	"github.com/toeirei/formkit/ui/tui/util"
	"github.com/toeirei/formkit/util/convt"
)

// Kinds lists the single input demos by name.
var Kinds = []string{"text", "number", "masked-text", "masked-number", "multiselect"}

// Single holds the value of a one-input demo.
type Single struct {
	Value any
}

func singleRows(label string) func(Single) []Row {
	return func(s Single) []Row {
		return []Row{{Label: label, Value: render(s.Value)}}
	}
}

func render(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case *int:
		return convt.Int(v)
	case []string:
		return strings.Join(v, ", ")
	case string:
		return v
	}
	return fmt.Sprint(v)
}

func newSingle(label string, input form.FormInput) *Model[Single] {
	return New(label, singleRows(label),
		form.WithInput[Single]("value", input),
		form.WithInput[Single]("submit", forminput.NewButton(i18n.T("demo.submit"), false)),
	)
}

// KindLabel returns the display name of an input kind.
func KindLabel(kind string) string {
	switch kind {
	case "text":
		return i18n.T("demo.text")
	case "number":
		return i18n.T("demo.number")
	case "masked-text":
		return i18n.T("demo.masked_text")
	case "masked-number":
		return i18n.T("demo.masked_number")
	case "multiselect":
		return i18n.T("demo.multiselect")
	}
	return kind
}

// NewSingle builds the demo for one input kind.
func NewSingle(kind string, c config.Config) (util.Model, error) {
	label := KindLabel(kind)
	switch kind {
	case "text":
		return newSingle(label, newText(label, c.Text)), nil
	case "number":
		return newSingle(label, newNumber(label, c.Number)), nil
	case "masked-text":
		return newSingle(label, newMaskedText(label, c.Mask, nil)), nil
	case "masked-number":
		return newSingle(label, newMaskedNumber(label, c.NumberMask)), nil
	case "multiselect":
		return newSingle(label, newMultiSelect(label, c.MultiSelect)), nil
	}
	return nil, fmt.Errorf("unknown demo %q, expected one of %s", kind, strings.Join(Kinds, ", "))
}
