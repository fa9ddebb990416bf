// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package demo

import (
	"strings"

	"github.com/toeirei/formkit/internal/config"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/internal/mask"
	"github.com/toeirei/formkit/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/formkit/ui/tui/models/helpers/form/input"
	"github.com/toeirei/formkit/util/convt"
)

// Registration is the value of the showcase form.
type Registration struct {
	Name      string
	Password  string
	Age       *int
	Phone     string
	Card      *int
	Zip       string
	Interests []string
}

func registrationRows(r Registration) []Row {
	return []Row{
		{Label: i18n.T("demo.name"), Value: r.Name},
		{Label: i18n.T("demo.password"), Value: strings.Repeat("•", len([]rune(r.Password)))},
		{Label: i18n.T("demo.age"), Value: convt.Int(r.Age)},
		{Label: i18n.T("demo.phone"), Value: r.Phone},
		{Label: i18n.T("demo.card"), Value: convt.Int(r.Card)},
		{Label: i18n.T("demo.zip"), Value: r.Zip},
		{Label: i18n.T("demo.interests"), Value: strings.Join(r.Interests, ", ")},
	}
}

// NewShowcase builds a registration form holding every input kind.
func NewShowcase(c config.Config) *Model[Registration] {
	name := c.Text
	name.Kind = "text"
	name.Placeholder = i18n.T("demo.name_placeholder")

	password := c.Text
	password.Kind = "password"
	password.Placeholder = ""

	age := c.Number
	if age.Min == nil {
		age.Min = convt.Ptr(0)
	}
	if age.Max == nil {
		age.Max = convt.Ptr(150)
	}

	// zip codes keep their leading zeros, so they stay text
	zip := config.MaskConfig{Pattern: "#####", InputChar: "#", ShowPattern: c.NumberMask.ShowPattern}

	return New(i18n.T("demo.title"), registrationRows,
		form.WithInput[Registration]("name", newText(i18n.T("demo.name"), name)),
		form.WithInput[Registration]("password", newText(i18n.T("demo.password"), password)),
		form.WithRow[Registration](
			form.Field{ID: "age", Input: newNumber(i18n.T("demo.age"), age)},
			form.Field{ID: "phone", Input: newMaskedText(i18n.T("demo.phone"), c.Mask, nil)},
		),
		form.WithRow[Registration](
			form.Field{ID: "card", Input: newMaskedNumber(i18n.T("demo.card"), c.NumberMask)},
			form.Field{ID: "zip", Input: newMaskedText(i18n.T("demo.zip"), zip, mask.Digits)},
		),
		form.WithInput[Registration]("interests", newMultiSelect(i18n.T("demo.interests"), c.MultiSelect)),
		form.WithInput[Registration]("submit", forminput.NewButton(i18n.T("demo.submit"), false)),
	)
}
