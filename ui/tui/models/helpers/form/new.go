// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

// Field pairs an input with the key its value is stored under.
type Field struct {
	ID    string
	Input FormInput
}

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{KeyMap: NewKeyMap()}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithKeyMap sets bindings of the surrounding view that stay active (and
// announced) while the form has focus.
func WithKeyMap[T any](keyMap help.KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.baseKeyMap = keyMap
	}
}

// WithInput appends an input on its own row.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return WithRow[T](Field{ID: id, Input: input})
}

// WithRow appends inputs that share one row, splitting its width evenly.
func WithRow[T any](fields ...Field) NewOpt[T] {
	return func(form *Form[T]) {
		var row formRow
		for _, f := range fields {
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{id: f.ID, input: f.Input})
		}
		if len(row.items) > 0 {
			form.rows = append(form.rows, row)
		}
	}
}
