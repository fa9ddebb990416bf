// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/toeirei/formkit/internal/config"
)

func TestParseItem(t *testing.T) {
	tests := []struct {
		spec    string
		want    config.Item
		wantErr bool
	}{
		{"go=Go", config.Item{Value: "go", Text: "Go", Enabled: true}, false},
		{"rust", config.Item{Value: "rust", Text: "rust", Enabled: true}, false},
		{"!perl=Perl", config.Item{Value: "perl", Text: "Perl"}, false},
		{"=Nameless", config.Item{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parseItem(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseItem(%q) error = %v", tt.spec, err)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("parseItem(%q) mismatch (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	cmd := newNumberCmd()
	if err := cmd.ParseFlags([]string{"--min", "-3", "--max", "7"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	var n config.NumberConfig
	n.MaxLength = 4
	applyNumberFlags(cmd, &n)
	if n.Min == nil || *n.Min != -3 || n.Max == nil || *n.Max != 7 || n.MaxLength != 4 {
		t.Fatalf("number config = %+v", n)
	}

	cmd = newMultiSelectCmd()
	if err := cmd.ParseFlags([]string{"--item", "a=A", "--item", "!b=B"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	ms := config.MultiSelectConfig{Height: 3, Items: []config.Item{{Value: "old"}}}
	if err := applyMultiSelectFlags(cmd, &ms); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := config.MultiSelectConfig{Height: 3, Items: []config.Item{
		{Value: "a", Text: "A", Enabled: true},
		{Value: "b", Text: "B"},
	}}
	if diff := cmp.Diff(want, ms); diff != "" {
		t.Fatalf("multiselect config mismatch (-want +got):\n%s", diff)
	}

	cmd = newMaskedCmd("masked-number")
	if err := cmd.ParseFlags([]string{"--pattern", "##.##", "--show-pattern=false"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := config.MaskConfig{Pattern: "#", InputChar: "#", ShowPattern: true}
	applyMaskFlags(cmd, &m)
	if diff := cmp.Diff(config.MaskConfig{Pattern: "##.##", InputChar: "#"}, m); diff != "" {
		t.Fatalf("mask config mismatch (-want +got):\n%s", diff)
	}
}
