// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package convt converts between strings and the optional scalar values
// carried by form inputs.
package convt

import (
	"strconv"
	"strings"
)

func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func OnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Int renders an optional int. A nil pointer renders as "".
func Int(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

// ParseInt parses a decimal integer. Empty input, a lone sign and anything
// strconv rejects yield nil.
func ParseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "+" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &i
}

func Ptr[T any](v T) *T { return &v }
