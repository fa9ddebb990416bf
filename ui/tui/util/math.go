// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import "cmp"

func Clamp[T cmp.Ordered](lo, wanted, hi T) T {
	return min(max(lo, wanted), hi)
}

// Window returns the [start, end) range of a list of n rows scrolled so that
// cursor stays visible within height rows, keeping the previous offset when
// possible.
func Window(n, height, offset, cursor int) (start, end int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start = Clamp(0, offset, n-height)
	if cursor < start {
		start = cursor
	} else if cursor >= start+height {
		start = cursor - height + 1
	}
	start = Clamp(0, start, n-height)
	return start, start + height
}
