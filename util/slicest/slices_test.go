// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapAndFilter(t *testing.T) {
	in := []int{1, 2, 3, 4}

	got := Map(in, strconv.Itoa)
	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, got); diff != "" {
		t.Fatalf("Map mismatch (-want +got):\n%s", diff)
	}

	indexed := MapI(in, func(i, v int) int { return i * v })
	if diff := cmp.Diff([]int{0, 2, 6, 12}, indexed); diff != "" {
		t.Fatalf("MapI mismatch (-want +got):\n%s", diff)
	}

	even := Filter(in, func(v int) bool { return v%2 == 0 })
	if diff := cmp.Diff([]int{2, 4}, even); diff != "" {
		t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
	}

	if sum := ReduceD(in, 10, func(v, acc int) int { return acc + v }); sum != 20 {
		t.Fatalf("ReduceD = %d, want 20", sum)
	}
}

func TestIndexFunc(t *testing.T) {
	in := []bool{false, true, false, true}
	isTrue := func(b bool) bool { return b }

	if got := IndexFunc(in, 2, 1, isTrue); got != 3 {
		t.Fatalf("forward search = %d, want 3", got)
	}
	if got := IndexFunc(in, 2, -1, isTrue); got != 1 {
		t.Fatalf("backward search = %d, want 1", got)
	}
	if got := IndexFunc(in, 0, -1, isTrue); got != -1 {
		t.Fatalf("search without match = %d, want -1", got)
	}
}
