// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers used by the view code.
package slicest

// Map

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}

// Filter

// Filter returns the elements of s for which keep returns true, in order.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	var result S
	for _, t := range s {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

// IndexFunc returns the index of the first element matching fn at or after
// from, stepping by step (+1 or -1), or -1.
func IndexFunc[T any, S ~[]T](s S, from, step int, fn func(T) bool) int {
	for i := from; i >= 0 && i < len(s); i += step {
		if fn(s[i]) {
			return i
		}
	}
	return -1
}

// Reduce

// ReduceD reduces slice S to type U using explicit initial value.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}
