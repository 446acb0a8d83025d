// SPDX-License-Identifier: MIT

// Package rank builds ranked views of a sequence: the (value, original index)
// pairs of a sequence sorted ascending by value.
//
// Determinism:
//
//	Equal values keep their original relative order (stable sort), so ties
//	are broken by ascending original index. Two views built from the same
//	sequence are identical, which makes every lattice exploration driven by
//	them reproducible.
//
// Complexity: O(n log n) time, O(n) space.
package rank

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/tropical/core"
)

// Entry is one ranked element: its value and its position in the original sequence.
type Entry[T core.Scalar] struct {
	Value T
	Index int
}

// View is a sequence sorted ascending by Value, ties by ascending Index.
// Position r in the slice is the element's rank.
type View[T core.Scalar] []Entry[T]

// NewView returns the ranked view of s. s is not modified.
func NewView[T core.Scalar](s []T) View[T] {
	v := make(View[T], len(s))
	var i int
	for i = range s {
		v[i] = Entry[T]{Value: s[i], Index: i}
	}
	// Stable: entries start in index order, so equal values stay index-ascending.
	slices.SortStableFunc(v, func(x, y Entry[T]) int {
		return cmp.Compare(x.Value, y.Value)
	})

	return v
}

// Values returns the ranked values (ascending).
func (v View[T]) Values() []T {
	out := make([]T, len(v))
	for r := range v {
		out[r] = v[r].Value
	}

	return out
}

// Indices returns the original index of every rank.
func (v View[T]) Indices() []int {
	out := make([]int, len(v))
	for r := range v {
		out[r] = v[r].Index
	}

	return out
}
