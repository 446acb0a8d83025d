// SPDX-License-Identifier: MIT
// Package: tropical/gen
//
// sequences.go - synthetic input builders for convolution tests and benches.
//
// Purpose:
//   - Produce reproducible (A, B) pairs with controllable length and shape.
//   - Cover the shapes that stress the frontier search: random values,
//     sorted runs (rank order equals index order), long plateaus (ties),
//     and zig-zags (rank order interleaves both ends of the sequence).
//
// Contract:
//   - Pure helpers; every randomness source is an explicit *rand.Rand.
//   - Values of the float builders lie in [lo, hi).

package gen

import (
	"fmt"
	"slices"

	"golang.org/x/exp/rand"
)

// Shape selects the value pattern of a generated sequence.
type Shape int

const (
	// Uniform draws every value independently from [lo, hi).
	Uniform Shape = iota
	// Ascending sorts a uniform draw ascending.
	Ascending
	// Descending sorts a uniform draw descending.
	Descending
	// Plateau draws from only a handful of distinct levels, creating many ties.
	Plateau
	// Zigzag alternates low and high values around the midpoint.
	Zigzag
)

// plateauLevels is the number of distinct values used by Plateau.
const plateauLevels = 4

// Shapes lists every Shape, in declaration order.
var Shapes = []Shape{Uniform, Ascending, Descending, Plateau, Zigzag}

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case Plateau:
		return "plateau"
	case Zigzag:
		return "zigzag"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Pair is one convolution input.
type Pair struct {
	A, B []float64
}

// Floats returns n values of the given shape drawn from [lo, hi).
//
// Complexity: O(n log n) for the sorted shapes, O(n) otherwise.
func Floats(rng *rand.Rand, n int, lo, hi float64, shape Shape) []float64 {
	out := make([]float64, n)
	span := hi - lo
	var i int
	switch shape {
	case Plateau:
		for i = range out {
			out[i] = lo + span*float64(rng.Intn(plateauLevels))/plateauLevels
		}
	case Zigzag:
		half := span / 2
		for i = range out {
			if i%2 == 0 {
				out[i] = lo + half*rng.Float64()
			} else {
				out[i] = lo + half + half*rng.Float64()
			}
		}
	default:
		for i = range out {
			out[i] = lo + span*rng.Float64()
		}
	}

	switch shape {
	case Ascending:
		slices.Sort(out)
	case Descending:
		slices.Sort(out)
		slices.Reverse(out)
	}

	return out
}

// Ints returns n integers drawn uniformly from [lo, hi).
func Ints(rng *rand.Rand, n int, lo, hi int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = lo + rng.Int63n(hi-lo)
	}

	return out
}

// Length draws an integer uniformly from the closed range [lo, hi].
func Length(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Trials returns count pairs with independent lengths in [minLen, maxLen]
// and values in [lo, hi). Lengths are drawn before values, A before B, as
// the historical correctness driver did.
func Trials(rng *rand.Rand, count, minLen, maxLen int, lo, hi float64, shape Shape) []Pair {
	out := make([]Pair, count)
	var n, m int
	for t := range out {
		n = Length(rng, minLen, maxLen)
		m = Length(rng, minLen, maxLen)
		out[t] = Pair{
			A: Floats(rng, n, lo, hi, shape),
			B: Floats(rng, m, lo, hi, shape),
		}
	}

	return out
}

// Workload returns count pairs of equal length n, the layout of the
// benchmark driver (maxSize/size pairs per size step).
func Workload(rng *rand.Rand, count, n int, lo, hi float64, shape Shape) []Pair {
	out := make([]Pair, count)
	for t := range out {
		out[t] = Pair{
			A: Floats(rng, n, lo, hi, shape),
			B: Floats(rng, n, lo, hi, shape),
		}
	}

	return out
}
