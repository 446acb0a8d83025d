// Package tropical computes min-plus (tropical) convolutions of numeric
// sequences, from a plain double loop to an output-sensitive frontier search.
//
// 🚀 What is tropical?
//
//	For A of length n and B of length m the min-plus convolution is
//
//		C[k] = min over i+j=k of A[i] + B[j],   k in [0, resultSize), resultSize ≤ n+m-1
//
//	It is ordinary convolution over the (min, +) semiring and appears in
//	budget/resource allocation, network calculus and dynamic-programming
//	speed-ups. This module brings together:
//		• naive/    — the O(n·m) double loop, smallest index wins ties
//		• frontier/ — heap-driven search of the rank lattice with a
//		              per-diagonal fallback (Bussieck et al., 1994)
//		• minconv/  — entry points, size-based dispatch, batch API
//		• minsum/   — a single diagonal: MinSum / ArgMinSum
//
// ✨ Why choose tropical?
//
//   - Generic – any integer or float element type (core.Scalar)
//   - Exact – both routines return bit-identical values
//   - Witnesses – optional per-slot index I with A[I[k]] + B[k-I[k]] == C[k]
//   - Safe – malformed input (short sequences, NaN, +Inf/−Inf pairing,
//     out-of-range sizes) is reported as an error, never a wrong answer
//   - Reentrant – every call owns its state; Batch fans out over goroutines
//
// Under the hood:
//
//	core/       — Scalar constraint, sentinel errors, validators, Logger
//	rank/       — ranked views (value, original index), stable order
//	cover/      — row/column claim tracker of the frontier
//	gen/        — deterministic RNG streams and synthetic inputs
//	cmd/minconv — `bench` and `check` front ends
//
// Quick example:
//
//	c, idx, err := minconv.MinConvIndex([]float64{1, 3}, []float64{2, 5}, 3)
//	// c = [3 5 8], idx = [0 1 1]
//
//	go get github.com/katalvlaran/tropical
package tropical
