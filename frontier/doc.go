// SPDX-License-Identifier: MIT

// Package frontier computes min-plus convolutions with an output-sensitive
// search over the rank lattice (Bussieck, Hassler, Woeginger, Zimmermann, 1994).
//
// Overview:
//
//   - Both inputs are ranked ascending. Cell (i, j) of the n×m rank lattice
//     has value viewA[i]+viewB[j], non-decreasing along rows and columns,
//     and resolves output slot viewA[i].Index + viewB[j].Index.
//   - A min-heap pops cells in value order. The first pop that lands on an
//     open slot is that slot's minimum, so most of the lattice is never touched
//     when the minima are found early.
//   - A cover tracker keeps at most one queued cell per rank row and column;
//     expansion skips ahead along the free line past cells whose slot is
//     already resolved.
//   - When the queue grows past FallbackRatio × open slots, the remaining
//     slots are filled by a direct scan of their diagonals.
//
// When to use:
//
//   - Long inputs whose min-plus structure lets the frontier resolve slots
//     quickly. For short outputs the naive double loop is usually faster; the
//     minconv package picks between them.
//
// Options:
//
//   - WithFallbackRatio(r): fallback trigger, r ≥ 0, +Inf disables it
//     (default DefaultFallbackRatio = 0.08).
//   - WithOnPop(fn): observe every popped cell.
//   - WithOnFallback(fn): observe the hand-over to the diagonal filler.
//   - WithStats(&s): collect pop/push/skip/fallback counters.
//
// Error handling:
//
//   - ErrOptionViolation: an Option received an invalid value.
//   - core sentinels for malformed inputs (length, NaN, +Inf/−Inf pairing,
//     result size, index sink).
//   - An assertion failure (see errors.HasAssertionFailure) if the search
//     ever drains its queue with open slots. Build with -tags invariants to
//     also check pop monotonicity and cover bookkeeping at every step.
//
// API reference:
//
//	func Convolve[T core.Scalar](a, b []T, resultSize int, opts ...Option) ([]T, error)
//	func ConvolveIndex[T core.Scalar](a, b []T, resultSize int, opts ...Option) ([]T, []int, error)
//	func ConvolveInto[T core.Scalar](dst []T, idx []int, a, b []T, opts ...Option) error
//
// Concurrency: a call owns all of its state; concurrent calls are safe.
package frontier
