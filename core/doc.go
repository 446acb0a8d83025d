// SPDX-License-Identifier: MIT

// Package core defines the shared vocabulary of the tropical module: the
// Scalar type constraint, the sentinel errors every algorithm returns, the
// shape/value validators that guard each public entry point, and a small
// Logger interface for optional diagnostics.
//
// 🚀 What lives here?
//
//   - Scalar — any integer or floating-point type (golang.org/x/exp/constraints).
//     Both input sequences of a convolution share one Scalar type, so a
//     "type mismatch" between A and B is rejected by the compiler.
//   - Sentinel errors — ErrSequenceTooShort, ErrResultSizeOutOfRange,
//     ErrDiagonalOutOfRange, ErrIndexSinkLength, ErrNaN, ErrIndeterminateSum.
//     Match them with errors.Is; context is attached with errors.Wrapf.
//   - Validators — ValidatePair, ValidateResultSize, ValidateDiagonal,
//     ValidateIndexSink. Pure, allocation-free, O(n+m) at most.
//   - Logger — Infof/Errorf, with DefaultLogger (stdlib log) and NoopLogger.
//
// Error policy:
//
//	Every precondition violation is reported before any output is written.
//	There is no partial-result contract: a call either fills its whole result
//	or returns a non-nil error and leaves the caller's buffers unspecified.
//
// Numeric policy:
//
//	NaN is rejected (it breaks the total order the algorithms rely on).
//	±Inf is accepted, except when A holds +Inf and B holds −Inf (or the
//	reverse): the pairwise sum would be NaN. Integer overflow of A[i]+B[j]
//	is the caller's responsibility.
package core
