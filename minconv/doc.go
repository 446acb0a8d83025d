// SPDX-License-Identifier: MIT

// Package minconv is the entry point of the tropical module: min-plus
// convolution with automatic choice between the naive double loop and the
// frontier search, plus single-diagonal queries and a concurrent batch API.
//
// 🚀 What is a min-plus convolution?
//
//	C[k] = min over i+j=k of A[i]+B[j], for k in [0, resultSize) and
//	resultSize ≤ len(A)+len(B)-1. Think "best split of a budget k between two
//	activities whose costs are A and B".
//
// ✨ Entry points:
//
//	MinConv(a, b, size, opts...)          → C
//	MinConvIndex(a, b, size, opts...)     → C, I   (A[I[k]] + B[k-I[k]] == C[k])
//	MinConvInto(dst, idx, a, b, opts...)  → writes into caller buffers, idx may be nil
//	MinSum(a, b, s) / ArgMinSum(a, b, s)  → a single diagonal
//	Batch(ctx, jobs, opts...)             → many independent convolutions
//
// ⚙️ Options:
//
//   - WithThreshold(n): result sizes below n use the naive loop (default 500).
//   - WithFallbackRatio(r): frontier fallback trigger (default 0.08).
//   - WithAlgorithm(Naive|Frontier): force a routine (tests, benchmarks).
//   - WithLogger(l): report frontier fallbacks and batch failures.
//   - WithWorkers(n): Batch concurrency (default GOMAXPROCS).
//
// Both routines return identical values for identical inputs; only the
// witness of a tied slot may differ.
//
// Errors: ErrOptionViolation, or one of the core sentinels for malformed
// input. Match with errors.Is.
package minconv
