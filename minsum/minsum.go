// SPDX-License-Identifier: MIT

// Package minsum resolves a single diagonal of a min-plus convolution:
// given A, B and s, it returns min over i+j=s of A[i]+B[j] and, for
// ArgMinSum, the witnessing pair (i, j).
//
// Window:
//
//	For n = len(A), m = len(B) the valid A-indices of diagonal s are
//	[max(0, s-m+1), min(s+1, n)), so every j = s-i lies in [0, m).
//
// Ties:
//
//	Indices are scanned in ascending order and the best pair is only
//	replaced on a strictly smaller sum, so the smallest minimizing i wins.
//
// Complexity: O(min(s+1, n) - max(0, s-m+1)) time, O(1) space.
package minsum

import "github.com/katalvlaran/tropical/core"

// Window returns the half-open range [lo, hi) of A-indices i for which
// (i, s-i) is a valid cell of an n×m lattice. The range is empty when s is
// outside [0, n+m-2].
func Window(n, m, s int) (lo, hi int) {
	lo = max(0, s-m+1)
	hi = min(s+1, n)
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// MinSum returns min over i+j=s of a[i]+b[j].
//
// Errors:
//   - core.ErrSequenceTooShort, core.ErrNaN, core.ErrIndeterminateSum (via core.ValidatePair).
//   - core.ErrDiagonalOutOfRange if s ∉ [0, len(a)+len(b)-2].
func MinSum[T core.Scalar](a, b []T, s int) (T, error) {
	v, _, _, err := ArgMinSum(a, b, s)

	return v, err
}

// ArgMinSum returns min over i+j=s of a[i]+b[j] together with the pair
// (i, j) realizing it. On ties the smallest i is returned.
//
// Errors: as MinSum.
func ArgMinSum[T core.Scalar](a, b []T, s int) (value T, i, j int, err error) {
	if err = core.ValidatePair(a, b); err != nil {
		return value, 0, 0, err
	}
	if err = core.ValidateDiagonal(len(a), len(b), s); err != nil {
		return value, 0, 0, err
	}
	value, i = Scan(a, b, s)

	return value, i, s - i, nil
}

// Scan is the unchecked kernel behind ArgMinSum. It assumes len(a), len(b) ≥ 1
// and s ∈ [0, len(a)+len(b)-2]; callers that already validated their inputs
// (the naive and fallback fillers) use it to avoid re-scanning the sequences.
func Scan[T core.Scalar](a, b []T, s int) (value T, i int) {
	lo, hi := Window(len(a), len(b), s)
	value, i = a[lo]+b[s-lo], lo
	var (
		k   int
		cur T
	)
	for k = lo + 1; k < hi; k++ {
		cur = a[k] + b[s-k]
		if cur < value {
			value, i = cur, k
		}
	}

	return value, i
}
