// SPDX-License-Identifier: MIT
// Package: core
//
// Purpose:
//  - Single source of truth for the precondition checks of every entry point.
//  - Keep algorithm bodies minimal by delegating shape/value checks here.
//  - Return sentinels wrapped with errors.Wrapf so errors.Is keeps matching.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - ValidatePair scans both sequences once (O(n+m)); the others are O(1).

package core

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ValidatePair checks the shape and values of a convolution input pair.
//
// Order of checks (stable, covered by tests):
//  1. len(a) ≥ 2, then len(b) ≥ 2 (ErrSequenceTooShort).
//  2. no NaN in a, then b (ErrNaN).
//  3. no +Inf/−Inf pairing across a and b (ErrIndeterminateSum).
//
// Complexity: O(n+m) time, O(1) space.
func ValidatePair[T Scalar](a, b []T) error {
	if len(a) < MinSequenceLen {
		return errors.Wrapf(ErrSequenceTooShort, "len(a)=%d", len(a))
	}
	if len(b) < MinSequenceLen {
		return errors.Wrapf(ErrSequenceTooShort, "len(b)=%d", len(b))
	}

	aPos, aNeg, err := scanValues(a, "a")
	if err != nil {
		return err
	}
	bPos, bNeg, err := scanValues(b, "b")
	if err != nil {
		return err
	}
	if (aPos && bNeg) || (aNeg && bPos) {
		return ErrIndeterminateSum
	}

	return nil
}

// scanValues reports whether s holds +Inf and −Inf, and fails on the first NaN.
// Integer instantiations never hit either branch.
func scanValues[T Scalar](s []T, name string) (posInf, negInf bool, err error) {
	var (
		f float64
		i int
	)
	for i = range s {
		f = float64(s[i])
		switch {
		case math.IsNaN(f):
			return false, false, errors.Wrapf(ErrNaN, "%s[%d]", name, i)
		case math.IsInf(f, 1):
			posInf = true
		case math.IsInf(f, -1):
			negInf = true
		}
	}

	return posInf, negInf, nil
}

// ValidateResultSize checks 1 ≤ resultSize ≤ n+m-1.
//
// Complexity: O(1).
func ValidateResultSize(n, m, resultSize int) error {
	if resultSize < 1 || resultSize > n+m-1 {
		return errors.Wrapf(ErrResultSizeOutOfRange, "result size %d not in [1, %d]", resultSize, n+m-1)
	}

	return nil
}

// ValidateDiagonal checks 0 ≤ s ≤ n+m-2.
//
// Complexity: O(1).
func ValidateDiagonal(n, m, s int) error {
	if s < 0 || s > n+m-2 {
		return errors.Wrapf(ErrDiagonalOutOfRange, "diagonal %d not in [0, %d]", s, n+m-2)
	}

	return nil
}

// ValidateIndexSink checks that idx is nil (no index requested) or as long as the result.
//
// Complexity: O(1).
func ValidateIndexSink(idx []int, resultSize int) error {
	if idx != nil && len(idx) != resultSize {
		return errors.Wrapf(ErrIndexSinkLength, "len(idx)=%d, result size %d", len(idx), resultSize)
	}

	return nil
}

// ValidateConvolution runs every check a convolution entry point needs, in
// the order ValidatePair → ValidateResultSize → ValidateIndexSink.
func ValidateConvolution[T Scalar](a, b []T, resultSize int, idx []int) error {
	if err := ValidatePair(a, b); err != nil {
		return err
	}
	if err := ValidateResultSize(len(a), len(b), resultSize); err != nil {
		return err
	}

	return ValidateIndexSink(idx, resultSize)
}
