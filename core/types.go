// SPDX-License-Identifier: MIT

package core

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// MinSequenceLen is the shortest sequence accepted by any convolution routine.
const MinSequenceLen = 2

// Scalar is the element type of a convolution input: totally ordered and
// closed under addition. Floating-point values must not be NaN.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Sentinel errors shared by every package of the module.
var (
	// ErrSequenceTooShort indicates that A or B holds fewer than MinSequenceLen elements.
	ErrSequenceTooShort = errors.New("core: sequence must hold at least 2 elements")

	// ErrResultSizeOutOfRange indicates resultSize ∉ [1, len(A)+len(B)-1].
	ErrResultSizeOutOfRange = errors.New("core: result size out of range")

	// ErrDiagonalOutOfRange indicates a diagonal index s ∉ [0, len(A)+len(B)-2].
	ErrDiagonalOutOfRange = errors.New("core: diagonal index out of range")

	// ErrIndexSinkLength indicates a non-nil index sink whose length differs from the result.
	ErrIndexSinkLength = errors.New("core: index sink length must match result length")

	// ErrNaN indicates a NaN element; NaN has no place in a total order.
	ErrNaN = errors.New("core: NaN element in sequence")

	// ErrIndeterminateSum indicates that A and B hold infinities of opposite
	// sign, so some pairwise sum is NaN.
	ErrIndeterminateSum = errors.New("core: +Inf and -Inf across sequences")
)
