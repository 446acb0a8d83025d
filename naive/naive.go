package naive

import "github.com/katalvlaran/tropical/core"

// Convolve returns the first resultSize slots of the min-plus convolution of a and b.
//
// Errors: see ConvolveInto.
func Convolve[T core.Scalar](a, b []T, resultSize int) ([]T, error) {
	if err := core.ValidateConvolution(a, b, resultSize, nil); err != nil {
		return nil, err
	}
	dst := make([]T, resultSize)
	fill(dst, nil, a, b)

	return dst, nil
}

// ConvolveIndex is Convolve plus, for every slot k, the A-index of a minimizing pair.
//
// Errors: see ConvolveInto.
func ConvolveIndex[T core.Scalar](a, b []T, resultSize int) ([]T, []int, error) {
	if err := core.ValidateConvolution(a, b, resultSize, nil); err != nil {
		return nil, nil, err
	}
	dst := make([]T, resultSize)
	idx := make([]int, resultSize)
	fill(dst, idx, a, b)

	return dst, idx, nil
}

// ConvolveInto writes the min-plus convolution of a and b into dst; len(dst)
// is the result size. When idx is non-nil it receives, for every slot k, the
// A-index i of the minimizing pair (i, k-i); ties keep the smallest i.
//
// Algorithm Outline:
//  1. Validate a, b, len(dst) and idx.
//  2. For i in [0, min(resultSize, n)):
//     For j in [0, min(m, resultSize-i)):
//     k = i+j; if slot k is empty or a[i]+b[j] < dst[k], store it (and i).
//
// Scanning i ascending with a strict comparison is what makes the smallest
// index win a tie.
//
// Errors:
//   - core.ErrSequenceTooShort, core.ErrNaN, core.ErrIndeterminateSum
//   - core.ErrResultSizeOutOfRange if len(dst) ∉ [1, n+m-1]
//   - core.ErrIndexSinkLength if idx != nil and len(idx) != len(dst)
//
// Complexity: O(n·min(m, resultSize)) time, O(resultSize) extra space.
func ConvolveInto[T core.Scalar](dst []T, idx []int, a, b []T) error {
	if err := core.ValidateConvolution(a, b, len(dst), idx); err != nil {
		return err
	}
	fill(dst, idx, a, b)

	return nil
}

// fill is the unchecked double loop behind ConvolveInto.
func fill[T core.Scalar](dst []T, idx []int, a, b []T) {
	resultSize := len(dst)
	filled := make([]bool, resultSize)
	rows := min(resultSize, len(a))
	var (
		i, j, k, cols int
		cur           T
	)
	for i = 0; i < rows; i++ {
		cols = min(len(b), resultSize-i)
		for j = 0; j < cols; j++ {
			k = i + j
			cur = a[i] + b[j]
			if filled[k] && !(cur < dst[k]) {
				continue
			}
			dst[k] = cur
			filled[k] = true
			if idx != nil {
				idx[k] = i
			}
		}
	}
}
