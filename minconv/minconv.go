// SPDX-License-Identifier: MIT

package minconv

import (
	"github.com/katalvlaran/tropical/core"
	"github.com/katalvlaran/tropical/frontier"
	"github.com/katalvlaran/tropical/minsum"
	"github.com/katalvlaran/tropical/naive"
)

// MinConv returns the first resultSize slots of the min-plus convolution of a and b.
//
// Errors: see MinConvInto.
func MinConv[T core.Scalar](a, b []T, resultSize int, opts ...Option) ([]T, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = core.ValidateConvolution(a, b, resultSize, nil); err != nil {
		return nil, err
	}
	dst := make([]T, resultSize)
	if err = dispatch(cfg, dst, nil, a, b); err != nil {
		return nil, err
	}

	return dst, nil
}

// MinConvIndex is MinConv plus, for every slot k, the A-index i of a
// minimizing pair (i, k-i).
//
// Errors: see MinConvInto.
func MinConvIndex[T core.Scalar](a, b []T, resultSize int, opts ...Option) ([]T, []int, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if err = core.ValidateConvolution(a, b, resultSize, nil); err != nil {
		return nil, nil, err
	}
	dst := make([]T, resultSize)
	idx := make([]int, resultSize)
	if err = dispatch(cfg, dst, idx, a, b); err != nil {
		return nil, nil, err
	}

	return dst, idx, nil
}

// MinConvInto writes the min-plus convolution of a and b into dst
// (len(dst) is the result size) and, when idx is non-nil, the minimizing
// A-index of every slot into idx.
//
// Routing: Options.Choose(len(dst)), i.e. the naive loop below Threshold
// and the frontier search from it on, unless WithAlgorithm forces one. Both
// produce the same values; witnesses may differ on ties (the naive loop
// returns the smallest minimizing i).
//
// Errors:
//   - ErrOptionViolation for invalid options
//   - core.ErrSequenceTooShort, core.ErrNaN, core.ErrIndeterminateSum
//   - core.ErrResultSizeOutOfRange, core.ErrIndexSinkLength
func MinConvInto[T core.Scalar](dst []T, idx []int, a, b []T, opts ...Option) error {
	cfg, err := buildOptions(opts)
	if err != nil {
		return err
	}

	return dispatch(cfg, dst, idx, a, b)
}

// dispatch runs the routine cfg selects for len(dst).
func dispatch[T core.Scalar](cfg Options, dst []T, idx []int, a, b []T) error {
	if cfg.Choose(len(dst)) == Naive {
		return naive.ConvolveInto(dst, idx, a, b)
	}
	logger := cfg.Logger

	return frontier.ConvolveInto(dst, idx, a, b,
		frontier.WithFallbackRatio(cfg.FallbackRatio),
		frontier.WithOnFallback(func(open, queued int) {
			logger.Infof("minconv: frontier fallback with %d open slots and %d queued cells (n=%d m=%d size=%d)",
				open, queued, len(a), len(b), len(dst))
		}),
	)
}

// MinSum returns min over i+j=s of a[i]+b[j].
//
// Errors: core.ErrSequenceTooShort, core.ErrNaN, core.ErrIndeterminateSum,
// core.ErrDiagonalOutOfRange.
func MinSum[T core.Scalar](a, b []T, s int) (T, error) {
	return minsum.MinSum(a, b, s)
}

// ArgMinSum returns min over i+j=s of a[i]+b[j] and the pair (i, j)
// realizing it; ties return the smallest i.
//
// Errors: as MinSum.
func ArgMinSum[T core.Scalar](a, b []T, s int) (value T, i, j int, err error) {
	return minsum.ArgMinSum(a, b, s)
}
