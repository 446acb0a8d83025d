// SPDX-License-Identifier: MIT

package minconv

import (
	"fmt"
	"math"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/tropical/core"
	"github.com/katalvlaran/tropical/frontier"
)

// DefaultThreshold is the result size from which Auto routes to the frontier
// search. Like the fallback ratio it was tuned empirically and is meant to be
// re-measured per platform (see `minconv bench`).
const DefaultThreshold = 500

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("minconv: invalid option supplied")

// Algorithm selects the convolution routine.
type Algorithm int

const (
	// Auto picks Naive below Options.Threshold and Frontier otherwise.
	Auto Algorithm = iota
	// Naive forces the double loop.
	Naive
	// Frontier forces the frontier search.
	Frontier
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Naive:
		return "naive"
	case Frontier:
		return "frontier"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Option configures a call via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the call is made.
type Option func(*Options)

// Options holds the tunables of the entry points.
type Options struct {
	// Threshold: result sizes below it use the naive loop under Auto.
	// 0 sends every call to the frontier search.
	Threshold int

	// FallbackRatio is forwarded to frontier.WithFallbackRatio.
	FallbackRatio float64

	// Algorithm overrides the size-based choice.
	Algorithm Algorithm

	// Logger receives frontier fallbacks (Infof) and batch job failures (Errorf).
	Logger core.Logger

	// Workers bounds the goroutines of Batch.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Threshold:     DefaultThreshold
//   - FallbackRatio: frontier.DefaultFallbackRatio
//   - Algorithm:     Auto
//   - Logger:        core.NoopLogger
//   - Workers:       runtime.GOMAXPROCS(0)
func DefaultOptions() Options {
	return Options{
		Threshold:     DefaultThreshold,
		FallbackRatio: frontier.DefaultFallbackRatio,
		Algorithm:     Auto,
		Logger:        core.NoopLogger{},
		Workers:       runtime.GOMAXPROCS(0),
		err:           nil,
	}
}

// record keeps the first violation.
func (o *Options) record(format string, args ...interface{}) {
	if o.err == nil {
		o.err = errors.Wrapf(ErrOptionViolation, format, args...)
	}
}

// WithThreshold sets the naive/frontier switch point.
//
//	n ≥ 0: result sizes < n go to the naive loop
//	n < 0: invalid option → ErrOptionViolation
func WithThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.record("Threshold cannot be negative (%d)", n)
			return
		}
		o.Threshold = n
	}
}

// WithFallbackRatio sets the frontier fallback trigger; r ≥ 0, +Inf disables it.
func WithFallbackRatio(r float64) Option {
	return func(o *Options) {
		if math.IsNaN(r) || r < 0 {
			o.record("FallbackRatio must be ≥ 0 (%v)", r)
			return
		}
		o.FallbackRatio = r
	}
}

// WithAlgorithm forces a routine instead of the size-based choice.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		switch a {
		case Auto, Naive, Frontier:
			o.Algorithm = a
		default:
			o.record("unknown %s", a)
		}
	}
}

// WithLogger routes diagnostics to l. A nil l is ignored.
func WithLogger(l core.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers bounds the concurrency of Batch; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.record("Workers must be ≥ 1 (%d)", n)
			return
		}
		o.Workers = n
	}
}

// Choose returns the routine a call with the given result size runs.
func (o Options) Choose(resultSize int) Algorithm {
	if o.Algorithm != Auto {
		return o.Algorithm
	}
	if resultSize < o.Threshold {
		return Naive
	}

	return Frontier
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// Resolve applies opts over DefaultOptions and reports the first violation.
// Front ends use it to validate flags once before issuing many calls.
func Resolve(opts ...Option) (Options, error) {
	return buildOptions(opts)
}
