// SPDX-License-Identifier: MIT

package frontier

import (
	"math"

	"github.com/cockroachdb/errors"
)

// DefaultFallbackRatio is the queue-to-open ratio above which the search
// hands the remaining slots to the per-diagonal filler. The value was tuned
// empirically; override it per call with WithFallbackRatio.
const DefaultFallbackRatio = 0.08

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("frontier: invalid option supplied")

// Cell is a lattice position in rank coordinates.
//
// I and J are ranks into the sorted views of A and B; K is the output slot
// (the diagonal) they resolve: K = origA(I) + origB(J).
type Cell struct {
	I, J int
	K    int
}

// Stats counts what one search did. Pass a pointer with WithStats; the
// struct is reset at the start of every call.
type Stats struct {
	Pops          int  // cells popped from the queue
	Pushes        int  // cells pushed, the seed included
	Skips         int  // lattice positions passed over by skip-ahead scans
	Filled        int  // slots resolved by the frontier itself
	MaxQueue      int  // largest queue length observed
	FallbackSlots int  // slots resolved by the fallback filler
	FellBack      bool // whether the fallback fired
}

// Option configures a search via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds the tunables and hooks of one search.
type Options struct {
	// FallbackRatio triggers the fallback once queue length > FallbackRatio·open.
	// Must be ≥ 0; +Inf disables the fallback.
	FallbackRatio float64

	// OnPop is called for every popped cell, before its slot is resolved.
	OnPop func(c Cell)

	// OnFallback is called once, when the fallback fires, with the number of
	// unresolved slots and the queue length at that moment.
	OnFallback func(open, queued int)

	// Stats, when non-nil, receives the counters of the call.
	Stats *Stats

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - FallbackRatio: DefaultFallbackRatio
//   - no-op hooks
//   - no stats sink
func DefaultOptions() Options {
	return Options{
		FallbackRatio: DefaultFallbackRatio,
		OnPop:         func(Cell) {},
		OnFallback:    func(int, int) {},
		Stats:         nil,
		err:           nil,
	}
}

// WithFallbackRatio sets the fallback trigger ratio.
//
//	r ≥ 0:       fallback once queue length > r·open
//	r == +Inf:   never fall back
//	r < 0, NaN:  invalid option → ErrOptionViolation
func WithFallbackRatio(r float64) Option {
	return func(o *Options) {
		if math.IsNaN(r) || r < 0 {
			if o.err == nil {
				o.err = errors.Wrapf(ErrOptionViolation, "FallbackRatio must be ≥ 0 (%v)", r)
			}
			return
		}
		o.FallbackRatio = r
	}
}

// WithOnPop registers a callback run on every pop.
func WithOnPop(fn func(c Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithOnFallback registers a callback run when the fallback fires.
func WithOnFallback(fn func(open, queued int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFallback = fn
		}
	}
}

// WithStats makes the search write its counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// Err returns the first violation recorded while applying options, or nil.
// Wrappers that forward options (minconv) use it to validate early.
func (o Options) Err() error { return o.err }
