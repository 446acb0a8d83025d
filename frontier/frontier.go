// SPDX-License-Identifier: MIT

package frontier

import (
	"container/heap"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/tropical/core"
	"github.com/katalvlaran/tropical/cover"
	"github.com/katalvlaran/tropical/internal/invariants"
	"github.com/katalvlaran/tropical/rank"
)

// Convolve returns the first resultSize slots of the min-plus convolution
// of a and b, computed by the frontier search.
//
// Errors: see ConvolveInto.
func Convolve[T core.Scalar](a, b []T, resultSize int, opts ...Option) ([]T, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = core.ValidateConvolution(a, b, resultSize, nil); err != nil {
		return nil, err
	}
	dst := make([]T, resultSize)

	return dst, run(dst, nil, a, b, cfg)
}

// ConvolveIndex is Convolve plus, for every slot k, the A-index of a
// minimizing pair.
//
// Errors: see ConvolveInto.
func ConvolveIndex[T core.Scalar](a, b []T, resultSize int, opts ...Option) ([]T, []int, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if err = core.ValidateConvolution(a, b, resultSize, nil); err != nil {
		return nil, nil, err
	}
	dst := make([]T, resultSize)
	idx := make([]int, resultSize)
	if err = run(dst, idx, a, b, cfg); err != nil {
		return nil, nil, err
	}

	return dst, idx, nil
}

// ConvolveInto writes the min-plus convolution of a and b into dst; len(dst)
// is the result size. When idx is non-nil it receives, for every slot k, the
// A-index i of a minimizing pair (i, k-i).
//
// Algorithm Outline:
//  1. Rank a and b ascending. Cell (i, j) of the rank lattice has value
//     viewA[i]+viewB[j], non-decreasing along rows and columns, and
//     resolves slot viewA[i].Index + viewB[j].Index.
//  2. Seed the queue with (0, 0). While slots remain open:
//     a. if queue length > FallbackRatio·open, fill the rest per diagonal;
//     b. pop the smallest cell and release its row and column;
//     c. the first pop that lands on an open slot k < len(dst) is its minimum;
//     d. push the next row and column cells, or skip ahead along the free
//     line to the first cell whose slot is still open.
//
// A row or column is held by at most one queued cell. Every cell on an open
// diagonal stays dominated (row and column rank both ≥) by some queued cell,
// so no smaller sum for an open slot can surface after that slot is filled.
//
// Ties: the resolving cell is the first popped under the (value, i, j) heap
// order, so the index is deterministic but need not be the smallest
// minimizing i.
//
// Errors:
//   - ErrOptionViolation for invalid options
//   - core.ErrSequenceTooShort, core.ErrNaN, core.ErrIndeterminateSum
//   - core.ErrResultSizeOutOfRange if len(dst) ∉ [1, n+m-1]
//   - core.ErrIndexSinkLength if idx != nil and len(idx) != len(dst)
//   - an assertion failure (errors.HasAssertionFailure) if the queue drains
//     while slots are open, which is a bug
//
// Complexity:
//   - Time:  O((n+m) log(n+m) + P·log Q + F·W) for P pops, Q the largest queue,
//     F fallback slots and W the mean diagonal window. O(n·m·log) worst case.
//   - Space: O(n + m + len(dst)).
func ConvolveInto[T core.Scalar](dst []T, idx []int, a, b []T, opts ...Option) error {
	cfg, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if err = core.ValidateConvolution(a, b, len(dst), idx); err != nil {
		return err
	}

	return run(dst, idx, a, b, cfg)
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

// run executes one search on validated inputs.
func run[T core.Scalar](dst []T, idx []int, a, b []T, cfg Options) error {
	r := &runner[T]{
		a:       a,
		b:       b,
		va:      rank.NewView(a),
		vb:      rank.NewView(b),
		dst:     dst,
		idx:     idx,
		filled:  make([]bool, len(dst)),
		open:    len(dst),
		cov:     cover.New(len(a), len(b)),
		pq:      make(cellPQ[T], 0, min(len(a), len(b))),
		options: cfg,
	}
	r.init()
	err := r.process()
	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}

	return err
}

// runner holds the mutable state of a single search.
type runner[T core.Scalar] struct {
	a, b    []T          // original sequences, read by the fallback
	va, vb  rank.View[T] // ranked views; lattice rows index va, columns vb
	dst     []T          // output slots
	idx     []int        // optional witness sink
	filled  []bool       // filled[k] once dst[k] holds its minimum
	open    int          // number of unfilled slots
	cov     *cover.Tracker
	pq      cellPQ[T]
	options Options
	stats   Stats

	// last popped value, tracked for the monotone-pop self-check
	last   T
	popped bool
}

// init pushes the seed cell (0, 0).
func (r *runner[T]) init() {
	heap.Init(&r.pq)
	r.push(0, 0)
}

// process is the main loop. It returns nil once every slot is filled,
// either by pops or by the fallback.
func (r *runner[T]) process() error {
	var (
		item cellItem[T]
		k    int
		err  error
	)
	for r.open > 0 {
		// 1) Hand over to the per-diagonal filler once the queue is large
		//    relative to the work left.
		if float64(r.pq.Len()) > r.options.FallbackRatio*float64(r.open) {
			r.fallback()
			return nil
		}
		if r.pq.Len() == 0 {
			return errors.AssertionFailedf("frontier: queue drained with %d open slots", r.open)
		}

		// 2) Pop the minimum and release its row and column.
		item = heap.Pop(&r.pq).(cellItem[T])
		r.stats.Pops++
		if invariants.Enabled {
			if r.popped && item.value < r.last {
				return errors.AssertionFailedf("frontier: pop %v after %v", item.value, r.last)
			}
			r.last, r.popped = item.value, true
		}
		if err = r.cov.Release(item.i, item.j); err != nil {
			return err
		}

		// 3) Resolve its slot if still open.
		k = r.va[item.i].Index + r.vb[item.j].Index
		r.options.OnPop(Cell{I: item.i, J: item.j, K: k})
		if k < len(r.dst) && !r.filled[k] {
			r.dst[k] = item.value
			if r.idx != nil {
				r.idx[k] = r.va[item.i].Index
			}
			r.filled[k] = true
			r.open--
			r.stats.Filled++
			if r.open == 0 {
				break
			}
		}

		// 4) Move the frontier past (i, j).
		r.expand(item.i, item.j)
		if invariants.Enabled {
			if err = r.checkClaims(); err != nil {
				return err
			}
		}
	}

	return nil
}

// expand pushes successors of the popped cell (i, j).
//
// With both neighbours on a free row and column, both are pushed. Otherwise
// only the line that is still free is advanced: a claimed row below (or
// column to the right) belongs to a queued cell that already dominates the
// rest of that side.
func (r *runner[T]) expand(i, j int) {
	moreRows := i+1 < len(r.va)
	moreCols := j+1 < len(r.vb)
	switch {
	case moreRows && moreCols:
		switch {
		case r.cov.RowFree(i+1) && r.cov.ColFree(j) && r.cov.RowFree(i) && r.cov.ColFree(j+1):
			r.push(i+1, j)
			r.push(i, j+1)
		case r.cov.RowFree(i+1) && r.cov.ColFree(j):
			r.advanceRow(i, j)
		case r.cov.RowFree(i) && r.cov.ColFree(j+1):
			r.advanceCol(i, j)
		}
	case moreRows:
		r.advanceRow(i, j)
	case moreCols:
		r.advanceCol(i, j)
	}
}

// advanceRow walks column j downward from row i+1 and pushes the first cell
// whose slot is open. It stops at the first claimed row.
func (r *runner[T]) advanceRow(i, j int) {
	var row, k int
	for row = i + 1; row < len(r.va); row++ {
		if !r.cov.RowFree(row) {
			return
		}
		k = r.va[row].Index + r.vb[j].Index
		if k < len(r.dst) && !r.filled[k] {
			r.push(row, j)
			return
		}
		r.stats.Skips++
	}
}

// advanceCol walks row i rightward from column j+1 and pushes the first cell
// whose slot is open. It stops at the first claimed column.
func (r *runner[T]) advanceCol(i, j int) {
	var col, k int
	for col = j + 1; col < len(r.vb); col++ {
		if !r.cov.ColFree(col) {
			return
		}
		k = r.va[i].Index + r.vb[col].Index
		if k < len(r.dst) && !r.filled[k] {
			r.push(i, col)
			return
		}
		r.stats.Skips++
	}
}

// push claims (i, j) and queues it. A cell on a claimed row or column is dropped.
func (r *runner[T]) push(i, j int) {
	if !r.cov.TryClaim(i, j) {
		return
	}
	heap.Push(&r.pq, cellItem[T]{i: i, j: j, value: r.va[i].Value + r.vb[j].Value})
	r.stats.Pushes++
	r.stats.MaxQueue = max(r.stats.MaxQueue, r.pq.Len())
}

// checkClaims verifies that every queued cell holds exactly one row and one
// column claim and nothing else is claimed.
func (r *runner[T]) checkClaims() error {
	var rows, cols, x int
	for x = 0; x < r.cov.Rows(); x++ {
		rows += r.cov.RowClaims(x)
	}
	for x = 0; x < r.cov.Cols(); x++ {
		cols += r.cov.ColClaims(x)
	}
	if rows != r.pq.Len() || cols != r.pq.Len() {
		return errors.AssertionFailedf("frontier: %d row and %d column claims for %d queued cells",
			rows, cols, r.pq.Len())
	}
	for _, item := range r.pq {
		if r.cov.RowClaims(item.i) != 1 || r.cov.ColClaims(item.j) != 1 {
			return errors.AssertionFailedf("frontier: queued cell (%d,%d) not claimed once", item.i, item.j)
		}
	}

	return nil
}
