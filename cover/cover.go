// SPDX-License-Identifier: MIT

// Package cover tracks which rank rows and columns of an n×m lattice are
// claimed by cells waiting in a frontier queue.
//
// A cell (i, j) claims row i and column j when it is enqueued and releases
// both when it is popped. TryClaim only succeeds on a free row and column, so
// every counter stays 0 or 1; Release reports an underflow instead of hiding it.
//
// A Tracker belongs to a single convolution call and is not safe for
// concurrent use.
package cover

import "github.com/cockroachdb/errors"

// Tracker holds per-row and per-column claim counters.
type Tracker struct {
	rows []uint8
	cols []uint8
}

// New returns a Tracker for an n×m lattice with every row and column free.
func New(n, m int) *Tracker {
	return &Tracker{
		rows: make([]uint8, n),
		cols: make([]uint8, m),
	}
}

// Rows returns the number of rows tracked.
func (t *Tracker) Rows() int { return len(t.rows) }

// Cols returns the number of columns tracked.
func (t *Tracker) Cols() int { return len(t.cols) }

// RowFree reports whether no pending cell claims row i.
func (t *Tracker) RowFree(i int) bool { return t.rows[i] == 0 }

// ColFree reports whether no pending cell claims column j.
func (t *Tracker) ColFree(j int) bool { return t.cols[j] == 0 }

// Free reports whether both row i and column j are unclaimed.
func (t *Tracker) Free(i, j int) bool { return t.rows[i] == 0 && t.cols[j] == 0 }

// RowClaims returns the counter of row i.
func (t *Tracker) RowClaims(i int) int { return int(t.rows[i]) }

// ColClaims returns the counter of column j.
func (t *Tracker) ColClaims(j int) int { return int(t.cols[j]) }

// TryClaim claims row i and column j if both are free and reports whether it did.
func (t *Tracker) TryClaim(i, j int) bool {
	if !t.Free(i, j) {
		return false
	}
	t.rows[i]++
	t.cols[j]++

	return true
}

// Release decrements row i and column j.
func (t *Tracker) Release(i, j int) error {
	if t.rows[i] == 0 || t.cols[j] == 0 {
		return errors.AssertionFailedf("cover: release of unclaimed cell (%d,%d)", i, j)
	}
	t.rows[i]--
	t.cols[j]--

	return nil
}
