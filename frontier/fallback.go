// SPDX-License-Identifier: MIT

package frontier

import "github.com/katalvlaran/tropical/minsum"

// fallback resolves every open slot by a direct scan of its diagonal and
// closes the search. The queue is abandoned as is.
//
// Complexity: O(open · W), W the mean diagonal window.
func (r *runner[T]) fallback() {
	r.stats.FellBack = true
	r.options.OnFallback(r.open, r.pq.Len())

	var i, k int
	var v T
	for k = range r.filled {
		if r.filled[k] {
			continue
		}
		v, i = minsum.Scan(r.a, r.b, k)
		r.dst[k] = v
		if r.idx != nil {
			r.idx[k] = i
		}
		r.filled[k] = true
		r.stats.FallbackSlots++
	}
	r.open = 0
}
