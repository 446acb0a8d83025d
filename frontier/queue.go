// SPDX-License-Identifier: MIT

package frontier

import "github.com/katalvlaran/tropical/core"

// cellItem is a queued lattice cell and its sum.
type cellItem[T core.Scalar] struct {
	i, j  int // ranks into the A and B views
	value T   // viewA[i].Value + viewB[j].Value
}

// cellPQ is a min-heap of cellItem ordered by (value, i, j).
// Breaking value ties by rank makes the pop sequence a function of the
// two ranked views alone.
type cellPQ[T core.Scalar] []cellItem[T]

// Len returns the number of queued cells.
func (pq cellPQ[T]) Len() int { return len(pq) }

// Less orders by value, then row rank, then column rank.
func (pq cellPQ[T]) Less(x, y int) bool {
	if pq[x].value != pq[y].value {
		return pq[x].value < pq[y].value
	}
	if pq[x].i != pq[y].i {
		return pq[x].i < pq[y].i
	}

	return pq[x].j < pq[y].j
}

// Swap swaps two cells.
func (pq cellPQ[T]) Swap(x, y int) { pq[x], pq[y] = pq[y], pq[x] }

// Push appends x; called by heap.Push.
func (pq *cellPQ[T]) Push(x any) { *pq = append(*pq, x.(cellItem[T])) }

// Pop removes the last cell; called by heap.Pop.
func (pq *cellPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
