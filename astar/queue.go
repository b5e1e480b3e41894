package astar

import (
	"container/heap"

	"github.com/katalvlaran/pitchers/pitcher"
)

// Compile time check to ensure stateQueue satisfies the heap interface.
var _ heap.Interface = (*stateQueue)(nil)

// queueItem pairs a state with its priority (cost + heuristic).
type queueItem struct {
	priority int
	state    pitcher.State
}

// stateQueue is a min-heap of queueItem ordered by (priority, state).
// Equal priorities fall back to lexicographic state order, so the pop
// sequence is deterministic. Stale entries stay in the heap and are
// filtered by the caller.
type stateQueue []queueItem

// Len returns the number of items in the heap.
func (q stateQueue) Len() int { return len(q) }

// Less orders by priority, then by state.
func (q stateQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}

	return q[i].state.Less(q[j].state)
}

// Swap swaps two elements in the heap.
func (q stateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a queueItem.
func (q *stateQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *stateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = queueItem{} // drop the state reference
	*q = old[:n-1]

	return item
}
