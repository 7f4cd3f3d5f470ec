// Package pq provides the max-priority queue of hypergraph nodes shared by
// the coarsening scheduler and the FM refiner.
//
// Entries are (node, key) pairs ordered by key descending; equal keys are
// ordered by node id ascending, so the lower NodeID wins a tie and runs are
// reproducible. The queue does not deduplicate: callers use the lazy
// decrease-key strategy and discard stale entries when they are popped.
//
// Complexity: Push and Pop are O(log n).
package pq

import (
	"container/heap"

	"github.com/katalvlaran/hypart/hypergraph"
)

// Key is the priority type of a Queue.
type Key interface {
	~int64 | ~float64
}

// Queue is a max-heap of (node, key) entries.
type Queue[K Key] struct {
	h entries[K]
}

// New returns an empty queue with room for capacity entries.
func New[K Key](capacity int) *Queue[K] {
	return &Queue[K]{h: make(entries[K], 0, capacity)}
}

// Push inserts (u, key).
func (q *Queue[K]) Push(u hypergraph.NodeID, key K) {
	heap.Push(&q.h, entry[K]{node: u, key: key})
}

// Pop removes and returns the entry with the highest key. ok is false on an
// empty queue.
func (q *Queue[K]) Pop() (u hypergraph.NodeID, key K, ok bool) {
	if len(q.h) == 0 {
		return 0, 0, false
	}
	e := heap.Pop(&q.h).(entry[K])
	return e.node, e.key, true
}

// Peek returns the entry Pop would return without removing it.
func (q *Queue[K]) Peek() (u hypergraph.NodeID, key K, ok bool) {
	if len(q.h) == 0 {
		return 0, 0, false
	}
	return q.h[0].node, q.h[0].key, true
}

// Len returns the number of entries, stale ones included.
func (q *Queue[K]) Len() int { return len(q.h) }

// Clear drops every entry, keeping the capacity.
func (q *Queue[K]) Clear() { q.h = q.h[:0] }

type entry[K Key] struct {
	node hypergraph.NodeID
	key  K
}

// entries implements heap.Interface.
type entries[K Key] []entry[K]

func (h entries[K]) Len() int { return len(h) }

func (h entries[K]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key > h[j].key
	}
	return h[i].node < h[j].node
}

func (h entries[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries[K]) Push(x any) { *h = append(*h, x.(entry[K])) }

func (h *entries[K]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
