// Package pqueue implements a monomorphic min-heap priority queue of
// (key int64, value int) pairs, used by the spath package as the inner
// priority queue of Dijkstra's algorithm.
//
// This is the "deep template generics over heap/value types" concern
// SPEC_FULL.md's design notes call out as unneeded: per the teacher's own
// dijkstra.nodePQ, a single monomorphic heap over (int64,int) suffices, so
// it is extracted here as its own reusable package (component B) rather
// than templated over key/value types.
//
// Duplicate values are allowed — the lazy-decrease-key pattern pushes a
// fresh entry whenever a shorter distance is found instead of mutating an
// existing one; callers (spath) filter stale entries on Pop by comparing
// against their own authoritative distance array.
package pqueue

import "container/heap"

// item is one (key,value) pair stored in the heap.
type item struct {
	key   int64
	value int
}

// innerHeap is the container/heap.Interface implementation, ordered by key ascending.
type innerHeap []item

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(item)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	last := old[n-1]
	*h = old[:n-1]

	return last
}

// Queue is a min-heap of (key,value) pairs.
type Queue struct {
	h innerHeap
}

// New returns an empty Queue, optionally pre-sizing its backing array.
// Complexity: O(capHint).
func New(capHint int) *Queue {
	q := &Queue{h: make(innerHeap, 0, capHint)}
	heap.Init(&q.h)

	return q
}

// Push inserts (key,value). Duplicate values are permitted.
// Complexity: O(log n).
func (q *Queue) Push(key int64, value int) {
	heap.Push(&q.h, item{key: key, value: value})
}

// PopMin removes and returns the entry with the smallest key.
// ok is false iff the queue was empty.
// Complexity: O(log n).
func (q *Queue) PopMin() (key int64, value int, ok bool) {
	if q.h.Len() == 0 {
		return 0, 0, false
	}
	it := heap.Pop(&q.h).(item)

	return it.key, it.value, true
}

// Len returns the number of entries currently in the queue (including any
// stale lazy-decrease-key duplicates not yet popped).
func (q *Queue) Len() int { return q.h.Len() }

// IsEmpty reports whether the queue has no entries.
func (q *Queue) IsEmpty() bool { return q.h.Len() == 0 }
