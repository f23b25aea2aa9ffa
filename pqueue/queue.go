// SPDX-License-Identifier: MIT
//
// File: queue.go
// Role: Binary heap priority queue composed over sequence.Array.
// Policy:
//   - The backing Array is a private field; only queue semantics are exported.
//   - The comparator decides which priority is "better"; default is ascending.
//   - Equal priorities come out in no guaranteed order (the heap is not stable).

package pqueue

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/starlane/sequence"
)

// ErrEmpty is returned by Dequeue, Peek and PeekPriority on an empty queue.
// It wraps sequence.ErrIndexOutOfRange: an empty queue is an empty container.
var ErrEmpty = fmt.Errorf("pqueue: queue is empty: %w", sequence.ErrIndexOutOfRange)

// Less reports whether priority a must be dequeued before priority b.
type Less[K any] func(a, b K) bool

// entry pairs an opaque item with its priority key.
type entry[T, K any] struct {
	item     T
	priority K
}

// Queue is a binary heap of (item, priority) entries stored in array form.
//
// Invariant: for every non-root index i, less(priority(i), priority(parent(i)))
// is false, i.e. no child is better than its parent.
type Queue[T, K any] struct {
	heap *sequence.Array[entry[T, K]]
	less Less[K]
}

// New returns a min-heap: the smallest priority is dequeued first.
func New[T any, K constraints.Ordered]() *Queue[T, K] {
	return NewWithComparator[T, K](func(a, b K) bool { return a < b })
}

// NewWithComparator returns a queue ordered by less.
// Panics on a nil comparator, which is a programming error.
func NewWithComparator[T, K any](less Less[K]) *Queue[T, K] {
	if less == nil {
		panic("pqueue: NewWithComparator(nil)")
	}

	return &Queue[T, K]{
		heap: sequence.New[entry[T, K]](),
		less: less,
	}
}

// Enqueue appends (item, priority) and sifts it up until its parent is not worse.
// Complexity: O(log n) amortized.
func (q *Queue[T, K]) Enqueue(item T, priority K) {
	q.heap.Append(entry[T, K]{item: item, priority: priority})
	q.siftUp(q.heap.Size() - 1)
}

// Dequeue removes and returns the item with the best priority.
//
// The root is captured, the last entry moves into the root slot, the heap
// shrinks by one, and the new root sifts down.
// Complexity: O(log n).
func (q *Queue[T, K]) Dequeue() (T, error) {
	root, err := q.heap.First()
	if err != nil {
		var zero T
		return zero, ErrEmpty
	}
	last := q.heap.Size() - 1
	tail := q.at(last)
	_ = q.heap.RemoveAt(last)
	if !q.heap.IsEmpty() {
		_ = q.heap.Set(0, tail)
		q.siftDown(0)
	}

	return root.item, nil
}

// Peek returns the best item without removing it.
func (q *Queue[T, K]) Peek() (T, error) {
	root, err := q.heap.First()
	if err != nil {
		var zero T
		return zero, ErrEmpty
	}

	return root.item, nil
}

// PeekPriority returns the best priority without removing its entry.
func (q *Queue[T, K]) PeekPriority() (K, error) {
	root, err := q.heap.First()
	if err != nil {
		var zero K
		return zero, ErrEmpty
	}

	return root.priority, nil
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T, K]) IsEmpty() bool { return q.heap.IsEmpty() }

// Size returns the number of entries, stale duplicates included.
func (q *Queue[T, K]) Size() int { return q.heap.Size() }

// Clear drops all entries and keeps the allocated storage.
func (q *Queue[T, K]) Clear() { q.heap.Clear() }

// parent, left and right implement 0-based array heap arithmetic.
func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// siftUp swaps entry i with its parent while the parent is worse.
func (q *Queue[T, K]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !q.less(q.at(i).priority, q.at(p).priority) {
			return
		}
		q.swap(i, p)
		i = p
	}
}

// siftDown swaps entry i with its better child until no child is better.
func (q *Queue[T, K]) siftDown(i int) {
	n := q.heap.Size()
	for {
		best := i
		if l := left(i); l < n && q.less(q.at(l).priority, q.at(best).priority) {
			best = l
		}
		if r := right(i); r < n && q.less(q.at(r).priority, q.at(best).priority) {
			best = r
		}
		if best == i {
			return
		}
		q.swap(i, best)
		i = best
	}
}

// at reads entry i; callers guarantee 0 ≤ i < Size().
func (q *Queue[T, K]) at(i int) entry[T, K] {
	e, _ := q.heap.Get(i)
	return e
}

func (q *Queue[T, K]) swap(i, j int) {
	pi, _ := q.heap.At(i)
	pj, _ := q.heap.At(j)
	*pi, *pj = *pj, *pi
}
