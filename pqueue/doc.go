// Package pqueue implements a binary-heap priority queue of (item, priority)
// entries with a pluggable comparator.
//
// The queue composes a sequence.Array privately and exposes only queue
// operations: Enqueue, Dequeue, Peek, PeekPriority, IsEmpty, Size, Clear.
// None of the Array's own methods are reachable through a Queue.
//
// Heap layout (0-based):
//
//	parent(i) = (i-1)/2
//	left(i)   = 2i+1
//	right(i)  = 2i+2
//
// There is no decrease-key. Callers that need one (dijkstra) push a fresh
// entry on every improvement and discard stale entries when they surface.
//
// Complexity: Enqueue and Dequeue are O(log n); Peek, IsEmpty and Size are O(1).
package pqueue
