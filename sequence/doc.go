// Package sequence provides Array, a generic growable sequence container.
//
// Array keeps its logical size separate from its allocated capacity:
//
//   - Append is amortized O(1); when full, capacity doubles (minimum 1).
//   - Prepend, InsertAt and RemoveAt shift elements and cost O(n).
//   - Get, Set and At are O(1) and bounds-checked.
//   - Clear drops the logical size to zero but keeps the storage for reuse.
//
// Every out-of-range index, and First/Last on an empty Array, returns an
// error wrapping ErrIndexOutOfRange; nothing in this package panics.
//
// Array is the storage layer for pqueue.Queue and for the per-planet
// outgoing edge lists of core.Graph. It is not safe for concurrent use.
package sequence
