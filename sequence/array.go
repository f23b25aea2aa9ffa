// SPDX-License-Identifier: MIT
//
// File: array.go
// Role: Growable, index-addressable sequence with explicit size/capacity bookkeeping.
// Policy:
//   - Logical size is tracked separately from allocated storage.
//   - Growth doubles capacity (minimum 1); shrinking never releases storage.
//   - Every index-taking method is bounds-checked and returns ErrIndexOutOfRange.

package sequence

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates an index outside [0, size) or access to an empty Array.
var ErrIndexOutOfRange = errors.New("sequence: index out of range")

// minGrowCapacity is the capacity allocated on the first growth of an empty Array.
const minGrowCapacity = 1

// Array is an ordered, index-addressable list of values of type T.
//
// Invariant: 0 ≤ size ≤ len(data); valid indices are [0, size).
// The zero value is an empty, ready-to-use Array.
type Array[T any] struct {
	data []T // allocated storage; len(data) is the capacity
	size int // number of live elements
}

// New returns an empty Array with no allocated storage.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewWithCapacity returns an empty Array with room for n elements.
// Negative n is treated as zero.
func NewWithCapacity[T any](n int) *Array[T] {
	if n < 0 {
		n = 0
	}

	return &Array[T]{data: make([]T, n)}
}

// FromSlice returns an Array holding a copy of xs, in order.
func FromSlice[T any](xs []T) *Array[T] {
	a := NewWithCapacity[T](len(xs))
	copy(a.data, xs)
	a.size = len(xs)

	return a
}

// Size returns the number of live elements. O(1).
func (a *Array[T]) Size() int { return a.size }

// Cap returns the allocated capacity. O(1).
func (a *Array[T]) Cap() int { return len(a.data) }

// IsEmpty reports whether the Array holds no elements. O(1).
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Get returns the element at index i.
// Complexity: O(1).
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return a.data[i], nil
}

// Set overwrites the element at index i.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.data[i] = v

	return nil
}

// At returns a pointer to the element at index i for in-place mutation.
// The pointer is invalidated by any operation that grows the Array.
// Complexity: O(1).
func (a *Array[T]) At(i int) (*T, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}

	return &a.data[i], nil
}

// First returns the element at index 0, or ErrIndexOutOfRange when empty.
func (a *Array[T]) First() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: first of empty array", ErrIndexOutOfRange)
	}

	return a.data[0], nil
}

// Last returns the element at index size-1, or ErrIndexOutOfRange when empty.
func (a *Array[T]) Last() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: last of empty array", ErrIndexOutOfRange)
	}

	return a.data[a.size-1], nil
}

// Append adds v at the end, doubling capacity when full.
// Complexity: amortized O(1).
func (a *Array[T]) Append(v T) {
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = v
	a.size++
}

// Prepend inserts v at index 0, shifting every element right.
// Complexity: O(n).
func (a *Array[T]) Prepend(v T) {
	// index 0 is always a valid insertion point
	_ = a.InsertAt(v, 0)
}

// InsertAt inserts v before the element at index i; i == Size() appends.
// Complexity: O(n).
func (a *Array[T]) InsertAt(v T, i int) error {
	if i < 0 || i > a.size {
		return fmt.Errorf("%w: insert at %d, size %d", ErrIndexOutOfRange, i, a.size)
	}
	if a.size == len(a.data) {
		a.grow()
	}
	copy(a.data[i+1:a.size+1], a.data[i:a.size])
	a.data[i] = v
	a.size++

	return nil
}

// RemoveAt deletes the element at index i, shifting the tail left.
// Complexity: O(n).
func (a *Array[T]) RemoveAt(i int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	copy(a.data[i:a.size-1], a.data[i+1:a.size])
	a.size--
	var zero T
	a.data[a.size] = zero // drop the stale reference in the vacated slot

	return nil
}

// Clear resets the logical size to zero and keeps the allocated storage.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.data[i] = zero
	}
	a.size = 0
}

// Values returns a copy of the live elements in order.
// Complexity: O(n).
func (a *Array[T]) Values() []T {
	out := make([]T, a.size)
	copy(out, a.data[:a.size])

	return out
}

// Each calls fn for every element in index order.
func (a *Array[T]) Each(fn func(i int, v T)) {
	for i := 0; i < a.size; i++ {
		fn(i, a.data[i])
	}
}

// Filter keeps only the elements for which keep returns true, preserving
// their relative order. Storage is reused. Returns the number removed.
// Complexity: O(n).
func (a *Array[T]) Filter(keep func(v T) bool) int {
	w := 0
	for r := 0; r < a.size; r++ {
		if keep(a.data[r]) {
			a.data[w] = a.data[r]
			w++
		}
	}
	removed := a.size - w
	var zero T
	for i := w; i < a.size; i++ {
		a.data[i] = zero
	}
	a.size = w

	return removed
}

// grow doubles the capacity (minimum minGrowCapacity) and copies live elements.
func (a *Array[T]) grow() {
	newCap := len(a.data) * 2
	if newCap < minGrowCapacity {
		newCap = minGrowCapacity
	}
	next := make([]T, newCap)
	copy(next, a.data[:a.size])
	a.data = next
}

// checkIndex validates 0 ≤ i < size.
func (a *Array[T]) checkIndex(i int) error {
	if i < 0 || i >= a.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, a.size)
	}

	return nil
}
