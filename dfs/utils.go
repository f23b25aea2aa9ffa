// SPDX-License-Identifier: MIT
//
// File: utils.go
// Role: Slice helpers and Booth's minimal-rotation algorithm.

package dfs

import "golang.org/x/exp/constraints"

// IndexOf returns the first index of val in s, or -1.
func IndexOf[T comparable](s []T, val T) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Compare orders slices lexicographically; a proper prefix sorts first.
// Returns -1, 0 or +1.
func Compare[T constraints.Ordered](a, b []T) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// MinimalRotation returns the lexicographically smallest rotation of s as a
// new slice, using Booth's algorithm.
//
// Complexity: O(n).
func MinimalRotation[T constraints.Ordered](s []T) []T {
	n := len(s)
	if n == 0 {
		return []T{}
	}
	doubled := make([]T, 0, 2*n)
	doubled = append(append(doubled, s...), s...)

	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]T, n)
	copy(res, doubled[k:k+n])

	return res
}
