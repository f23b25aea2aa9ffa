// SPDX-License-Identifier: MIT
// Package: starlane/builder
//
// id_fn.go - naming schemes for generated planets.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// NameFn generates a planet name from its zero-based index.
// It must be pure: the same idx always yields the same name.
type NameFn func(idx int) string

// DefaultNameFn returns "Planet_<idx>", e.g. 0→"Planet_0".
func DefaultNameFn(idx int) string {
	return DefaultNamePrefix + strconv.Itoa(idx)
}

// PrefixNameFn returns prefix + decimal index, e.g. "Sector-7".
func PrefixNameFn(prefix string) NameFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnNameFn returns the spreadsheet-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnNameFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// NameScheme resolves a scheme name ("planet", "excel", or "prefix:<p>")
// to a NameFn. Unknown names return an error.
func NameScheme(name string) (NameFn, error) {
	if prefix, ok := strings.CutPrefix(name, "prefix:"); ok && prefix != "" {
		return PrefixNameFn(prefix), nil
	}
	switch name {
	case "", "planet":
		return DefaultNameFn, nil
	case "excel":
		return ExcelColumnNameFn, nil
	default:
		return nil, fmt.Errorf("builder: unknown name scheme %q", name)
	}
}
