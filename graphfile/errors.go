// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for star-map file I/O.

package graphfile

import "errors"

var (
	// ErrIO indicates the file could not be opened or created. The wrapped
	// error carries the path and the OS error.
	ErrIO = errors.New("graphfile: i/o error")

	// ErrMalformedLine indicates an edge line whose distance or risk token
	// does not parse as a number.
	ErrMalformedLine = errors.New("graphfile: malformed line")

	// ErrDuplicatePlanet indicates a planet name listed twice in the file.
	ErrDuplicatePlanet = errors.New("graphfile: duplicate planet")
)
