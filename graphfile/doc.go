// Package graphfile reads and writes star maps.
//
// Text format (line oriented, whitespace trimmed, '#' starts a comment):
//
//	# Cosmic Logistics - Star Graph File
//	[PLANETS]
//	Terra
//	Alpha Centauri
//
//	[EDGES]
//	# from to distance risk
//	Terra Alpha Centauri 437.00 0.1
//
// Planet names may contain spaces. On an edge line the last two tokens are
// distance and risk; the leading tokens are split into source and
// destination names by halves: the first len/2 tokens are the source. Lines
// whose halves do not both name known planets are skipped, so lanes between
// names of unequal word counts may not survive a save and load.
//
// WriteDOT renders a map for Graphviz, optionally highlighting a route.
package graphfile
