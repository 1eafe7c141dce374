// Package index maps labels to physical positions along one axis of a frame.
//
// An Index is a sequence of (position, label) entries in source order. The
// alignment primitives built on it are the only relational machinery lvframe
// has: projection onto a label subset, a stable sort by label, the positional
// complement of a projection, and sorted set operations on label sequences.
//
// Complements are computed on PositionSet, a roaring-bitmap backed set of
// positions, so that excluding a large overlap from a large axis stays cheap.
//
// Everything in this package is pure: inputs are never modified and every
// result is a fresh slice.
package index
