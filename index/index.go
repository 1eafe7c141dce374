// SPDX-License-Identifier: MIT

// Package index - (position, label) entries and the alignment primitives.
//
// Determinism:
//   - Project and Complement keep position order; SortByLabel is stable.
//   - Set helpers (Intersect, Difference, Duplicates) return sorted unique labels.

package index

import (
	"cmp"
	"slices"
)

// Entry pairs a physical position on an axis with the label stored there.
type Entry[L cmp.Ordered] struct {
	Pos   int
	Label L
}

// Index is an ordered sequence of entries.
// Positions inside one Index are unique when it was produced by Build or by
// any transform of a built Index.
type Index[L cmp.Ordered] []Entry[L]

// Build returns one entry per label in original order: entry k is (k, labels[k]).
// Complexity: O(n).
func Build[L cmp.Ordered](labels []L) Index[L] {
	ix := make(Index[L], len(labels))
	for k, l := range labels {
		ix[k] = Entry[L]{Pos: k, Label: l}
	}

	return ix
}

// Len returns the number of entries.
func (ix Index[L]) Len() int { return len(ix) }

// Positions returns the entry positions in entry order.
func (ix Index[L]) Positions() []int {
	out := make([]int, len(ix))
	for k, e := range ix {
		out[k] = e.Pos
	}

	return out
}

// Labels returns the entry labels in entry order.
func (ix Index[L]) Labels() []L {
	out := make([]L, len(ix))
	for k, e := range ix {
		out[k] = e.Label
	}

	return out
}

// Project keeps the entries whose label is a member of subset, preserving
// entry order. Every occurrence of a member label is kept.
// Complexity: O(n + len(subset)).
func (ix Index[L]) Project(subset []L) Index[L] {
	member := make(map[L]struct{}, len(subset))
	for _, l := range subset {
		member[l] = struct{}{}
	}
	out := make(Index[L], 0, min(len(ix), len(subset)))
	for _, e := range ix {
		if _, ok := member[e.Label]; ok {
			out = append(out, e)
		}
	}

	return out
}

// SortByLabel returns the entries sorted ascending by label. The sort is
// stable: equal labels keep their relative entry order.
// Complexity: O(n log n).
func (ix Index[L]) SortByLabel() Index[L] {
	out := slices.Clone(ix)
	slices.SortStableFunc(out, func(a, b Entry[L]) int {
		return cmp.Compare(a.Label, b.Label)
	})

	return out
}

// Complement returns the entries of ix whose position does not occur in sub,
// ordered by ascending position.
// Implementation:
//   - Stage 1: positions of ix and of sub go into two PositionSets.
//   - Stage 2: AndNot, then walk the survivors in ascending order and map
//     each position back to its entry.
//
// Complexity: O(n + len(sub)) plus bitmap work.
func (ix Index[L]) Complement(sub Index[L]) Index[L] {
	byPos := make(map[int]Entry[L], len(ix))
	all := NewPositionSet()
	for _, e := range ix {
		byPos[e.Pos] = e
		all.Add(e.Pos)
	}
	all.AndNot(NewPositionSet(sub.Positions()...))

	out := make(Index[L], 0, all.Cardinality())
	for _, p := range all.Positions() {
		out = append(out, byPos[p])
	}

	return out
}

// Intersect returns the sorted unique labels present in both a and b.
// Complexity: O((n+m) log(n+m)).
func Intersect[L cmp.Ordered](a, b []L) []L {
	inB := make(map[L]struct{}, len(b))
	for _, l := range b {
		inB[l] = struct{}{}
	}
	out := make([]L, 0, min(len(a), len(b)))
	for _, l := range a {
		if _, ok := inB[l]; ok {
			out = append(out, l)
		}
	}

	return sortedUnique(out)
}

// Difference returns the sorted unique labels of a that are absent from b.
// Complexity: O((n+m) log n).
func Difference[L cmp.Ordered](a, b []L) []L {
	inB := make(map[L]struct{}, len(b))
	for _, l := range b {
		inB[l] = struct{}{}
	}
	out := make([]L, 0, len(a))
	for _, l := range a {
		if _, ok := inB[l]; !ok {
			out = append(out, l)
		}
	}

	return sortedUnique(out)
}

// Duplicates returns the sorted labels occurring more than once in labels.
// An empty result means the sequence is unique.
func Duplicates[L cmp.Ordered](labels []L) []L {
	seen := make(map[L]int, len(labels))
	var out []L
	for _, l := range labels {
		seen[l]++
		if seen[l] == 2 {
			out = append(out, l)
		}
	}
	slices.Sort(out)

	return out
}

// FirstPositions maps every label to the position of its first occurrence.
func FirstPositions[L cmp.Ordered](labels []L) map[L]int {
	out := make(map[L]int, len(labels))
	for k, l := range labels {
		if _, ok := out[l]; !ok {
			out[l] = k
		}
	}

	return out
}

// sortedUnique sorts s in place and drops adjacent duplicates.
func sortedUnique[L cmp.Ordered](s []L) []L {
	slices.Sort(s)

	return slices.Compact(s)
}
