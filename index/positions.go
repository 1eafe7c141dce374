// SPDX-License-Identifier: MIT

package index

import "github.com/RoaringBitmap/roaring/v2"

// PositionSet is a set of non-negative axis positions backed by a 32-bit
// roaring bitmap. Positions must fit in uint32.
// The zero value is not usable; construct with NewPositionSet, RangeSet or
// FromMask.
type PositionSet struct {
	rb *roaring.Bitmap
}

// NewPositionSet returns a set holding the given positions.
func NewPositionSet(pos ...int) *PositionSet {
	s := &PositionSet{rb: roaring.New()}
	for _, p := range pos {
		s.Add(p)
	}

	return s
}

// RangeSet returns the set {0, 1, ..., n-1}.
func RangeSet(n int) *PositionSet {
	s := &PositionSet{rb: roaring.New()}
	if n > 0 {
		s.rb.AddRange(0, uint64(n))
	}

	return s
}

// FromMask returns the positions k with mask[k] == true.
func FromMask(mask []bool) *PositionSet {
	s := &PositionSet{rb: roaring.New()}
	for k, keep := range mask {
		if keep {
			s.rb.Add(uint32(k))
		}
	}

	return s
}

// Add inserts a position.
func (s *PositionSet) Add(pos int) {
	s.rb.Add(uint32(pos))
}

// And keeps only the positions also present in other (in place).
func (s *PositionSet) And(other *PositionSet) {
	s.rb.And(other.rb)
}

// Or adds every position of other (in place).
func (s *PositionSet) Or(other *PositionSet) {
	s.rb.Or(other.rb)
}

// AndNot removes every position present in other (in place).
func (s *PositionSet) AndNot(other *PositionSet) {
	s.rb.AndNot(other.rb)
}

// Cardinality returns the number of positions in the set.
func (s *PositionSet) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// Positions returns the members in ascending order.
func (s *PositionSet) Positions() []int {
	out := make([]int, 0, s.rb.GetCardinality())
	it := s.rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// Mask returns the set as a boolean mask of length n; members >= n are ignored.
func (s *PositionSet) Mask(n int) []bool {
	out := make([]bool, n)
	it := s.rb.Iterator()
	for it.HasNext() {
		p := int(it.Next())
		if p >= n {
			break
		}
		out[p] = true
	}

	return out
}
