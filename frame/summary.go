// SPDX-License-Identifier: MIT

// Package frame - Summary: one value per label along a frame axis.
//
// A Summary is numeric or boolean. Comparisons turn a numeric summary into a
// boolean one; boolean summaries combine with And/Or/Not and act as a
// Selector on the frame they were computed from (SubFrame).
//
// Boolean values are stored as 0/1 so that both kinds share one layout.

package frame

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvframe/index"
)

// Axis names the frame axis a summary is aligned with.
type Axis int

const (
	// AxisAuto asks Summarize to derive the axis from shapes. On a Summary it
	// means the axis is unknown (summary built without a source frame).
	AxisAuto Axis = iota
	// AxisRow: one value per row.
	AxisRow
	// AxisColumn: one value per column.
	AxisColumn
)

// AxisUnknown is the axis of a summary built without a source frame.
const AxisUnknown = AxisAuto

// String returns "auto", "row" or "column".
func (a Axis) String() string {
	switch a {
	case AxisAuto:
		return "auto"
	case AxisRow:
		return "row"
	case AxisColumn:
		return "column"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis is the inverse of Axis.String.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "auto", "":
		return AxisAuto, nil
	case "row", "rows":
		return AxisRow, nil
	case "column", "columns", "col":
		return AxisColumn, nil
	default:
		return AxisAuto, fmt.Errorf("frame: unknown axis %q", s)
	}
}

// Summary is an immutable labeled vector.
// Invariant: len(values) == len(labels).
type Summary[L cmp.Ordered] struct {
	values  []float64
	boolean bool
	labels  []L
	axis    Axis
	src     *Frame[L] // non-owning; nil for detached summaries
}

// NewSummary returns a detached numeric summary. Errors: ErrLabelShape.
func NewSummary[L cmp.Ordered](values []float64, labels []L) (*Summary[L], error) {
	if len(values) != len(labels) {
		return nil, frameErrorf(fmt.Sprintf("NewSummary: %d values for %d labels", len(values), len(labels)), ErrLabelShape)
	}

	return &Summary[L]{values: slices.Clone(values), labels: slices.Clone(labels)}, nil
}

// NewMaskSummary returns a detached boolean summary. Errors: ErrLabelShape.
func NewMaskSummary[L cmp.Ordered](mask []bool, labels []L) (*Summary[L], error) {
	if len(mask) != len(labels) {
		return nil, frameErrorf(fmt.Sprintf("NewMaskSummary: %d values for %d labels", len(mask), len(labels)), ErrLabelShape)
	}

	return &Summary[L]{values: boolsToValues(mask), boolean: true, labels: slices.Clone(labels)}, nil
}

// Len returns the number of entries.
func (s *Summary[L]) Len() int { return len(s.values) }

// Values returns a copy of the values (0/1 for boolean summaries).
func (s *Summary[L]) Values() []float64 { return slices.Clone(s.values) }

// Labels returns a copy of the labels.
func (s *Summary[L]) Labels() []L { return slices.Clone(s.labels) }

// Axis returns the axis recorded at summarization time.
func (s *Summary[L]) Axis() Axis { return s.axis }

// IsBool reports whether the summary is a boolean mask.
func (s *Summary[L]) IsBool() bool { return s.boolean }

// Source returns the frame the summary was computed from, or nil.
func (s *Summary[L]) Source() *Frame[L] { return s.src }

// Mask returns the boolean values. Errors: ErrNotBoolean.
func (s *Summary[L]) Mask() ([]bool, error) {
	if !s.boolean {
		return nil, frameErrorf("Summary.Mask", ErrNotBoolean)
	}

	return valuesToBools(s.values), nil
}

// LessThan returns the boolean summary v < bound.
func (s *Summary[L]) LessThan(bound float64) *Summary[L] {
	return s.compare(func(v float64) bool { return v < bound })
}

// LessOrEqual returns the boolean summary v <= bound.
func (s *Summary[L]) LessOrEqual(bound float64) *Summary[L] {
	return s.compare(func(v float64) bool { return v <= bound })
}

// GreaterThan returns the boolean summary v > bound.
func (s *Summary[L]) GreaterThan(bound float64) *Summary[L] {
	return s.compare(func(v float64) bool { return v > bound })
}

// GreaterOrEqual returns the boolean summary v >= bound.
func (s *Summary[L]) GreaterOrEqual(bound float64) *Summary[L] {
	return s.compare(func(v float64) bool { return v >= bound })
}

func (s *Summary[L]) compare(keep func(float64) bool) *Summary[L] {
	out := make([]float64, len(s.values))
	for k, v := range s.values {
		if keep(v) {
			out[k] = 1
		}
	}

	return s.withMask(out)
}

// And returns the element-wise conjunction of two boolean summaries over the
// same labels. Source and axis come from the receiver.
// Errors: ErrNotBoolean, ErrLabelMismatch.
func (s *Summary[L]) And(o *Summary[L]) (*Summary[L], error) {
	return s.combine("Summary.And", o, (*index.PositionSet).And)
}

// Or returns the element-wise disjunction; preconditions as And.
func (s *Summary[L]) Or(o *Summary[L]) (*Summary[L], error) {
	return s.combine("Summary.Or", o, (*index.PositionSet).Or)
}

// Not returns the element-wise negation. Errors: ErrNotBoolean.
func (s *Summary[L]) Not() (*Summary[L], error) {
	if !s.boolean {
		return nil, frameErrorf("Summary.Not", ErrNotBoolean)
	}
	n := len(s.values)
	kept := index.RangeSet(n)
	kept.AndNot(index.FromMask(valuesToBools(s.values)))

	return s.withMask(boolsToValues(kept.Mask(n))), nil
}

// combine applies op in place to the receiver's kept positions.
func (s *Summary[L]) combine(tag string, o *Summary[L], op func(dst, src *index.PositionSet)) (*Summary[L], error) {
	if o == nil || !s.boolean || !o.boolean {
		return nil, frameErrorf(tag, ErrNotBoolean)
	}
	if !slices.Equal(s.labels, o.labels) {
		return nil, frameErrorf(tag, ErrLabelMismatch)
	}
	kept := index.FromMask(valuesToBools(s.values))
	op(kept, index.FromMask(valuesToBools(o.values)))

	return s.withMask(boolsToValues(kept.Mask(len(s.values)))), nil
}

// withMask returns a boolean sibling sharing labels, axis and source.
func (s *Summary[L]) withMask(values []float64) *Summary[L] {
	return &Summary[L]{values: values, boolean: true, labels: s.labels, axis: s.axis, src: s.src}
}

// FilteredPositions returns the positions whose mask value is true, ascending.
// Errors: ErrNotBoolean.
func (s *Summary[L]) FilteredPositions() ([]int, error) {
	if !s.boolean {
		return nil, frameErrorf("Summary.FilteredPositions", ErrNotBoolean)
	}

	return index.FromMask(valuesToBools(s.values)).Positions(), nil
}

// FilteredLabels returns the labels whose mask value is true, in position order.
// Errors: ErrNotBoolean.
func (s *Summary[L]) FilteredLabels() ([]L, error) {
	pos, err := s.FilteredPositions()
	if err != nil {
		return nil, frameErrorf("Summary.FilteredLabels", err)
	}

	return pick(s.labels, pos), nil
}

// SubFrame selects the rows or columns of the source frame kept by the mask.
// The axis is re-derived from the source shape; on a square source the
// recorded axis decides.
// Errors: ErrNotBoolean, ErrNoSource, ErrSelectorLength, ErrAmbiguousAxis.
func (s *Summary[L]) SubFrame() (*Frame[L], error) {
	const tag = "Summary.SubFrame"
	if !s.boolean {
		return nil, frameErrorf(tag, ErrNotBoolean)
	}
	if s.src == nil {
		return nil, frameErrorf(tag, ErrNoSource)
	}
	onCols := s.src.IsMatchedColShape(len(s.values))
	onRows := s.src.IsMatchedRowShape(len(s.values))
	if onCols && onRows {
		switch s.axis {
		case AxisColumn:
			onRows = false
		case AxisRow:
			onCols = false
		default:
			return nil, frameErrorf(tag, ErrAmbiguousAxis)
		}
	}
	switch {
	case onCols:
		return s.src.SelectColumns(s)
	case onRows:
		return s.src.SelectRows(s)
	default:
		return nil, frameErrorf(tag, ErrSelectorLength)
	}
}

// resolve makes a boolean summary usable as a Selector.
func (s *Summary[L]) resolve(n int) ([]int, error) {
	if s == nil {
		return positions(n), nil
	}
	if !s.boolean {
		return nil, ErrNotBoolean
	}
	if len(s.values) != n {
		return nil, fmt.Errorf("summary of %d for axis of %d: %w", len(s.values), n, ErrSelectorLength)
	}

	return s.FilteredPositions()
}

// TopKPositions returns k positions from a stable ascending argsort of the
// values (ties keep position order). Not reversed: the last k, i.e. the
// largest values, still in ascending order. Reversed: the first k.
// k <= 0 yields an empty result; k > Len() yields every position.
func (s *Summary[L]) TopKPositions(k int, reverse bool) []int {
	n := len(s.values)
	if k <= 0 {
		return []int{}
	}
	k = min(k, n)
	order := positions(n)
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(s.values[a], s.values[b])
	})
	if reverse {
		return order[:k]
	}

	return order[n-k:]
}

// TopKLabels maps TopKPositions to labels.
func (s *Summary[L]) TopKLabels(k int, reverse bool) []L {
	return pick(s.labels, s.TopKPositions(k, reverse))
}

func boolsToValues(mask []bool) []float64 {
	out := make([]float64, len(mask))
	for k, b := range mask {
		if b {
			out[k] = 1
		}
	}

	return out
}

func valuesToBools(values []float64) []bool {
	out := make([]bool, len(values))
	for k, v := range values {
		out[k] = v != 0
	}

	return out
}
