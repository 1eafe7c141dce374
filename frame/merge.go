// SPDX-License-Identifier: MIT

// Package frame - Merge: align two frames on their labels and combine them.
//
// Algorithm:
//  1. Zero-extend both frames so each carries the union of column labels.
//  2. Reslice both matrices to the ascending label order of that union;
//     it becomes the output column order.
//  3. Split rows into self-only and other-only (position order) and the
//     overlap (ascending label order, computed on both sides).
//  4. Stack self-only, the resolved overlap and other-only rows; the policy
//     decides the overlap. ForceAppend skips 3 and stacks everything.
//
// Label uniqueness: column labels must be unique on both sides for every
// policy; row labels too, except under ForceAppend.
// The receiver's default reducer is carried; the other frame's is ignored.

package frame

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvframe/index"
	"github.com/katalvlaran/lvframe/matrix"
)

const ctxMerge = "Merge"

// Merge combines self and other under policy p. Options: WithLogger.
// Errors: ErrUnknownPolicy (checked first), ErrNilFrame, ErrDuplicateLabel.
// Complexity: O((r + r') log(r + r') + (c + c') log(c + c') + nnz + nnz').
func Merge[L cmp.Ordered](self, other *Frame[L], p Policy, opts ...Option) (*Frame[L], error) {
	if !p.Valid() {
		return nil, frameErrorf(fmt.Sprintf("%s(%v)", ctxMerge, p), ErrUnknownPolicy)
	}
	if self == nil || other == nil {
		return nil, frameErrorf(ctxMerge, ErrNilFrame)
	}
	o := gatherOptions(opts...)
	if err := mergePreconditions(self, other, p); err != nil {
		return nil, err
	}

	// Column alignment.
	left := self.ExtendZeroColumns(other)
	right := other.ExtendZeroColumns(self)
	common := index.Intersect(left.cols, right.cols)
	leftCols := index.Build(left.cols).Project(common).SortByLabel()
	rightCols := index.Build(right.cols).Project(common).SortByLabel()
	lm, err := left.m.SelectCols(leftCols.Positions())
	if err != nil {
		return nil, frameErrorf(ctxMerge, err)
	}
	rm, err := right.m.SelectCols(rightCols.Positions())
	if err != nil {
		return nil, frameErrorf(ctxMerge, err)
	}
	cols := leftCols.Labels()

	var (
		out     *matrix.CSR
		rows    []L
		overlap int
	)
	if p == ForceAppend {
		if out, err = matrix.VStack(lm, rm); err != nil {
			return nil, frameErrorf(ctxMerge, err)
		}
		rows = slices.Concat(self.rows, other.rows)
	} else {
		if out, rows, overlap, err = mergeRows(lm, rm, self.rows, other.rows, p); err != nil {
			return nil, frameErrorf(ctxMerge, err)
		}
	}

	o.logger.Debug("frame merge",
		"policy", p.String(),
		"left", self.String(),
		"right", other.String(),
		"overlap_rows", overlap,
		"columns", len(cols),
		"rows", len(rows),
	)

	return self.derive(out, rows, cols, self.reducer), nil
}

// Merge is the method form of Merge(f, other, p, opts...).
func (f *Frame[L]) Merge(other *Frame[L], p Policy, opts ...Option) (*Frame[L], error) {
	return Merge(f, other, p, opts...)
}

// mergeRows performs steps 3 and 4 for the overlap-resolving policies.
// lm and rm are already column-aligned.
func mergeRows[L cmp.Ordered](lm, rm *matrix.CSR, lrows, rrows []L, p Policy) (*matrix.CSR, []L, int, error) {
	shared := index.Intersect(lrows, rrows)
	lix, rix := index.Build(lrows), index.Build(rrows)
	lInter := lix.Project(shared).SortByLabel()
	rInter := rix.Project(shared).SortByLabel()
	lOnly := lix.Complement(lInter)
	rOnly := rix.Complement(rInter)

	lOnlyM, err := lm.SelectRows(lOnly.Positions())
	if err != nil {
		return nil, nil, 0, err
	}
	rOnlyM, err := rm.SelectRows(rOnly.Positions())
	if err != nil {
		return nil, nil, 0, err
	}
	lInterM, err := lm.SelectRows(lInter.Positions())
	if err != nil {
		return nil, nil, 0, err
	}
	rInterM, err := rm.SelectRows(rInter.Positions())
	if err != nil {
		return nil, nil, 0, err
	}

	var mid *matrix.CSR
	switch p {
	case Keep:
		mid = lInterM
	case Replace:
		mid = rInterM
	case Sum, Mean:
		if mid, err = matrix.Add(lInterM, rInterM); err != nil {
			return nil, nil, 0, err
		}
		if p == Mean {
			mid = mid.Scale(0.5)
		}
	default:
		return nil, nil, 0, ErrUnknownPolicy
	}

	out, err := matrix.VStack(lOnlyM, mid, rOnlyM)
	if err != nil {
		return nil, nil, 0, err
	}
	rows := slices.Concat(lOnly.Labels(), lInter.Labels(), rOnly.Labels())

	return out, rows, len(shared), nil
}

// mergePreconditions enforces the label uniqueness Merge relies on.
func mergePreconditions[L cmp.Ordered](self, other *Frame[L], p Policy) error {
	if err := checkUnique(ctxMerge+": left columns", self.cols); err != nil {
		return err
	}
	if err := checkUnique(ctxMerge+": right columns", other.cols); err != nil {
		return err
	}
	if p == ForceAppend {
		return nil
	}
	if err := checkUnique(ctxMerge+": left rows", self.rows); err != nil {
		return err
	}

	return checkUnique(ctxMerge+": right rows", other.rows)
}
