// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvframe/index"
)

// Selector picks positions along one axis of a frame.
//
// Implementations: Positions (explicit positions, in order, repeats allowed),
// Mask (boolean keep-mask), All (every position) and a boolean *Summary.
// A nil Selector selects every position.
type Selector interface {
	// resolve returns the positions selected on an axis of length n.
	resolve(n int) ([]int, error)
}

type positionSelector []int

type maskSelector []bool

type allSelector struct{}

// Positions selects the given positions in the given order.
// Out-of-range positions surface as matrix.ErrOutOfRange on use.
func Positions(p ...int) Selector { return positionSelector(slices.Clone(p)) }

// Mask selects position k when keep[k] is true; len(keep) must equal the
// axis length.
func Mask(keep []bool) Selector { return maskSelector(slices.Clone(keep)) }

// All selects every position.
func All() Selector { return allSelector{} }

func (s positionSelector) resolve(int) ([]int, error) { return s, nil }

func (s maskSelector) resolve(n int) ([]int, error) {
	if len(s) != n {
		return nil, fmt.Errorf("mask of %d for axis of %d: %w", len(s), n, ErrSelectorLength)
	}

	return index.FromMask(s).Positions(), nil
}

func (allSelector) resolve(n int) ([]int, error) { return positions(n), nil }

// isAll reports whether sel keeps the axis untouched.
func isAll(sel Selector) bool {
	if sel == nil {
		return true
	}
	_, ok := sel.(allSelector)

	return ok
}
