// SPDX-License-Identifier: MIT

package frame

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvframe/index"
)

// FindRowPositions returns the position of every requested row label, in
// request order. A label present more than once resolves to its first
// occurrence. Errors: ErrLabelNotFound.
func (f *Frame[L]) FindRowPositions(labels []L) ([]int, error) {
	return findPositions("FindRowPositions", f.rows, labels)
}

// FindColPositions is FindRowPositions for column labels.
func (f *Frame[L]) FindColPositions(labels []L) ([]int, error) {
	return findPositions("FindColPositions", f.cols, labels)
}

func findPositions[L cmp.Ordered](tag string, axis, labels []L) ([]int, error) {
	first := index.FirstPositions(axis)
	out := make([]int, len(labels))
	for k, l := range labels {
		p, ok := first[l]
		if !ok {
			return nil, frameErrorf(fmt.Sprintf("%s(%v)", tag, l), ErrLabelNotFound)
		}
		out[k] = p
	}

	return out, nil
}
