// SPDX-License-Identifier: MIT

package frame_test

import (
	"fmt"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/matrix"
)

// ExampleMerge aligns two frames that share row "r2" and column "c2" and
// resolves the overlap by replacing the receiver's row.
func ExampleMerge() {
	ma, _ := matrix.FromDense([][]float64{{1, 0}, {0, 2}})
	mb, _ := matrix.FromDense([][]float64{{5, 6}, {0, 7}})
	a, _ := frame.New(ma, []string{"r1", "r2"}, []string{"c1", "c2"})
	b, _ := frame.New(mb, []string{"r2", "r3"}, []string{"c2", "c3"})

	out, err := frame.Merge(a, b, frame.Replace)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.RowLabels(), out.ColLabels())
	fmt.Print(out.Matrix())
	// Output:
	// [r1 r2 r3] [c1 c2 c3]
	// [1, 0, 0]
	// [0, 5, 6]
	// [0, 0, 7]
}

// ExampleSummary_SubFrame keeps the columns whose L1 norm reaches a bound.
func ExampleSummary_SubFrame() {
	m, _ := matrix.FromDense([][]float64{{1, 0, 2}, {0, 3, 0}})
	f, _ := frame.New(m, []string{"d1", "d2"}, []string{"apple", "kiwi", "pear"},
		frame.WithReducer(frame.L1NormColumns))

	s, _ := f.Summary()
	mask := s.GreaterOrEqual(2)
	labels, _ := mask.FilteredLabels()
	kept, _ := mask.SubFrame()
	fmt.Println(s.Values(), labels, kept.ColLabels())
	fmt.Println(s.TopKLabels(1, false))
	// Output:
	// [1 3 2] [kiwi pear] [kiwi pear]
	// [kiwi]
}
