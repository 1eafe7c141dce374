// SPDX-License-Identifier: MIT

package table

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/matrix"
)

// Table is the dense, labeled materialization of a frame.
// Data[i][j] is the value at row RowLabels[i] and column ColLabels[j].
type Table[L cmp.Ordered] struct {
	RowLabels []L
	ColLabels []L
	Data      [][]float64
}

// ToTable densifies f. Errors: matrix.ErrNilMatrix wrapped when f is nil.
func ToTable[L cmp.Ordered](f *frame.Frame[L]) (*Table[L], error) {
	if f == nil {
		return nil, fmt.Errorf("ToTable: %w", matrix.ErrNilMatrix)
	}

	return &Table[L]{
		RowLabels: f.RowLabels(),
		ColLabels: f.ColLabels(),
		Data:      f.Matrix().ToDense().Values(),
	}, nil
}

// At returns the value at (row, col) by label; the first occurrence of a
// repeated label wins. ok is false when either label is absent.
func (t *Table[L]) At(row, col L) (float64, bool) {
	i := slices.Index(t.RowLabels, row)
	j := slices.Index(t.ColLabels, col)
	if i < 0 || j < 0 {
		return 0, false
	}

	return t.Data[i][j], true
}

// Render writes the table as tab-aligned text: a header line with the column
// labels, then one line per row starting with its label.
func (t *Table[L]) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprint(tw, "\t"); err != nil {
		return err
	}
	for _, c := range t.ColLabels {
		if _, err := fmt.Fprintf(tw, "%v\t", c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}
	for i, r := range t.RowLabels {
		if _, err := fmt.Fprintf(tw, "%v\t", r); err != nil {
			return err
		}
		for _, v := range t.Data[i] {
			if _, err := fmt.Fprintf(tw, "%s\t", formatValue(v)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteCSV writes a header record (empty corner cell, then column labels)
// followed by one record per row.
func (t *Table[L]) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(t.ColLabels)+1)
	header = append(header, "")
	for _, c := range t.ColLabels {
		header = append(header, fmt.Sprint(c))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, r := range t.RowLabels {
		rec := make([]string, 0, len(t.Data[i])+1)
		rec = append(rec, fmt.Sprint(r))
		for _, v := range t.Data[i] {
			rec = append(rec, formatValue(v))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// Summary renders a summary as a two-column table (label, value); boolean
// summaries print true/false.
func Summary[L cmp.Ordered](w io.Writer, s *frame.Summary[L]) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	values, labels := s.Values(), s.Labels()
	for k, l := range labels {
		cell := formatValue(values[k])
		if s.IsBool() {
			cell = strconv.FormatBool(values[k] != 0)
		}
		if _, err := fmt.Fprintf(tw, "%v\t%s\n", l, cell); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
