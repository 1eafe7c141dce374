// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvframe/builder"
	"github.com/katalvlaran/lvframe/frame"
)

func runGen(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("gen", "[flags] NAME")
	rows := fs.Int("rows", 8, "number of rows")
	cols := fs.Int("cols", 6, "number of columns")
	density := fs.Float64("density", 0.3, "probability that a cell is non-zero, in [0,1]")
	seed := fs.Int64("seed", 1, "random seed")
	values := fs.String("values", "digit", "cell values: one, digit (1..9) or uniform (0.5..1.5)")
	rowOffset := fs.Int("row-offset", 0, "index of the first row label")
	colOffset := fs.Int("col-offset", 0, "index of the first column label")
	reducer := fs.String("reducer", "", "default reducer to store with the frame")
	labels := fs.String("labels", "prefix", "label scheme: prefix (r0, c0), decimal (0, 1) or excel (rows 0, 1; columns A, B)")

	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(*seed),
		builder.WithRowOffset(*rowOffset),
		builder.WithColOffset(*colOffset),
	}
	switch *values {
	case "one":
		opts = append(opts, builder.WithValueFn(builder.DefaultValueFn))
	case "digit":
		opts = append(opts, builder.WithValueFn(builder.DigitValueFn))
	case "uniform":
		opts = append(opts, builder.WithValueFn(builder.UniformValueFn(0.5, 1.5)))
	default:
		return usagef("gen: unknown --values %q", *values)
	}
	switch *labels {
	case "prefix":
	case "decimal":
		opts = append(opts, builder.WithRowIDs(builder.DefaultIDFn), builder.WithColIDs(builder.DefaultIDFn))
	case "excel":
		opts = append(opts, builder.WithRowIDs(builder.DefaultIDFn), builder.WithColIDs(builder.ExcelColumnIDFn))
	default:
		return usagef("gen: unknown --labels %q", *labels)
	}
	if *reducer != "" {
		r, err := frame.ReducerByName(*reducer)
		if err != nil {
			return usageError{err}
		}
		opts = append(opts, builder.WithFrameOptions(frame.WithReducer(r)))
	}

	f, err := builder.RandomFrame(*rows, *cols, *density, opts...)
	if err != nil {
		return usageError{err}
	}
	blob, err := a.save(ctx, pos[0], f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s %s\n", blob, f)

	return err
}
