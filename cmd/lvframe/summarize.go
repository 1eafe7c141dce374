// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/table"
)

func runSummarize(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("summarize", "[flags] NAME")
	reducer := fs.String("reducer", "", "reducer name (default: the frame's own); one of "+strings.Join(frame.ReducerNames(), ", "))
	axisName := fs.String("axis", "auto", "result axis: auto, row or column")
	gt := fs.Float64("gt", 0, "keep entries > value")
	ge := fs.Float64("ge", 0, "keep entries >= value")
	lt := fs.Float64("lt", 0, "keep entries < value")
	le := fs.Float64("le", 0, "keep entries <= value")
	top := fs.Int("top", 0, "print the k largest labels")
	bottom := fs.Int("bottom", 0, "print the k smallest labels")
	sub := fs.Bool("sub", false, "print the sub-frame selected by the filters")
	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}
	axis, err := frame.ParseAxis(*axisName)
	if err != nil {
		return usageError{err}
	}

	f, err := a.load(ctx, pos[0])
	if err != nil {
		return err
	}

	r := f.Reducer()
	if *reducer != "" {
		named, err := frame.ReducerByName(*reducer)
		if err != nil {
			return usageError{err}
		}
		r = named
	}
	var s *frame.Summary[string]
	if r == nil {
		s, err = f.Summary() // reports ErrNoReducer
	} else {
		s, err = f.Summarize(r, axis)
	}
	if err != nil {
		return err
	}
	if err = table.Summary(a.out, s); err != nil {
		return err
	}

	if *top > 0 {
		fmt.Fprintf(a.out, "top %d: %s\n", *top, strings.Join(s.TopKLabels(*top, false), ", "))
	}
	if *bottom > 0 {
		fmt.Fprintf(a.out, "bottom %d: %s\n", *bottom, strings.Join(s.TopKLabels(*bottom, true), ", "))
	}

	mask, err := filters(fs, s, map[string]float64{"gt": *gt, "ge": *ge, "lt": *lt, "le": *le})
	if err != nil || mask == nil {
		return err
	}
	kept, err := mask.FilteredLabels()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "kept: %s\n", strings.Join(kept, ", "))
	if !*sub {
		return nil
	}
	sf, err := mask.SubFrame()
	if err != nil {
		return err
	}
	t, err := table.ToTable(sf)
	if err != nil {
		return err
	}

	return t.Render(a.out)
}

// filters ANDs the comparison flags that were set. It returns nil when none was.
func filters(fs *pflag.FlagSet, s *frame.Summary[string], bounds map[string]float64) (*frame.Summary[string], error) {
	var mask *frame.Summary[string]
	for _, name := range []string{"gt", "ge", "lt", "le"} {
		if !fs.Changed(name) {
			continue
		}
		var m *frame.Summary[string]
		switch name {
		case "gt":
			m = s.GreaterThan(bounds[name])
		case "ge":
			m = s.GreaterOrEqual(bounds[name])
		case "lt":
			m = s.LessThan(bounds[name])
		case "le":
			m = s.LessOrEqual(bounds[name])
		}
		if mask == nil {
			mask = m
			continue
		}
		var err error
		if mask, err = mask.And(m); err != nil {
			return nil, err
		}
	}

	return mask, nil
}
