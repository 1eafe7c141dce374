// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvframe/table"
)

func runShow(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("show", "[--csv] NAME")
	asCSV := fs.Bool("csv", false, "write CSV instead of an aligned table")
	pos, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	f, err := a.load(ctx, pos[0])
	if err != nil {
		return err
	}
	t, err := table.ToTable(f)
	if err != nil {
		return err
	}
	if *asCSV {
		return t.WriteCSV(a.out)
	}
	if _, err = fmt.Fprintln(a.out, f); err != nil {
		return err
	}

	return t.Render(a.out)
}
