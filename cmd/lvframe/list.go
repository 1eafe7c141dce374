// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvframe/persist"
)

func runList(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("ls", "")
	if _, err := parse(fs, args, 0); err != nil {
		return err
	}

	prefix := ""
	if a.cfg.Persist.AddNamePrefix {
		prefix = persist.DumpPrefix
	}
	names, err := a.st.List(ctx, prefix)
	if err != nil {
		return err
	}
	for _, n := range names {
		if _, err = fmt.Fprintln(a.out, strings.TrimPrefix(n, prefix)); err != nil {
			return err
		}
	}

	return nil
}
