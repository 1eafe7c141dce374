// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvframe/frame"
)

func runMerge(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("merge", "--policy P --out NAME LEFT RIGHT")
	policyName := fs.String("policy", "", "force_append, keep, replace, sum or mean")
	out := fs.String("out", "", "name of the merged frame")
	pos, err := parse(fs, args, 2)
	if err != nil {
		return err
	}
	if *out == "" {
		return usagef("merge: --out is required")
	}
	policy, err := frame.ParsePolicy(*policyName)
	if err != nil {
		return usageError{err}
	}

	left, err := a.load(ctx, pos[0])
	if err != nil {
		return err
	}
	right, err := a.load(ctx, pos[1])
	if err != nil {
		return err
	}
	merged, err := frame.Merge(left, right, policy, frame.WithLogger(a.logger))
	if err != nil {
		return err
	}
	blob, err := a.save(ctx, *out, merged)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s %s\n", blob, merged)

	return err
}
