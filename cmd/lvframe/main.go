// SPDX-License-Identifier: MIT

// lvframe manages labeled sparse frames held in a blob store.
//
// Usage:
//
//	lvframe [--config FILE] [--log-level LEVEL] <command> [flags] [args]
//
// Commands:
//
//	gen        generate a random frame and save it
//	ls         list saved frames
//	show       print a frame as an aligned table or CSV
//	summarize  reduce a frame along an axis, optionally filter or rank
//	merge      merge two frames under a policy and save the result
//
// The store, compression and logging come from the YAML file named by
// --config or LVFRAME_CONFIG (see package config).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if errors.Is(err, errHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}
