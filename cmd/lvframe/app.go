// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvframe/config"
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/persist"
	"github.com/katalvlaran/lvframe/store"
)

// errHelp ends a run after help text was printed.
var errHelp = errors.New("help requested")

// usageError marks bad invocations; they exit with status 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }
func (e usageError) ExitCode() int { return 2 }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// app holds what every command needs once global flags are parsed.
type app struct {
	cfg    *config.Config
	st     store.Store
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{"gen", "generate a random frame and save it", runGen},
	{"ls", "list saved frames", runList},
	{"show", "print a frame as an aligned table or CSV", runShow},
	{"summarize", "reduce a frame along an axis, optionally filter or rank", runSummarize},
	{"merge", "merge two frames under a policy and save the result", runMerge},
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var configPath, logLevel string
	fs := pflag.NewFlagSet("lvframe", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	fs.StringVar(&configPath, "config", "", "path to the YAML config (default: $"+config.EnvVar+")")
	fs.StringVar(&logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return errHelp
		}
		return usageError{err}
	}
	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(stderr, fs)
		return usagef("missing command")
	}
	idx := slices.IndexFunc(commands, func(c command) bool { return c.name == rest[0] })
	if idx < 0 {
		return usagef("unknown command %q", rest[0])
	}

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return usageError{err}
	}
	if cfg.Store.Kind == config.StoreMemory {
		return usagef("store.kind %q does not persist between invocations", config.StoreMemory)
	}
	st, err := cfg.OpenStore(ctx)
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, st: st, logger: logger.With("command", rest[0]), out: stdout, errOut: stderr}

	return commands[idx].run(ctx, a, rest[1:])
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: lvframe [global flags] <command> [flags] [args]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nGlobal flags:\n%s", fs.FlagUsages())
}

// newFlagSet returns a subcommand flag set that reports to the app's stderr.
func (a *app) newFlagSet(name, usage string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() {
		fmt.Fprintf(a.errOut, "Usage: lvframe %s %s\n\n%s", name, usage, fs.FlagUsages())
	}

	return fs
}

// parse parses args and checks the positional count.
func parse(fs *pflag.FlagSet, args []string, positional int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, errHelp
		}
		return nil, usageError{err}
	}
	if fs.NArg() != positional {
		fs.Usage()
		return nil, usagef("%s: want %d argument(s), got %d", fs.Name(), positional, fs.NArg())
	}

	return fs.Args(), nil
}

func (a *app) persistOptions() []persist.Option {
	return append(a.cfg.PersistOptions(), persist.WithLogger(a.logger))
}

func (a *app) blob(name string) string {
	return persist.BlobName(name, a.cfg.Persist.AddNamePrefix)
}

func (a *app) load(ctx context.Context, name string) (*frame.Frame[string], error) {
	return persist.Load[string](ctx, a.st, a.blob(name), a.persistOptions()...)
}

func (a *app) save(ctx context.Context, name string, f *frame.Frame[string]) (string, error) {
	return persist.Save(ctx, a.st, name, f, a.cfg.Persist.AddNamePrefix, a.persistOptions()...)
}
