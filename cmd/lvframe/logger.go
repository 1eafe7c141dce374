// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/katalvlaran/lvframe/config"
)

// newLogger builds the command logger. With format "auto" a terminal gets
// the text handler and anything else (pipes, files, CI) gets JSON.
func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	text := lc.Format == config.LogText
	if lc.Format == config.LogAuto {
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			text = true
		}
	}
	if text {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}
