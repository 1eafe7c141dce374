// SPDX-License-Identifier: MIT

// Package frame: functional options shared by construction and merge.
//
//   - WithReducer sets the default reducer of a new frame.
//   - WithStrictLabels makes New reject repeated labels on either axis.
//   - WithLogger routes merge diagnostics to a slog.Logger (discarded by default).
//
// Options that do not apply to an operation are ignored by it.

package frame

import "log/slog"

// DefaultStrictLabels leaves label uniqueness unchecked at construction.
// Merge enforces the uniqueness it needs regardless of this setting.
const DefaultStrictLabels = false

// Option mutates Options; later options win.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	reducer      Reducer
	strictLabels bool
	logger       *slog.Logger
}

// WithReducer attaches r as the default reducer of the constructed frame.
// A nil r leaves the frame without a default reducer.
func WithReducer(r Reducer) Option {
	return func(o *Options) { o.reducer = r }
}

// WithStrictLabels makes New fail with ErrDuplicateLabel on repeated labels.
func WithStrictLabels() Option {
	return func(o *Options) { o.strictLabels = true }
}

// WithLogger sets the logger used for debug diagnostics.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("frame: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		strictLabels: DefaultStrictLabels,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
