// SPDX-License-Identifier: MIT

package persist

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvframe/frame"
)

const (
	// DefaultCompression is used when WithCompression is not given.
	DefaultCompression = CompressionZstd

	// DefaultConcurrency bounds parallel writes in SaveAll.
	DefaultConcurrency = 4
)

// Option configures Encode, Decode, Save, Load and SaveAll.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	compression Compression
	concurrency int
	logger      *slog.Logger
	reducers    map[string]frame.NamedReducer
}

// WithCompression selects the payload compression. Panics on an unknown value.
func WithCompression(c Compression) Option {
	if !c.Valid() {
		panic(fmt.Sprintf("persist: WithCompression(%d)", uint8(c)))
	}

	return func(o *Options) { o.compression = c }
}

// WithConcurrency bounds the number of frames SaveAll writes at once.
// Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("persist: WithConcurrency(%d)", n))
	}

	return func(o *Options) { o.concurrency = n }
}

// WithLogger routes save/load records to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("persist: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

// WithReducers registers extra named reducers that Load may restore.
// They shadow built-ins of the same name.
func WithReducers(rs ...frame.NamedReducer) Option {
	return func(o *Options) {
		for _, r := range rs {
			if r != nil {
				o.reducers[r.Name()] = r
			}
		}
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		compression: DefaultCompression,
		concurrency: DefaultConcurrency,
		logger:      slog.New(slog.DiscardHandler),
		reducers:    make(map[string]frame.NamedReducer),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func (o Options) reducer(name string) (frame.NamedReducer, error) {
	if r, ok := o.reducers[name]; ok {
		return r, nil
	}

	return frame.ReducerByName(name)
}
