// SPDX-License-Identifier: MIT

package persist

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/store"
	"golang.org/x/sync/errgroup"
)

// DumpPrefix is prepended to blob names when Save is asked to prefix them.
const DumpPrefix = "sdf_"

// BlobName returns the blob name Save uses for name.
func BlobName(name string, addNamePrefix bool) string {
	if addNamePrefix {
		return DumpPrefix + name
	}

	return name
}

// Save encodes f and writes it to st. It returns the blob name, which is
// DumpPrefix+name when addNamePrefix is set. Store errors are returned as is,
// wrapped; nothing is retried.
// Options: WithCompression, WithLogger.
func Save[L cmp.Ordered](ctx context.Context, st store.Store, name string, f *frame.Frame[L], addNamePrefix bool, opts ...Option) (string, error) {
	blob := BlobName(name, addNamePrefix)
	tag := fmt.Sprintf("Save(%q)", blob)
	if err := store.ValidateName(blob); err != nil {
		return "", persistErrorf(tag, err)
	}
	data, err := Encode(f, opts...)
	if err != nil {
		return "", persistErrorf(tag, err)
	}
	if err = st.Put(ctx, blob, data); err != nil {
		return "", persistErrorf(tag, err)
	}

	o := gatherOptions(opts...)
	o.logger.InfoContext(ctx, "frame saved",
		"blob", blob,
		"rows", f.Rows(),
		"cols", f.Cols(),
		"nnz", f.NNZ(),
		"bytes", len(data),
		"compression", o.compression.String(),
	)

	return blob, nil
}

// Load reads blob from st and decodes it.
// Options: WithReducers, WithLogger.
// Errors: store.ErrNotFound plus every Decode error.
func Load[L cmp.Ordered](ctx context.Context, st store.Store, blob string, opts ...Option) (*frame.Frame[L], error) {
	tag := fmt.Sprintf("Load(%q)", blob)
	data, err := st.Get(ctx, blob)
	if err != nil {
		return nil, persistErrorf(tag, err)
	}
	f, err := Decode[L](data, opts...)
	if err != nil {
		return nil, persistErrorf(tag, err)
	}

	o := gatherOptions(opts...)
	o.logger.DebugContext(ctx, "frame loaded", "blob", blob, "rows", f.Rows(), "cols", f.Cols(), "bytes", len(data))

	return f, nil
}

// SaveAll saves every frame concurrently, at most WithConcurrency at a time.
// It returns the blob names ordered by frame name. The first failure cancels
// the remaining writes; blobs already written are left in place.
func SaveAll[L cmp.Ordered](ctx context.Context, st store.Store, frames map[string]*frame.Frame[L], addNamePrefix bool, opts ...Option) ([]string, error) {
	o := gatherOptions(opts...)
	names := slices.Sorted(maps.Keys(frames))
	blobs := make([]string, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, name := range names {
		g.Go(func() error {
			blob, err := Save(gctx, st, name, frames[name], addNamePrefix, opts...)
			if err != nil {
				return err
			}
			blobs[i] = blob

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, persistErrorf("SaveAll", err)
	}

	return blobs, nil
}

// List returns the prefixed dump names held by st, sorted.
func List(ctx context.Context, st store.Store) ([]string, error) {
	names, err := st.List(ctx, DumpPrefix)
	if err != nil {
		return nil, persistErrorf("List", err)
	}

	return names, nil
}
