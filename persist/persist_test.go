// SPDX-License-Identifier: MIT

package persist_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvframe/builder"
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/matrix"
	"github.com/katalvlaran/lvframe/persist"
	"github.com/katalvlaran/lvframe/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame(t testing.TB) *frame.Frame[string] {
	t.Helper()
	f, err := builder.RandomFrame(12, 9, 0.3, builder.WithSeed(7),
		builder.WithFrameOptions(frame.WithReducer(frame.L1NormColumns)))
	require.NoError(t, err)

	return f
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range []persist.Compression{persist.CompressionNone, persist.CompressionLZ4, persist.CompressionZstd} {
		c := c
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()
			f := sampleFrame(t)
			blob, err := persist.Encode(f, persist.WithCompression(c))
			require.NoError(t, err)

			got, err := persist.Decode[string](blob)
			require.NoError(t, err)
			assert.True(t, f.Equal(got))
			name, ok := frame.ReducerName(got.Reducer())
			require.True(t, ok)
			assert.Equal(t, "l1-columns", name)
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	f := sampleFrame(t)
	a, err := persist.Encode(f)
	require.NoError(t, err)
	b, err := persist.Encode(f)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodeDecode_IntLabelsAndEmpty(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromDense([][]float64{{0, 1.5}, {-2, 0}})
	require.NoError(t, err)
	f, err := frame.New(m, []int{10, 20}, []int{7, 3})
	require.NoError(t, err)
	blob, err := persist.Encode(f)
	require.NoError(t, err)
	got, err := persist.Decode[int](blob)
	require.NoError(t, err)
	assert.True(t, f.Equal(got))
	assert.False(t, got.HasReducer())

	empty, err := matrix.NewCSR(0, 0)
	require.NoError(t, err)
	ef, err := frame.New[string](empty, nil, nil)
	require.NoError(t, err)
	blob, err = persist.Encode(ef)
	require.NoError(t, err)
	back, err := persist.Decode[string](blob)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Rows())
	assert.Equal(t, 0, back.Cols())
}

func TestEncode_UnnamedReducerDropped(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromDense([][]float64{{1}})
	require.NoError(t, err)
	anon := frame.ReducerFunc(func(m *matrix.CSR) (matrix.Matrix, error) { return m.ToDense(), nil })
	f, err := frame.New(m, []string{"r"}, []string{"c"}, frame.WithReducer(anon))
	require.NoError(t, err)

	blob, err := persist.Encode(f)
	require.NoError(t, err)
	got, err := persist.Decode[string](blob)
	require.NoError(t, err)
	assert.False(t, got.HasReducer())
}

func TestDecode_CustomReducer(t *testing.T) {
	t.Parallel()

	custom := frame.Named("double-sum", frame.ReducerFunc(func(m *matrix.CSR) (matrix.Matrix, error) {
		s, err := matrix.ColSums(m.Scale(2))
		if err != nil {
			return nil, err
		}
		return matrix.NewRowVector(s), nil
	}))
	m, err := matrix.FromDense([][]float64{{1, 2}})
	require.NoError(t, err)
	f, err := frame.New(m, []string{"r"}, []string{"a", "b"}, frame.WithReducer(custom))
	require.NoError(t, err)
	blob, err := persist.Encode(f)
	require.NoError(t, err)

	_, err = persist.Decode[string](blob)
	require.ErrorIs(t, err, frame.ErrUnknownReducer)

	got, err := persist.Decode[string](blob, persist.WithReducers(custom))
	require.NoError(t, err)
	s, err := got.Summary()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, s.Values())
}

func TestDecode_Corruption(t *testing.T) {
	t.Parallel()

	f := sampleFrame(t)
	blob, err := persist.Encode(f, persist.WithCompression(persist.CompressionNone))
	require.NoError(t, err)

	mutate := func(fn func(b []byte) []byte) []byte {
		return fn(bytes.Clone(blob))
	}

	tests := []struct {
		name    string
		blob    []byte
		wantErr error
	}{
		{"short", blob[:10], persist.ErrTruncated},
		{"bad magic", mutate(func(b []byte) []byte { b[0] = 'X'; return b }), persist.ErrBadMagic},
		{"future version", mutate(func(b []byte) []byte { b[4] = 9; return b }), persist.ErrUnsupportedVersion},
		{"unknown compression", mutate(func(b []byte) []byte { b[5] = 7; return b }), persist.ErrUnknownCompression},
		{"payload flip", mutate(func(b []byte) []byte { b[len(b)-1] ^= 0xff; return b }), persist.ErrChecksum},
		{"digest flip", mutate(func(b []byte) []byte { b[8] ^= 0x01; return b }), persist.ErrChecksum},
		{"cut payload", blob[:len(blob)-3], persist.ErrTruncated},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := persist.Decode[string](tc.blob)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDecode_CompressedCorruptionFails(t *testing.T) {
	t.Parallel()

	for _, c := range []persist.Compression{persist.CompressionLZ4, persist.CompressionZstd} {
		blob, err := persist.Encode(sampleFrame(t), persist.WithCompression(c))
		require.NoError(t, err)
		blob[len(blob)-2] ^= 0x5a
		_, err = persist.Decode[string](blob)
		require.Error(t, err, c.String())
	}
}

func TestDecode_ForgedSizeRejected(t *testing.T) {
	t.Parallel()

	const forged = 1 << 30
	forge := func(blob []byte, size uint32) []byte {
		b := bytes.Clone(blob)
		binary.LittleEndian.PutUint32(b[40:44], size)
		return b
	}

	// Header only plus a four byte body claiming a 1 GiB LZ4 payload.
	tiny := make([]byte, 48)
	copy(tiny, "LVFR")
	tiny[4] = persist.FormatVersion
	tiny[5] = byte(persist.CompressionLZ4)
	binary.LittleEndian.PutUint32(tiny[40:44], forged)
	_, err := persist.Decode[string](tiny)
	require.ErrorIs(t, err, persist.ErrTruncated)

	tiny[5] = byte(persist.CompressionZstd)
	_, err = persist.Decode[string](tiny)
	require.Error(t, err)

	for _, c := range []persist.Compression{persist.CompressionNone, persist.CompressionLZ4, persist.CompressionZstd} {
		blob, err := persist.Encode(sampleFrame(t), persist.WithCompression(c))
		require.NoError(t, err)

		_, err = persist.Decode[string](forge(blob, forged))
		require.ErrorIs(t, err, persist.ErrTruncated, c.String())
		_, err = persist.Decode[string](forge(blob, forged+1))
		require.ErrorIs(t, err, persist.ErrTooLarge, c.String())
	}
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.NewMemoryStore()
	f := sampleFrame(t)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	blob, err := persist.Save(ctx, st, "weights", f, true, persist.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, "sdf_weights", blob)
	assert.Contains(t, logs.String(), "frame saved")

	plain, err := persist.Save(ctx, st, "raw", f, false)
	require.NoError(t, err)
	assert.Equal(t, "raw", plain)

	got, err := persist.Load[string](ctx, st, blob, persist.WithLogger(logger))
	require.NoError(t, err)
	assert.True(t, f.Equal(got))
	assert.Contains(t, logs.String(), "frame loaded")

	dumps, err := persist.List(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, []string{"sdf_weights"}, dumps)

	_, err = persist.Load[string](ctx, st, "sdf_missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = persist.Save[string](ctx, st, "nil", nil, true)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// failingStore rejects every Put.
type failingStore struct{ store.Store }

var errBoom = errors.New("boom")

func (failingStore) Put(context.Context, string, []byte) error { return errBoom }

func TestSave_SurfacesStoreErrors(t *testing.T) {
	t.Parallel()

	_, err := persist.Save(context.Background(), failingStore{store.NewMemoryStore()}, "x", sampleFrame(t), true)
	require.ErrorIs(t, err, errBoom)
}

func TestSaveAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.NewMemoryStore()
	frames := make(map[string]*frame.Frame[string])
	for i, name := range []string{"c", "a", "b", "d", "e"} {
		f, err := builder.RandomFrame(4+i, 3, 0.5, builder.WithSeed(int64(i)))
		require.NoError(t, err)
		frames[name] = f
	}

	blobs, err := persist.SaveAll(ctx, st, frames, true, persist.WithConcurrency(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"sdf_a", "sdf_b", "sdf_c", "sdf_d", "sdf_e"}, blobs)

	for name, f := range frames {
		got, err := persist.Load[string](ctx, st, persist.BlobName(name, true))
		require.NoError(t, err)
		assert.True(t, f.Equal(got), name)
	}

	_, err = persist.SaveAll(ctx, failingStore{st}, frames, true)
	require.ErrorIs(t, err, errBoom)
}

func TestParseCompression(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]persist.Compression{
		"none": persist.CompressionNone, "LZ4": persist.CompressionLZ4, " zstd ": persist.CompressionZstd,
	} {
		got, err := persist.ParseCompression(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := persist.ParseCompression("brotli")
	require.ErrorIs(t, err, persist.ErrUnknownCompression)
	assert.Panics(t, func() { persist.WithCompression(persist.Compression(9)) })
	assert.Panics(t, func() { persist.WithConcurrency(0) })
}
