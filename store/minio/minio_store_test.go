// SPDX-License-Identifier: MIT

package minio

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvframe/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Key(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "frames/sdf_a", NewStore(nil, "b", "/frames/").key("sdf_a"))
	assert.Equal(t, "sdf_a", NewStore(nil, "b", "").key("sdf_a"))
}

// TestStore_Integration requires a MinIO server on localhost:9000 with the
// default credentials and skips otherwise.
func TestStore_Integration(t *testing.T) {
	ctx := context.Background()
	st, err := Dial("localhost:9000", "minioadmin", "minioadmin", false, "test-lvframe", "it")
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}
	if _, err = st.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}
	require.NoError(t, st.EnsureBucket(ctx))

	data := []byte("hello lvframe")
	require.NoError(t, st.Put(ctx, "sdf_test", data))

	got, err := st.Get(ctx, "sdf_test")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := st.List(ctx, "sdf_")
	require.NoError(t, err)
	assert.Contains(t, names, "sdf_test")

	require.NoError(t, st.Delete(ctx, "sdf_test"))
	_, err = st.Get(ctx, "sdf_test")
	require.ErrorIs(t, err, store.ErrNotFound)
}
