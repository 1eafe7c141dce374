// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness runs the CLI against a local store in a temp dir.
type harness struct {
	t      *testing.T
	config string
}

func newHarness(t *testing.T, extra string) *harness {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "lvframe.yaml")
	body := fmt.Sprintf("store:\n  kind: local\n  local:\n    root: %s\nlog:\n  level: error\n  format: json\n%s",
		filepath.Join(dir, "data"), extra)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return &harness{t: t, config: path}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), append([]string{"--config", h.config}, args...), &out, &errOut)

	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, strings.Join(args, " "))

	return out
}

func TestCLI_GenMergeSummarize(t *testing.T) {
	h := newHarness(t, "")

	out := h.mustRun("gen", "--rows", "2", "--cols", "2", "--density", "1", "--values", "one", "--reducer", "l1-columns", "a")
	assert.Equal(t, "sdf_a Frame[2×2 nnz=4]\n", out)
	h.mustRun("gen", "--rows", "2", "--cols", "2", "--density", "1", "--values", "one", "--row-offset", "1", "--col-offset", "1", "b")

	assert.Equal(t, "a\nb\n", h.mustRun("ls"))
	assert.Equal(t, ",c0,c1\nr0,1,1\nr1,1,1\n", h.mustRun("show", "--csv", "a"))

	out = h.mustRun("merge", "--policy", "sum", "--out", "ab", "a", "b")
	assert.Equal(t, "sdf_ab Frame[3×3 nnz=7]\n", out)
	assert.Equal(t, ",c0,c1,c2\nr0,1,1,0\nr1,1,2,1\nr2,0,1,1\n", h.mustRun("show", "--csv", "ab"))

	out = h.mustRun("summarize", "--gt", "2", "--top", "1", "--sub", "ab")
	assert.Contains(t, out, "c0  2\nc1  4\nc2  2\n")
	assert.Contains(t, out, "top 1: c1\n")
	assert.Contains(t, out, "kept: c1\n")

	out = h.mustRun("summarize", "--reducer", "l0-rows", "--bottom", "1", "ab")
	assert.Contains(t, out, "r0  2\nr1  3\nr2  2\n")
	assert.Contains(t, out, "bottom 1: r0\n")

	show := h.mustRun("show", "ab")
	assert.True(t, strings.HasPrefix(show, "Frame[3×3 nnz=7]\n"))
}

func TestCLI_Errors(t *testing.T) {
	h := newHarness(t, "")

	var coder interface{ ExitCode() int }

	_, err := h.run("frobnicate")
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, 2, coder.ExitCode())

	_, err = h.run("show")
	require.ErrorAs(t, err, &coder)

	_, err = h.run("show", "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	h.mustRun("gen", "x")
	_, err = h.run("merge", "--policy", "overwrite", "--out", "y", "x", "x")
	require.ErrorIs(t, err, frame.ErrUnknownPolicy)

	_, err = h.run("merge", "--policy", "keep", "x", "x")
	require.ErrorAs(t, err, &coder)

	_, err = h.run("summarize", "x")
	require.ErrorIs(t, err, frame.ErrNoReducer)

	_, err = h.run("gen", "--density", "2", "z")
	require.ErrorAs(t, err, &coder)

	err = run(context.Background(), []string{"--help"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.True(t, errors.Is(err, errHelp))
}

func TestCLI_GenLabelSchemes(t *testing.T) {
	h := newHarness(t, "")

	h.mustRun("gen", "--rows", "2", "--cols", "3", "--density", "1", "--values", "one", "--labels", "excel", "--col-offset", "25", "x")
	assert.Equal(t, ",Z,AA,AB\n0,1,1,1\n1,1,1,1\n", h.mustRun("show", "--csv", "x"))

	h.mustRun("gen", "--rows", "1", "--cols", "2", "--density", "1", "--values", "one", "--labels", "decimal", "d")
	assert.Equal(t, ",0,1\n0,1,1\n", h.mustRun("show", "--csv", "d"))

	var coder interface{ ExitCode() int }
	_, err := h.run("gen", "--labels", "roman", "z")
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, 2, coder.ExitCode())
}

func TestCLI_RejectsMemoryStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mem.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  kind: memory\n"), 0o600))

	err := run(context.Background(), []string{"--config", path, "ls"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory")
}

func TestCLI_NoPrefix(t *testing.T) {
	h := newHarness(t, "persist:\n  add_name_prefix: false\n  compression: lz4\n")

	assert.Equal(t, "plain Frame[8×6 nnz=", h.mustRun("gen", "plain")[:len("plain Frame[8×6 nnz=")])
	assert.Equal(t, "plain\n", h.mustRun("ls"))
}
