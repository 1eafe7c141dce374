// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
)

// ErrNotFound is returned when a blob does not exist.
// Implementations return an error satisfying errors.Is(err, ErrNotFound).
var ErrNotFound = os.ErrNotExist

// ErrInvalidName is returned for empty, absolute or escaping blob names.
var ErrInvalidName = errors.New("store: invalid blob name")

// Store is a flat namespace of immutable blobs.
type Store interface {
	// Put writes data under name, replacing any previous blob atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Get returns the full content of a blob.
	Get(ctx context.Context, name string) ([]byte, error)
	// Delete removes a blob; deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names starting with prefix, sorted ascending.
	List(ctx context.Context, prefix string) ([]string, error)
}

// ValidateName rejects names that could escape a store root.
func ValidateName(name string) error {
	clean := path.Clean(name)
	switch {
	case name == "", clean == ".":
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	case strings.HasPrefix(name, "/"), clean == "..", strings.HasPrefix(clean, "../"):
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	return nil
}
