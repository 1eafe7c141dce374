// SPDX-License-Identifier: MIT

package persist

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic indicates the blob does not start with "LVFR".
	ErrBadMagic = errors.New("persist: bad magic")

	// ErrUnsupportedVersion indicates a format version this build cannot read.
	ErrUnsupportedVersion = errors.New("persist: unsupported format version")

	// ErrUnknownCompression indicates an unrecognized compression byte or name.
	ErrUnknownCompression = errors.New("persist: unknown compression")

	// ErrChecksum indicates the payload digest does not match the header.
	ErrChecksum = errors.New("persist: checksum mismatch")

	// ErrTruncated indicates the blob is shorter than its header declares.
	ErrTruncated = errors.New("persist: truncated blob")

	// ErrTooLarge indicates a payload exceeding MaxPayloadSize.
	ErrTooLarge = errors.New("persist: payload too large")
)

// persistErrorf wraps err with an operation tag.
func persistErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
