// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bitbuf

import "errors"

// ErrOutOfBounds reports a read or write that would cross the end of
// the buffer. The cursor is left at the position it had before the
// failed operation — no partial width is ever consumed.
var ErrOutOfBounds = errors.New("out of bounds")

// ErrValueTooLarge reports a write whose value does not fit in the
// requested bit width. Nothing is written.
var ErrValueTooLarge = errors.New("value too large for field width")

// ErrWidth reports a width outside 1..64 bits, or a little-endian
// access with a width that is not a whole number of bytes (byte
// swapping is undefined for partial bytes).
var ErrWidth = errors.New("unsupported bit width")
