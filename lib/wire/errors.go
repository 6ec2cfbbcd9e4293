// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
)

// Error kinds. ErrOutOfBounds and ErrValueTooLarge are the bitbuf
// sentinels re-exported, so errors.Is matches whether the caller
// imports wire or bitbuf.
var (
	// ErrOutOfBounds: the buffer was exhausted before the field could
	// be fully read or written.
	ErrOutOfBounds = bitbuf.ErrOutOfBounds

	// ErrValueTooLarge: a field value does not fit in its declared
	// bit width.
	ErrValueTooLarge = bitbuf.ErrValueTooLarge

	// ErrConstantMismatch: a decoded constant field disagrees with the
	// wire value the format declares. The message is malformed or of
	// an unsupported variant; the mismatch is never silently corrected.
	ErrConstantMismatch = errors.New("constant mismatch")

	// ErrAllocation: the output buffer for an encode could not be
	// obtained from the caller's allocator. Fatal to that call only.
	ErrAllocation = errors.New("cannot allocate output buffer")

	// ErrUnaligned: a byte-length was requested for a message whose
	// total bit length is not a multiple of 8. This is a defect in the
	// field set, reported rather than truncated.
	ErrUnaligned = errors.New("message length is not byte-aligned")
)

// FieldError annotates a codec failure with the identity of the field
// and the cursor position at the start of that field. It wraps the
// underlying kind, so errors.Is(err, wire.ErrConstantMismatch) and
// friends see through it.
type FieldError struct {
	// Field is the protocol name of the field, e.g. "protocolId".
	Field string

	// Offset is the buffer position at which the field begins.
	Offset bitbuf.Offset

	// Expected and Actual are populated for constant mismatches.
	Expected uint64
	Actual   uint64

	// Err is the underlying error kind.
	Err error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrConstantMismatch) {
		return fmt.Sprintf("field %s at %s: %v: expected %#x, got %#x",
			e.Field, e.Offset, e.Err, e.Expected, e.Actual)
	}
	return fmt.Sprintf("field %s at %s: %v", e.Field, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// fieldErr wraps err with field identity and start offset, unless it
// already carries them (nested messages annotate at the innermost
// field, which is the one a protocol engineer needs).
func fieldErr(name string, start bitbuf.Offset, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	return &FieldError{Field: name, Offset: start, Err: err}
}
