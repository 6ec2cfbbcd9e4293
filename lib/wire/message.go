// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
)

// Message is implemented by every wire-format message type. The two
// methods are bound by the codec's central invariant: Serialize must
// produce exactly LengthInBits bits, and the matching parse function
// must consume exactly as many. LengthInBits is a pure function of
// the message's shape and content — it never touches a buffer.
type Message interface {
	LengthInBits() uint
	Serialize(wb *bitbuf.WriteBuffer) error
}

// LengthInBytes returns the message's wire length in bytes. It fails
// with ErrUnaligned when the bit total is not a multiple of 8 — a
// field-set defect that must surface in tests, not be truncated here.
func LengthInBytes(m Message) (uint, error) {
	bits := m.LengthInBits()
	if bits%8 != 0 {
		return 0, fmt.Errorf("%d bits: %w", bits, ErrUnaligned)
	}
	return bits / 8, nil
}

// Encode serializes m into a freshly allocated buffer pre-sized to
// the message's byte length and returns the wire bytes. The fixed
// sizing means a serializer that disagrees with LengthInBits fails
// loudly with ErrOutOfBounds instead of silently producing a frame of
// the wrong length.
func Encode(m Message, order bitbuf.ByteOrder) ([]byte, error) {
	size, err := LengthInBytes(m)
	if err != nil {
		return nil, err
	}
	wb := bitbuf.NewFixedWriteBuffer(size, order)
	if err := m.Serialize(wb); err != nil {
		return nil, err
	}
	return wb.Bytes(), nil
}

// EncodeTo serializes m into storage obtained from alloc, for callers
// that pool or stack their frame buffers. alloc receives the required
// byte size; an allocator failure or a short buffer is reported as
// ErrAllocation.
func EncodeTo(m Message, order bitbuf.ByteOrder, alloc func(size uint) ([]byte, error)) ([]byte, error) {
	size, err := LengthInBytes(m)
	if err != nil {
		return nil, err
	}
	buf, err := alloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	if uint(len(buf)) < size {
		return nil, fmt.Errorf("%w: allocator returned %d bytes, need %d", ErrAllocation, len(buf), size)
	}
	wb := bitbuf.WrapWriteBuffer(buf[:size], order)
	if err := m.Serialize(wb); err != nil {
		return nil, err
	}
	return wb.Bytes(), nil
}
