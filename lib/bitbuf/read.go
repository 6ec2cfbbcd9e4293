// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bitbuf

import "fmt"

// ReadBuffer reads unsigned integers of arbitrary bit width from a
// borrowed byte slice, tracking its position in bits. The slice is
// never modified and never read past its end: an operation that would
// cross the capacity fails with [ErrOutOfBounds] before touching any
// data, leaving the cursor unmoved.
//
// A ReadBuffer serves one decode pass at a time; it is not safe for
// concurrent use.
type ReadBuffer struct {
	data  []byte
	pos   Offset
	order ByteOrder
}

// NewReadBuffer returns a ReadBuffer over data, positioned at bit 0.
// The buffer borrows data; the caller must not mutate it during the
// decode pass.
func NewReadBuffer(data []byte, order ByteOrder) *ReadBuffer {
	return &ReadBuffer{data: data, order: order}
}

// Position returns the current cursor position without side effects.
func (b *ReadBuffer) Position() Offset { return b.pos }

// Capacity returns the total size of the buffer in bits.
func (b *ReadBuffer) Capacity() uint { return uint(len(b.data)) * 8 }

// Remaining returns the number of unread bits.
func (b *ReadBuffer) Remaining() uint { return b.Capacity() - uint(b.pos) }

// ByteOrder returns the byte order the buffer normalizes values with.
func (b *ReadBuffer) ByteOrder() ByteOrder { return b.order }

// ReadUint reads width bits (1..64) starting at the cursor, advances
// the cursor by width, and returns the value normalized to the
// buffer's byte order. On any failure the cursor does not move.
func (b *ReadBuffer) ReadUint(width uint) (uint64, error) {
	if err := checkWidth(b.order, width); err != nil {
		return 0, err
	}
	if uint(b.pos)+width > b.Capacity() {
		return 0, fmt.Errorf("read of %d bits at %s in a %d-bit buffer: %w",
			width, b.pos, b.Capacity(), ErrOutOfBounds)
	}

	// MSB-first extraction: each iteration takes the bits remaining in
	// the current byte (or fewer, for the final partial chunk) and
	// appends them below the bits already collected.
	var value uint64
	pos := uint(b.pos)
	for n := width; n > 0; {
		take := 8 - pos%8
		if take > n {
			take = n
		}
		chunk := uint64(b.data[pos/8]) >> (8 - pos%8 - take)
		value = value<<take | chunk&((1<<take)-1)
		pos += take
		n -= take
	}
	b.pos = Offset(pos)

	if b.order == LittleEndian && width > 8 {
		value = swapBytes(value, width)
	}
	return value, nil
}

// ReadBit reads a single bit and returns it as a bool.
func (b *ReadBuffer) ReadBit() (bool, error) {
	v, err := b.ReadUint(1)
	return v == 1, err
}

// ReadBytes reads count whole bytes. The cursor must be byte-aligned.
func (b *ReadBuffer) ReadBytes(count uint) ([]byte, error) {
	if b.pos.Bit() != 0 {
		return nil, fmt.Errorf("byte read at unaligned position %s: %w", b.pos, ErrWidth)
	}
	if uint(b.pos)+count*8 > b.Capacity() {
		return nil, fmt.Errorf("read of %d bytes at %s in a %d-bit buffer: %w",
			count, b.pos, b.Capacity(), ErrOutOfBounds)
	}
	start := b.pos.Byte()
	out := make([]byte, count)
	copy(out, b.data[start:start+count])
	b.pos += Offset(count * 8)
	return out, nil
}

// Align advances the cursor to the next byte boundary. It is a no-op
// when the cursor is already aligned. Alignment can never exceed
// capacity because capacity is a whole number of bytes.
func (b *ReadBuffer) Align() {
	if rem := b.pos.Bit(); rem != 0 {
		b.pos += Offset(8 - rem)
	}
}
