// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bitbuf

import "fmt"

// WriteBuffer writes unsigned integers of arbitrary bit width into a
// byte slice, tracking its position in bits. By default the buffer
// grows as needed; growth copies into a larger slice, so bits already
// written are never invalidated. A buffer constructed with
// [NewFixedWriteBuffer] instead fails with [ErrOutOfBounds] when a
// write would cross its capacity.
//
// Failed writes never advance the cursor and never modify the buffer.
// A WriteBuffer serves one encode pass at a time; it is not safe for
// concurrent use.
type WriteBuffer struct {
	data  []byte
	pos   Offset
	order ByteOrder
	fixed bool
}

// NewWriteBuffer returns an empty, growable WriteBuffer.
func NewWriteBuffer(order ByteOrder) *WriteBuffer {
	return &WriteBuffer{order: order}
}

// NewFixedWriteBuffer returns a WriteBuffer with a fixed capacity of
// size bytes. Writes beyond the capacity fail with [ErrOutOfBounds].
func NewFixedWriteBuffer(size uint, order ByteOrder) *WriteBuffer {
	return &WriteBuffer{data: make([]byte, size), fixed: true, order: order}
}

// WrapWriteBuffer returns a fixed-capacity WriteBuffer over
// caller-supplied storage. On success the wire bytes are in buf
// itself; the buffer never grows past len(buf).
func WrapWriteBuffer(buf []byte, order ByteOrder) *WriteBuffer {
	return &WriteBuffer{data: buf, fixed: true, order: order}
}

// Position returns the current cursor position without side effects.
func (b *WriteBuffer) Position() Offset { return b.pos }

// ByteOrder returns the byte order the buffer normalizes values with.
func (b *WriteBuffer) ByteOrder() ByteOrder { return b.order }

// Len returns the number of bytes the written bits span, counting a
// trailing partial byte as a full byte.
func (b *WriteBuffer) Len() uint { return (uint(b.pos) + 7) / 8 }

// Bytes returns the written bytes. Unwritten bits in the final
// partial byte are zero. For a fixed buffer the full capacity is
// returned, matching the pre-sized message length.
func (b *WriteBuffer) Bytes() []byte {
	if b.fixed {
		return b.data
	}
	return b.data[:b.Len()]
}

// WriteUint validates that value fits in width bits (1..64), writes
// the bit pattern at the cursor in the buffer's byte order, and
// advances the cursor by width. On any failure the cursor does not
// move and the buffer is unmodified.
func (b *WriteBuffer) WriteUint(width uint, value uint64) error {
	if err := checkWidth(b.order, width); err != nil {
		return err
	}
	if width < 64 && value >= 1<<width {
		return fmt.Errorf("value %#x in %d bits: %w", value, width, ErrValueTooLarge)
	}

	end := uint(b.pos) + width
	if need := (end + 7) / 8; need > uint(len(b.data)) {
		if b.fixed {
			return fmt.Errorf("write of %d bits at %s in a %d-bit buffer: %w",
				width, b.pos, uint(len(b.data))*8, ErrOutOfBounds)
		}
		grown := make([]byte, need, need*2)
		copy(grown, b.data)
		b.data = grown
	}

	if b.order == LittleEndian && width > 8 {
		value = swapBytes(value, width)
	}

	// MSB-first deposit, mirror of ReadBuffer.ReadUint: each iteration
	// places the highest unwritten bits of value into the remainder of
	// the current byte.
	pos := uint(b.pos)
	for n := width; n > 0; {
		take := 8 - pos%8
		if take > n {
			take = n
		}
		shift := 8 - pos%8 - take
		chunk := byte(value>>(n-take)) & byte((1<<take)-1)
		mask := byte((1<<take)-1) << shift
		b.data[pos/8] = b.data[pos/8]&^mask | chunk<<shift
		pos += take
		n -= take
	}
	b.pos = Offset(pos)
	return nil
}

// WriteBit writes a single bit.
func (b *WriteBuffer) WriteBit(bit bool) error {
	var v uint64
	if bit {
		v = 1
	}
	return b.WriteUint(1, v)
}

// WriteBytes writes data in its entirety. The cursor must be
// byte-aligned.
func (b *WriteBuffer) WriteBytes(data []byte) error {
	if b.pos.Bit() != 0 {
		return fmt.Errorf("byte write at unaligned position %s: %w", b.pos, ErrWidth)
	}
	end := uint(b.pos) + uint(len(data))*8
	if need := (end + 7) / 8; need > uint(len(b.data)) {
		if b.fixed {
			return fmt.Errorf("write of %d bytes at %s in a %d-bit buffer: %w",
				len(data), b.pos, uint(len(b.data))*8, ErrOutOfBounds)
		}
		grown := make([]byte, need, need*2)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos.Byte():], data)
	b.pos = Offset(end)
	return nil
}

// Align advances the cursor to the next byte boundary, leaving any
// skipped bits zero. No-op when already aligned.
func (b *WriteBuffer) Align() error {
	if rem := b.pos.Bit(); rem != 0 {
		return b.WriteUint(8-rem, 0)
	}
	return nil
}
