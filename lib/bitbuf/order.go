// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bitbuf

import (
	"fmt"
	"math/bits"
)

// ByteOrder selects how multi-byte values are laid out on the wire.
// Bit order within a byte is always MSB-first; ByteOrder only affects
// values wider than one byte.
type ByteOrder int

const (
	// BigEndian is network byte order: the most significant byte of a
	// value appears first on the wire. This is the order used by
	// Modbus and most industrial fieldbus protocols.
	BigEndian ByteOrder = iota
	// LittleEndian byte-swaps values relative to wire order. Only
	// defined for widths that are a whole number of bytes.
	LittleEndian
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return fmt.Sprintf("ByteOrder(%d)", int(o))
	}
}

// Offset is a position within a buffer, measured in bits from the
// start of the underlying bytes.
type Offset uint

// Byte returns the byte index the offset falls in.
func (o Offset) Byte() uint { return uint(o) / 8 }

// Bit returns the bit index within that byte (0 = most significant).
func (o Offset) Bit() uint { return uint(o) % 8 }

// String renders the offset in the form used by codec error messages,
// e.g. "byte 2 bit 0".
func (o Offset) String() string {
	return fmt.Sprintf("byte %d bit %d", o.Byte(), o.Bit())
}

// checkWidth validates a field width against the 1..64 bit range and,
// for little-endian access, against the whole-byte requirement.
func checkWidth(order ByteOrder, width uint) error {
	if width < 1 || width > 64 {
		return fmt.Errorf("%d bits: %w", width, ErrWidth)
	}
	if order == LittleEndian && width > 8 && width%8 != 0 {
		return fmt.Errorf("little-endian access of %d bits: %w", width, ErrWidth)
	}
	return nil
}

// swapBytes reverses the byte order of the low width/8 bytes of v.
// Callers guarantee width is a multiple of 8.
func swapBytes(v uint64, width uint) uint64 {
	return bits.ReverseBytes64(v) >> (64 - width)
}
