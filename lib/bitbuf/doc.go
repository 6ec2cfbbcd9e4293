// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bitbuf provides bit-addressable read and write buffers for
// wire-format codecs. Each buffer owns a single cursor measured in
// bits; every read or write advances it by exactly the width it
// consumed, and a failed operation does not advance it at all. That
// all-or-nothing contract is what keeps multi-field parse and
// serialize passes in agreement: a field that fails mid-buffer leaves
// the cursor where the field started, so the reported offset is the
// field's offset, not somewhere inside it.
//
// Bits within a byte are addressed most-significant-bit first
// (network bit order). [ByteOrder] controls how multi-byte values are
// normalized: [BigEndian] reads bits as they appear on the wire,
// [LittleEndian] byte-swaps the value and is only defined for widths
// that are whole bytes. Fieldbus protocols in the Modbus family are
// big-endian; the little-endian path exists for the handful of
// formats (and vendor extensions) that are not.
//
// Buffers are not safe for concurrent use. A buffer belongs to one
// decode or encode pass at a time; the caller provides that
// exclusivity. There is nothing to cancel and nothing blocks — every
// operation is a bounded amount of arithmetic over memory.
package bitbuf
