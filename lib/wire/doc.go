// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire provides the field-level codec primitives that message
// parsers and serializers are built from: constant fields, typed
// unsigned fields, and reserved/padding fields, all operating against
// a [bitbuf] cursor buffer.
//
// Every primitive is a pure decode/encode pair with one contract: the
// bits consumed by decode equal the bits produced by encode. A field
// whose two paths disagree on width or byte order corrupts every
// field after it in the same message, so the pairing is the unit this
// package is organized around — [ConstField] and [ReservedField] own
// both directions, and [ReadUnsigned]/[WriteUnsigned] are documented
// and tested as a pair.
//
// Failures are structured, never logged-and-swallowed: a [*FieldError]
// names the offending field, the bit offset at the field's start, and
// wraps one of the sentinel kinds ([ErrOutOfBounds],
// [ErrConstantMismatch], [ErrValueTooLarge], [ErrAllocation]) so
// callers can dispatch with errors.Is. The single exception is a
// reserved field whose wire bits disagree with the declared filler:
// per fieldbus convention that is a warning, not a parse failure, and
// decoding continues.
package wire
