// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
)

// ConstField describes a protocol field whose wire value is fixed by
// the format: validated on decode, authoritative on encode. The
// descriptor is immutable and shared by every decode/encode call for
// that field — message packages declare them as package-level vars.
type ConstField struct {
	Name     string
	Width    uint
	Expected uint64
}

// Validate checks that the descriptor is internally consistent: the
// width is in 1..64 and the expected value fits in it. Message
// packages call this from tests; the layout compiler calls it for
// every constant field it loads.
func (f ConstField) Validate() error {
	if f.Width < 1 || f.Width > 64 {
		return fmt.Errorf("const field %s: width %d: %w", f.Name, f.Width, bitbuf.ErrWidth)
	}
	if f.Width < 64 && f.Expected >= 1<<f.Width {
		return fmt.Errorf("const field %s: expected value %#x in %d bits: %w",
			f.Name, f.Expected, f.Width, ErrValueTooLarge)
	}
	return nil
}

// Read consumes the field's width from rb and verifies the wire value
// matches the descriptor. On a mismatch the returned *FieldError
// reports the position of the field's first bit and carries both
// values; the caller aborts the message decode. A matching constant
// yields no value — its presence is structural.
func (f ConstField) Read(rb *bitbuf.ReadBuffer) error {
	start := rb.Position()
	actual, err := rb.ReadUint(f.Width)
	if err != nil {
		return fieldErr(f.Name, start, err)
	}
	if actual != f.Expected {
		return &FieldError{
			Field:    f.Name,
			Offset:   start,
			Expected: f.Expected,
			Actual:   actual,
			Err:      ErrConstantMismatch,
		}
	}
	return nil
}

// Write emits the descriptor's expected value. There is no caller
// input to validate: the constant is authoritative, and encode always
// produces exactly the bits decode will accept.
func (f ConstField) Write(wb *bitbuf.WriteBuffer) error {
	start := wb.Position()
	if err := wb.WriteUint(f.Width, f.Expected); err != nil {
		return fieldErr(f.Name, start, err)
	}
	return nil
}

// ReservedField describes filler bits the format reserves. Decode
// reads and checks them but tolerates a mismatch: the deviation is
// reported through the logger (nil-safe) and decoding continues, per
// fieldbus convention that reserved bits from newer or sloppier peers
// must not break parsing. Encode always writes the declared filler.
type ReservedField struct {
	Name   string
	Width  uint
	Filler uint64
}

// Read consumes the field's width. A filler mismatch is logged at
// Warn when logger is non-nil and is not an error.
func (f ReservedField) Read(rb *bitbuf.ReadBuffer, logger *slog.Logger) error {
	start := rb.Position()
	actual, err := rb.ReadUint(f.Width)
	if err != nil {
		return fieldErr(f.Name, start, err)
	}
	if actual != f.Filler && logger != nil {
		logger.Warn("reserved field does not match expected filler",
			"field", f.Name,
			"offset", start.String(),
			"expected", f.Filler,
			"actual", actual,
		)
	}
	return nil
}

// Write emits the declared filler.
func (f ReservedField) Write(wb *bitbuf.WriteBuffer) error {
	start := wb.Position()
	if err := wb.WriteUint(f.Width, f.Filler); err != nil {
		return fieldErr(f.Name, start, err)
	}
	return nil
}

// ReadUnsigned decodes a typed unsigned field of the given width,
// annotating any buffer failure with the field's name and start
// offset. The pair contract with [WriteUnsigned]: both move the
// cursor by exactly width bits.
func ReadUnsigned(rb *bitbuf.ReadBuffer, name string, width uint) (uint64, error) {
	start := rb.Position()
	v, err := rb.ReadUint(width)
	if err != nil {
		return 0, fieldErr(name, start, err)
	}
	return v, nil
}

// WriteUnsigned encodes a typed unsigned field of the given width.
// A value that does not fit the width fails with ErrValueTooLarge
// before anything is written.
func WriteUnsigned(wb *bitbuf.WriteBuffer, name string, width uint, value uint64) error {
	start := wb.Position()
	if err := wb.WriteUint(width, value); err != nil {
		return fieldErr(name, start, err)
	}
	return nil
}

// ReadBool decodes a single-bit field as a bool.
func ReadBool(rb *bitbuf.ReadBuffer, name string) (bool, error) {
	v, err := ReadUnsigned(rb, name, 1)
	return v == 1, err
}

// WriteBool encodes a single-bit field from a bool.
func WriteBool(wb *bitbuf.WriteBuffer, name string, value bool) error {
	var v uint64
	if value {
		v = 1
	}
	return WriteUnsigned(wb, name, 1, v)
}
