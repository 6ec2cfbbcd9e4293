// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
	"github.com/bureau-foundation/wirebit/lib/wire"
)

// FieldKind identifies what a field contributes to the message.
type FieldKind string

const (
	// KindConst is a fixed wire value: validated on decode,
	// authoritative on encode, never surfaced as a value.
	KindConst FieldKind = "const"
	// KindUint is a caller-visible unsigned integer value.
	KindUint FieldKind = "uint"
	// KindReserved is declared filler: checked on decode with a
	// logged warning on mismatch, written as the filler on encode.
	KindReserved FieldKind = "reserved"
	// KindPadding is undeclared filler: skipped on decode without any
	// check, written as zeros on encode.
	KindPadding FieldKind = "padding"
)

// FieldDef is one entry in a layout's field program.
type FieldDef struct {
	// Name is the protocol field name. Required for const and uint
	// fields; optional for reserved and padding (a generated name is
	// used in diagnostics).
	Name string

	// Kind selects the field codec.
	Kind FieldKind

	// Bits is the field width, 1..64.
	Bits uint

	// Expected is the wire value for const fields and the filler for
	// reserved fields. Ignored for uint and padding.
	Expected uint64
}

// Layout is a compiled message layout. Construct one from YAML with
// [Parse] or [LoadFile], or build the struct directly and call
// [Layout.Validate] before use.
type Layout struct {
	// Name identifies the message type in diagnostics and tool output.
	Name string

	// Order is the byte order fields wider than one byte use.
	Order bitbuf.ByteOrder

	// ByteAligned declares that the protocol mandates a byte-aligned
	// total; Validate then rejects a field set whose widths do not sum
	// to a multiple of 8.
	ByteAligned bool

	// Fields is the ordered field program.
	Fields []FieldDef

	logger *slog.Logger
}

// SetLogger attaches a logger for reserved-field mismatch warnings
// during decode. Nil (the default) silences them.
func (l *Layout) SetLogger(logger *slog.Logger) { l.logger = logger }

// ErrLayout reports a structural defect in a layout definition.
var ErrLayout = errors.New("invalid layout")

// Validate checks the layout's structural invariants. It never
// touches a buffer; everything here is a property of the definition
// alone, caught once at load time instead of corrupting frames later.
func (l *Layout) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: layout has no name", ErrLayout)
	}
	if len(l.Fields) == 0 {
		return fmt.Errorf("%w: layout %s has no fields", ErrLayout, l.Name)
	}
	seen := make(map[string]bool, len(l.Fields))
	for i, f := range l.Fields {
		name := l.fieldName(i)
		if f.Bits < 1 || f.Bits > 64 {
			return fmt.Errorf("%w: field %s: width %d bits outside 1..64", ErrLayout, name, f.Bits)
		}
		if l.Order == bitbuf.LittleEndian && f.Bits > 8 && f.Bits%8 != 0 {
			return fmt.Errorf("%w: field %s: little-endian width %d is not a whole number of bytes",
				ErrLayout, name, f.Bits)
		}
		switch f.Kind {
		case KindConst:
			if f.Name == "" {
				return fmt.Errorf("%w: const field %d has no name", ErrLayout, i)
			}
			if err := (wire.ConstField{Name: f.Name, Width: f.Bits, Expected: f.Expected}).Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrLayout, err)
			}
		case KindUint:
			if f.Name == "" {
				return fmt.Errorf("%w: uint field %d has no name", ErrLayout, i)
			}
			if seen[f.Name] {
				return fmt.Errorf("%w: duplicate field name %q", ErrLayout, f.Name)
			}
			seen[f.Name] = true
		case KindReserved:
			if f.Bits < 64 && f.Expected >= 1<<f.Bits {
				return fmt.Errorf("%w: reserved field %s: filler %#x does not fit %d bits",
					ErrLayout, name, f.Expected, f.Bits)
			}
		case KindPadding:
			// Padding carries no declared value.
		default:
			return fmt.Errorf("%w: field %s: unknown kind %q", ErrLayout, name, f.Kind)
		}
	}
	if l.ByteAligned && l.LengthInBits()%8 != 0 {
		return fmt.Errorf("%w: layout %s declares byte alignment but totals %d bits",
			ErrLayout, l.Name, l.LengthInBits())
	}
	return nil
}

// LengthInBits sums the field widths. Pure function of the layout's
// shape; no buffer is involved.
func (l *Layout) LengthInBits() uint {
	var bits uint
	for _, f := range l.Fields {
		bits += f.Bits
	}
	return bits
}

// LengthInBytes returns the layout's wire length in bytes, failing
// with wire.ErrUnaligned when the bit total is not byte-aligned.
func (l *Layout) LengthInBytes() (uint, error) {
	bits := l.LengthInBits()
	if bits%8 != 0 {
		return 0, fmt.Errorf("layout %s: %d bits: %w", l.Name, bits, wire.ErrUnaligned)
	}
	return bits / 8, nil
}

// fieldName returns the diagnostic name for field i, generating one
// for anonymous reserved/padding fields.
func (l *Layout) fieldName(i int) string {
	if l.Fields[i].Name != "" {
		return l.Fields[i].Name
	}
	return fmt.Sprintf("%s[%d]", l.Fields[i].Kind, i)
}
