// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
	"github.com/bureau-foundation/wirebit/lib/wire"
)

// ErrMissingValue reports an encode call that supplied no value for a
// declared uint field.
var ErrMissingValue = errors.New("no value supplied for field")

// ErrUnknownField reports an encode call that supplied a value for a
// name the layout does not declare. Stray values are rejected rather
// than ignored — a typo in a field name must not silently produce a
// frame with a defaulted field.
var ErrUnknownField = errors.New("value supplied for undeclared field")

// boundLayout binds a value set to a layout, satisfying wire.Message
// so the generic encode path (length computation, pre-sized buffer,
// length-disagreement detection) applies to interpreted layouts the
// same way it applies to hand-written message types.
type boundLayout struct {
	layout *Layout
	values map[string]uint64
}

func (b *boundLayout) LengthInBits() uint { return b.layout.LengthInBits() }

func (b *boundLayout) Serialize(wb *bitbuf.WriteBuffer) error {
	for i, f := range b.layout.Fields {
		switch f.Kind {
		case KindConst:
			cf := wire.ConstField{Name: f.Name, Width: f.Bits, Expected: f.Expected}
			if err := cf.Write(wb); err != nil {
				return err
			}
		case KindUint:
			v, ok := b.values[f.Name]
			if !ok {
				return &wire.FieldError{Field: f.Name, Offset: wb.Position(), Err: ErrMissingValue}
			}
			if err := wire.WriteUnsigned(wb, f.Name, f.Bits, v); err != nil {
				return err
			}
		case KindReserved:
			rf := wire.ReservedField{Name: b.layout.fieldName(i), Width: f.Bits, Filler: f.Expected}
			if err := rf.Write(wb); err != nil {
				return err
			}
		case KindPadding:
			rf := wire.ReservedField{Name: b.layout.fieldName(i), Width: f.Bits}
			if err := rf.Write(wb); err != nil {
				return err
			}
		}
	}
	return nil
}

// Encode serializes the supplied values through the layout's field
// program, in declared order, and returns the wire bytes. Every uint
// field must have a value and every supplied name must be declared;
// the first field whose value cannot be represented in its width
// fails the whole encode.
func (l *Layout) Encode(values map[string]uint64) ([]byte, error) {
	declared := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		if f.Kind == KindUint {
			declared[f.Name] = true
		}
	}
	for name := range values {
		if !declared[name] {
			return nil, fmt.Errorf("layout %s: %q: %w", l.Name, name, ErrUnknownField)
		}
	}
	return wire.Encode(&boundLayout{layout: l, values: values}, l.Order)
}
