// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"github.com/bureau-foundation/wirebit/lib/bitbuf"
	"github.com/bureau-foundation/wirebit/lib/wire"
)

// FieldValue is one decoded value field: its name, where it sat in
// the message, and the normalized unsigned value.
type FieldValue struct {
	Name   string `json:"name"`
	Offset uint   `json:"offset_bits"`
	Bits   uint   `json:"bits"`
	Value  uint64 `json:"value"`
}

// Decoded is the result of a successful decode pass: the value fields
// in declared order. Constant, reserved, and padding fields consumed
// wire bits but contribute no slot — their content is fixed by the
// format, so a slot would carry no information. The caller owns the
// Decoded exclusively.
type Decoded struct {
	Layout string       `json:"layout"`
	Bits   uint         `json:"bits"`
	Fields []FieldValue `json:"fields"`
}

// Get returns the value of the named field and whether it exists.
func (d *Decoded) Get(name string) (uint64, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// Decode runs the layout's field program over data. Fields are parsed
// in declared order from bit 0; the first failure aborts the pass and
// is returned annotated with the field's name and its start offset —
// no partially decoded message is ever returned. A successful decode
// consumes exactly LengthInBits bits.
func (l *Layout) Decode(data []byte) (*Decoded, error) {
	rb := bitbuf.NewReadBuffer(data, l.Order)
	start := rb.Position()

	decoded := &Decoded{Layout: l.Name}
	for i, f := range l.Fields {
		switch f.Kind {
		case KindConst:
			cf := wire.ConstField{Name: f.Name, Width: f.Bits, Expected: f.Expected}
			if err := cf.Read(rb); err != nil {
				return nil, err
			}
		case KindUint:
			offset := rb.Position()
			v, err := wire.ReadUnsigned(rb, f.Name, f.Bits)
			if err != nil {
				return nil, err
			}
			decoded.Fields = append(decoded.Fields, FieldValue{
				Name:   f.Name,
				Offset: uint(offset),
				Bits:   f.Bits,
				Value:  v,
			})
		case KindReserved:
			rf := wire.ReservedField{Name: l.fieldName(i), Width: f.Bits, Filler: f.Expected}
			if err := rf.Read(rb, l.logger); err != nil {
				return nil, err
			}
		case KindPadding:
			// Padding is skipped without inspection: same consumption,
			// no check, no warning.
			rf := wire.ReservedField{Name: l.fieldName(i), Width: f.Bits}
			if err := rf.Read(rb, nil); err != nil {
				return nil, err
			}
		}
	}

	decoded.Bits = uint(rb.Position() - start)
	return decoded, nil
}
