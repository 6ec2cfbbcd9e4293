// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
)

var testPort = ConstField{Name: "modbusTcpDefaultPort", Width: 16, Expected: 502}

func TestConstFieldValidate(t *testing.T) {
	if err := testPort.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	bad := ConstField{Name: "tooWide", Width: 4, Expected: 16}
	if err := bad.Validate(); !errors.Is(err, ErrValueTooLarge) {
		t.Errorf("Validate(expected 16 in 4 bits) = %v, want ErrValueTooLarge", err)
	}
	zero := ConstField{Name: "zeroWidth", Width: 0, Expected: 0}
	if err := zero.Validate(); !errors.Is(err, bitbuf.ErrWidth) {
		t.Errorf("Validate(width 0) = %v, want ErrWidth", err)
	}
}

func TestConstFieldRoundTrip(t *testing.T) {
	wb := bitbuf.NewWriteBuffer(bitbuf.BigEndian)
	if err := testPort.Write(wb); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(wb.Bytes(), []byte{0x01, 0xF6}) {
		t.Fatalf("Write produced %x, want 01f6", wb.Bytes())
	}

	rb := bitbuf.NewReadBuffer(wb.Bytes(), bitbuf.BigEndian)
	if err := testPort.Read(rb); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rb.Position() != bitbuf.Offset(testPort.Width) {
		t.Errorf("Read advanced %d bits, Write produced %d", rb.Position(), wb.Position())
	}
}

func TestConstFieldMismatch(t *testing.T) {
	// 0x017F = 383 on the wire where the format demands 502.
	rb := bitbuf.NewReadBuffer([]byte{0x01, 0x7F}, bitbuf.BigEndian)
	err := testPort.Read(rb)
	if !errors.Is(err, ErrConstantMismatch) {
		t.Fatalf("Read = %v, want ErrConstantMismatch", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Read error %T does not carry a *FieldError", err)
	}
	if fe.Field != "modbusTcpDefaultPort" {
		t.Errorf("Field = %q, want modbusTcpDefaultPort", fe.Field)
	}
	if fe.Expected != 502 || fe.Actual != 383 {
		t.Errorf("Expected/Actual = %d/%d, want 502/383", fe.Expected, fe.Actual)
	}
	if fe.Offset != 0 {
		t.Errorf("Offset = %v, want position at field start (0)", fe.Offset)
	}
}

func TestConstFieldMismatchOffsetMidMessage(t *testing.T) {
	rb := bitbuf.NewReadBuffer([]byte{0xAA, 0x01, 0x7F}, bitbuf.BigEndian)
	if _, err := ReadUnsigned(rb, "unitId", 8); err != nil {
		t.Fatalf("ReadUnsigned: %v", err)
	}
	err := testPort.Read(rb)
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Read = %v, want *FieldError", err)
	}
	if fe.Offset != 8 {
		t.Errorf("Offset = %d, want 8 (start of the constant field)", fe.Offset)
	}
	if got := fe.Error(); !strings.Contains(got, "byte 1 bit 0") {
		t.Errorf("Error() = %q, want it to name byte 1 bit 0", got)
	}
}

func TestConstFieldShortBuffer(t *testing.T) {
	rb := bitbuf.NewReadBuffer([]byte{0x01}, bitbuf.BigEndian)
	err := testPort.Read(rb)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Read from 8-bit buffer = %v, want ErrOutOfBounds", err)
	}
	if rb.Position() != 0 {
		t.Errorf("failed read moved cursor to %d", rb.Position())
	}
	if !strings.Contains(err.Error(), "modbusTcpDefaultPort") {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestReservedFieldMismatchTolerated(t *testing.T) {
	reserved := ReservedField{Name: "reserved", Width: 8, Filler: 0x00}
	rb := bitbuf.NewReadBuffer([]byte{0xFF, 0x42}, bitbuf.BigEndian)

	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, nil))

	if err := reserved.Read(rb, logger); err != nil {
		t.Fatalf("Read: mismatching filler must not fail, got %v", err)
	}
	if rb.Position() != 8 {
		t.Fatalf("Position = %d, want 8 (field consumed despite mismatch)", rb.Position())
	}
	if !strings.Contains(logged.String(), "reserved field") {
		t.Errorf("mismatch was not logged: %q", logged.String())
	}

	// Decoding continues past the reserved field.
	got, err := ReadUnsigned(rb, "next", 8)
	if err != nil {
		t.Fatalf("ReadUnsigned after reserved: %v", err)
	}
	if got != 0x42 {
		t.Errorf("field after reserved = %#x, want 0x42", got)
	}
}

func TestReservedFieldNilLogger(t *testing.T) {
	reserved := ReservedField{Name: "reserved", Width: 4, Filler: 0x0}
	rb := bitbuf.NewReadBuffer([]byte{0xF0}, bitbuf.BigEndian)
	if err := reserved.Read(rb, nil); err != nil {
		t.Fatalf("Read with nil logger: %v", err)
	}
}

func TestReservedFieldWrite(t *testing.T) {
	reserved := ReservedField{Name: "reserved", Width: 8, Filler: 0x00}
	wb := bitbuf.NewWriteBuffer(bitbuf.BigEndian)
	if err := reserved.Write(wb); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(wb.Bytes(), []byte{0x00}) {
		t.Errorf("Write produced %x, want 00", wb.Bytes())
	}
}

func TestUnsignedPair(t *testing.T) {
	wb := bitbuf.NewWriteBuffer(bitbuf.BigEndian)
	if err := WriteUnsigned(wb, "transactionId", 16, 0xCAFE); err != nil {
		t.Fatalf("WriteUnsigned: %v", err)
	}
	rb := bitbuf.NewReadBuffer(wb.Bytes(), bitbuf.BigEndian)
	got, err := ReadUnsigned(rb, "transactionId", 16)
	if err != nil {
		t.Fatalf("ReadUnsigned: %v", err)
	}
	if got != 0xCAFE {
		t.Errorf("round trip = %#x, want 0xcafe", got)
	}
}

func TestWriteUnsignedTooLarge(t *testing.T) {
	wb := bitbuf.NewWriteBuffer(bitbuf.BigEndian)
	err := WriteUnsigned(wb, "unitId", 8, 256)
	if !errors.Is(err, ErrValueTooLarge) {
		t.Fatalf("WriteUnsigned(8, 256) = %v, want ErrValueTooLarge", err)
	}
	if !strings.Contains(err.Error(), "unitId") {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestBoolPair(t *testing.T) {
	wb := bitbuf.NewWriteBuffer(bitbuf.BigEndian)
	for _, v := range []bool{true, false, true} {
		if err := WriteBool(wb, "flag", v); err != nil {
			t.Fatalf("WriteBool: %v", err)
		}
	}
	rb := bitbuf.NewReadBuffer(wb.Bytes(), bitbuf.BigEndian)
	for i, want := range []bool{true, false, true} {
		got, err := ReadBool(rb, "flag")
		if err != nil {
			t.Fatalf("ReadBool %d: %v", i, err)
		}
		if got != want {
			t.Errorf("bit %d = %v, want %v", i, got, want)
		}
	}
}
