// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package modbus

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
	"github.com/bureau-foundation/wirebit/lib/wire"
)

// readHoldingRegisters is function code 0x03, start 0x006B, count 3 —
// the worked example from the Modbus messaging guide.
var readHoldingRegisters = []byte{0x03, 0x00, 0x6B, 0x00, 0x03}

func TestTCPHeaderRoundTrip(t *testing.T) {
	original := &TCPHeader{TransactionID: 0xCAFE, Length: 6, UnitID: 0x11}

	data, err := wire.Encode(original, bitbuf.BigEndian)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0xCA, 0xFE, 0x00, 0x00, 0x00, 0x06, 0x11}
	if !bytes.Equal(data, want) {
		t.Fatalf("Encode = %x, want %x", data, want)
	}

	rb := bitbuf.NewReadBuffer(data, bitbuf.BigEndian)
	decoded, err := ParseTCPHeader(rb)
	if err != nil {
		t.Fatalf("ParseTCPHeader: %v", err)
	}
	if *decoded != *original {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
	if uint(rb.Position()) != original.LengthInBits() {
		t.Errorf("parse consumed %d bits, LengthInBits = %d", rb.Position(), original.LengthInBits())
	}
}

func TestTCPHeaderProtocolIDMismatch(t *testing.T) {
	data := []byte{0xCA, 0xFE, 0x01, 0x02, 0x00, 0x06, 0x11}
	_, err := ParseTCPHeader(bitbuf.NewReadBuffer(data, bitbuf.BigEndian))
	if !errors.Is(err, wire.ErrConstantMismatch) {
		t.Fatalf("ParseTCPHeader = %v, want ErrConstantMismatch", err)
	}
	var fe *wire.FieldError
	if !errors.As(err, &fe) || fe.Field != "protocolId" || fe.Offset != 16 {
		t.Errorf("error = %v, want protocolId at offset 16", err)
	}
}

func TestTCPFrameRoundTrip(t *testing.T) {
	original := &TCPFrame{TransactionID: 1, UnitID: 0x11, PDU: readHoldingRegisters}

	data, err := wire.Encode(original, bitbuf.BigEndian)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Length field = unit id + 5 PDU bytes = 6.
	want := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x06, 0x11, 0x03, 0x00, 0x6B, 0x00, 0x03}
	if !bytes.Equal(data, want) {
		t.Fatalf("Encode = %x, want %x", data, want)
	}

	decoded, err := ParseTCPFrame(bitbuf.NewReadBuffer(data, bitbuf.BigEndian))
	if err != nil {
		t.Fatalf("ParseTCPFrame: %v", err)
	}
	if decoded.TransactionID != 1 || decoded.UnitID != 0x11 {
		t.Errorf("header = %+v", decoded)
	}
	if !bytes.Equal(decoded.PDU, readHoldingRegisters) {
		t.Errorf("PDU = %x, want %x", decoded.PDU, readHoldingRegisters)
	}
}

func TestTCPFrameEmptyPDU(t *testing.T) {
	original := &TCPFrame{TransactionID: 7, UnitID: 1}
	data, err := wire.Encode(original, bitbuf.BigEndian)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := ParseTCPFrame(bitbuf.NewReadBuffer(data, bitbuf.BigEndian))
	if err != nil {
		t.Fatalf("ParseTCPFrame: %v", err)
	}
	if len(decoded.PDU) != 0 {
		t.Errorf("PDU = %x, want empty", decoded.PDU)
	}
}

func TestTCPFrameTruncatedPDU(t *testing.T) {
	// Header declares 6 following bytes but only the unit id and two
	// PDU bytes are present.
	data := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x06, 0x11, 0x03, 0x00}
	_, err := ParseTCPFrame(bitbuf.NewReadBuffer(data, bitbuf.BigEndian))
	if !errors.Is(err, wire.ErrOutOfBounds) {
		t.Fatalf("ParseTCPFrame(truncated) = %v, want ErrOutOfBounds", err)
	}
	var fe *wire.FieldError
	if !errors.As(err, &fe) || fe.Field != "pdu" {
		t.Errorf("error = %v, want it to name the pdu field", err)
	}
}

func TestTCPFrameZeroLength(t *testing.T) {
	data := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x11}
	_, err := ParseTCPFrame(bitbuf.NewReadBuffer(data, bitbuf.BigEndian))
	if err == nil {
		t.Fatal("ParseTCPFrame accepted a zero length field")
	}
}
