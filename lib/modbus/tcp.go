// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package modbus

import (
	"fmt"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
	"github.com/bureau-foundation/wirebit/lib/wire"
)

// headerProtocolID is the MBAP protocol identifier, zero for Modbus.
// Anything else on the wire is not Modbus TCP.
var headerProtocolID = wire.ConstField{Name: "protocolId", Width: 16, Expected: 0x0000}

// TCPHeader is the MBAP header: transaction ID, the constant protocol
// ID, the count of bytes that follow the length field, and the unit
// (slave) identifier.
type TCPHeader struct {
	TransactionID uint16
	Length        uint16
	UnitID        uint8
}

// ParseTCPHeader decodes an MBAP header, consuming exactly 56 bits.
func ParseTCPHeader(rb *bitbuf.ReadBuffer) (*TCPHeader, error) {
	transactionID, err := wire.ReadUnsigned(rb, "transactionId", 16)
	if err != nil {
		return nil, err
	}
	if err := headerProtocolID.Read(rb); err != nil {
		return nil, err
	}
	length, err := wire.ReadUnsigned(rb, "length", 16)
	if err != nil {
		return nil, err
	}
	unitID, err := wire.ReadUnsigned(rb, "unitId", 8)
	if err != nil {
		return nil, err
	}
	return &TCPHeader{
		TransactionID: uint16(transactionID),
		Length:        uint16(length),
		UnitID:        uint8(unitID),
	}, nil
}

// LengthInBits is always 56: two 16-bit values, the 16-bit constant,
// and the 8-bit unit ID.
func (*TCPHeader) LengthInBits() uint { return 56 }

// Serialize writes the header in wire order.
func (h *TCPHeader) Serialize(wb *bitbuf.WriteBuffer) error {
	if err := wire.WriteUnsigned(wb, "transactionId", 16, uint64(h.TransactionID)); err != nil {
		return err
	}
	if err := headerProtocolID.Write(wb); err != nil {
		return err
	}
	if err := wire.WriteUnsigned(wb, "length", 16, uint64(h.Length)); err != nil {
		return err
	}
	return wire.WriteUnsigned(wb, "unitId", 8, uint64(h.UnitID))
}

// TCPFrame is a complete Modbus TCP ADU: the MBAP header fields plus
// the protocol data unit as raw bytes. The MBAP length field is not
// stored — it is implied by the PDU (unit ID byte plus PDU bytes) and
// recomputed on serialize, so a frame cannot be encoded with a length
// that disagrees with its payload.
type TCPFrame struct {
	TransactionID uint16
	UnitID        uint8
	PDU           []byte
}

// ParseTCPFrame decodes a full ADU. The header's length field
// determines the PDU size; a frame whose buffer ends before the
// declared length fails with wire.ErrOutOfBounds, and a length that
// cannot even cover the unit ID is rejected outright.
func ParseTCPFrame(rb *bitbuf.ReadBuffer) (*TCPFrame, error) {
	header, err := ParseTCPHeader(rb)
	if err != nil {
		return nil, err
	}
	if header.Length < 1 {
		return nil, fmt.Errorf("mbap length %d: must cover at least the unit id byte", header.Length)
	}
	start := rb.Position()
	pdu, err := rb.ReadBytes(uint(header.Length) - 1)
	if err != nil {
		return nil, &wire.FieldError{Field: "pdu", Offset: start, Err: err}
	}
	return &TCPFrame{
		TransactionID: header.TransactionID,
		UnitID:        header.UnitID,
		PDU:           pdu,
	}, nil
}

// LengthInBits is the header plus the PDU bytes.
func (f *TCPFrame) LengthInBits() uint {
	return (&TCPHeader{}).LengthInBits() + uint(len(f.PDU))*8
}

// Serialize writes the frame with the length field computed from the
// PDU.
func (f *TCPFrame) Serialize(wb *bitbuf.WriteBuffer) error {
	if len(f.PDU) > 0xFFFE {
		return &wire.FieldError{Field: "length", Offset: wb.Position() + 32, Err: wire.ErrValueTooLarge}
	}
	header := &TCPHeader{
		TransactionID: f.TransactionID,
		Length:        uint16(len(f.PDU) + 1),
		UnitID:        f.UnitID,
	}
	if err := header.Serialize(wb); err != nil {
		return err
	}
	if len(f.PDU) == 0 {
		return nil
	}
	start := wb.Position()
	if err := wb.WriteBytes(f.PDU); err != nil {
		return &wire.FieldError{Field: "pdu", Offset: start, Err: err}
	}
	return nil
}
