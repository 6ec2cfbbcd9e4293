// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package modbus

import (
	"github.com/bureau-foundation/wirebit/lib/bitbuf"
	"github.com/bureau-foundation/wirebit/lib/wire"
)

// TCPDefaultPort is the IANA-registered TCP port for Modbus.
const TCPDefaultPort uint16 = 502

// constantsPort is the single field of the Constants message. Shared
// by every parse and serialize call; never mutated.
var constantsPort = wire.ConstField{
	Name:     "modbusTcpDefaultPort",
	Width:    16,
	Expected: uint64(TCPDefaultPort),
}

// Constants is the protocol-constants message: a 16-bit record whose
// only field is the constant default port. Decoding one validates
// that the peer speaks the same protocol revision; the value itself
// carries no information, so the struct is empty.
type Constants struct{}

// ParseConstants decodes a Constants message at the buffer's current
// position, consuming exactly 16 bits. A wire value other than 502
// fails with wire.ErrConstantMismatch.
func ParseConstants(rb *bitbuf.ReadBuffer) (*Constants, error) {
	if err := constantsPort.Read(rb); err != nil {
		return nil, err
	}
	return &Constants{}, nil
}

// LengthInBits is always 16: one constant field.
func (*Constants) LengthInBits() uint { return 16 }

// Serialize writes the constant port, unconditionally.
func (*Constants) Serialize(wb *bitbuf.WriteBuffer) error {
	return constantsPort.Write(wb)
}
