// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/wirebit/lib/layout"
)

func TestReadFrameHex(t *testing.T) {
	frame, err := readFrame("ca fe 00 00\n00 06 11", "")
	if err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	want := []byte{0xCA, 0xFE, 0x00, 0x00, 0x00, 0x06, 0x11}
	if !bytes.Equal(frame, want) {
		t.Errorf("readFrame = %x, want %x", frame, want)
	}
}

func TestReadFrameBadHex(t *testing.T) {
	if _, err := readFrame("zz", ""); err == nil {
		t.Fatal("readFrame accepted invalid hex")
	}
}

func TestRenderTable(t *testing.T) {
	decoded := &layout.Decoded{
		Layout: "mbap",
		Bits:   56,
		Fields: []layout.FieldValue{
			{Name: "transactionId", Offset: 0, Bits: 16, Value: 0xCAFE},
			{Name: "unitId", Offset: 48, Bits: 8, Value: 17},
		},
	}
	out := renderTable(decoded)

	for _, want := range []string{"mbap (56 bits)", "FIELD", "transactionId", "byte 6 bit 0", "0xcafe", "(17)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
