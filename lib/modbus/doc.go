// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package modbus implements the Modbus TCP wire messages wirebit
// ships as built-in message types: the protocol constants record and
// the MBAP (Modbus application protocol) framing. Each type follows
// the same parse/serialize/length triple the rest of the codec is
// organized around — a Parse function consuming a read buffer, a
// Serialize method producing the identical bit count, and a pure
// LengthInBits.
//
// These types double as the reference implementation for hand-written
// message codecs over lib/wire, alongside the data-driven path in
// lib/layout: when the two disagree on a frame, one of them has a bit
// accounting bug and the cross-check tests catch it.
package modbus
