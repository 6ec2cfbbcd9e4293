// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides wirebit's standard CBOR encoding
// configuration.
//
// Two serialization formats appear in this repository, with a clear
// boundary:
//
//   - JSON for human-facing interfaces: CLI --format json output and
//     the JSONC value files fed to the encoder tool.
//   - CBOR for machine-compared artifacts: golden decode vectors in
//     tests and the decode tool's --format cbor output, which
//     downstream capture pipelines store and diff.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. The same decoded message always produces identical bytes,
// which is what makes stored vectors byte-comparable — a re-decode of
// the same frame either matches the golden file exactly or the codec
// changed behavior.
//
// Types serialized here carry `json` struct tags only: fxamacker/cbor
// reads them as fallback, so one tag controls naming for both
// formats. A `cbor` tag would signal a CBOR-only type, and wirebit
// has none.
package codec
