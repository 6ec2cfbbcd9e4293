// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package layout composes wire field codecs into whole-message codecs
// driven by data instead of generated code. A [Layout] is an ordered
// field program — constants, typed unsigned values, reserved filler,
// padding — authored in YAML the same way pipeline and config
// definitions are, compiled once, then interpreted against a bitbuf
// cursor for every decode or encode.
//
// A decode pass is a strict left-to-right walk: capture the starting
// cursor position, run each field's codec in declared order, abort on
// the first failure with that field's name and offset attached, and
// return the populated [Decoded] only after every field has parsed.
// There is no partial success — a message that fails at field five is
// not four fifths decoded, it is malformed. Encode mirrors the same
// order exactly, failing on the first value that cannot be
// represented in its declared width.
//
// Compile-time validation front-loads the errors that would otherwise
// corrupt frames at runtime: constants that do not fit their width,
// duplicate value-field names, little-endian fields with partial-byte
// widths, and — for layouts that declare byte alignment — a bit total
// that is not a multiple of 8.
package layout
