// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// wirebit-encode serializes field values through a YAML layout
// definition and emits the wire bytes.
//
// Values are authored as a JSONC file (JSON with comments and
// trailing commas, the same dialect pipeline definitions use) mapping
// field names to numbers. Strings are accepted too and parsed with Go
// syntax, so hex values can be written naturally:
//
//	{
//	    // transaction chosen by the test harness
//	    "transactionId": "0xCAFE",
//	    "length": 6,
//	    "unitId": 17,
//	}
//
// The frame goes to --out as binary, or to stdout as hex.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/wirebit/lib/layout"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var layoutPath string
	var valuesPath string
	var outPath string

	flagSet := pflag.NewFlagSet("wirebit-encode", pflag.ContinueOnError)
	flagSet.StringVar(&layoutPath, "layout", "", "YAML layout definition (required)")
	flagSet.StringVar(&valuesPath, "values", "", "JSONC file of field values (required)")
	flagSet.StringVar(&outPath, "out", "", "write the frame to this file (default: hex to stdout)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if layoutPath == "" || valuesPath == "" {
		return fmt.Errorf("--layout and --values are required")
	}

	compiled, err := layout.LoadFile(layoutPath)
	if err != nil {
		return err
	}

	values, err := readValues(valuesPath)
	if err != nil {
		return err
	}

	frame, err := compiled.Encode(values)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, frame, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		return nil
	}
	fmt.Println(hex.EncodeToString(frame))
	return nil
}

// readValues parses a JSONC value file into the field→value map the
// layout encoder takes. Numbers must be unsigned integers; strings
// are parsed with Go syntax (0x.., 0b.., 0o.. prefixes work).
func readValues(path string) (map[string]uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// jsonc strips comments and trailing commas; the result is plain
	// JSON.
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	values := make(map[string]uint64, len(raw))
	for name, v := range raw {
		switch v := v.(type) {
		case json.Number:
			parsed, err := strconv.ParseUint(v.String(), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: field %q: %w", path, name, err)
			}
			values[name] = parsed
		case string:
			parsed, err := strconv.ParseUint(v, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: field %q: %w", path, name, err)
			}
			values[name] = parsed
		default:
			return nil, fmt.Errorf("%s: field %q: value must be an unsigned integer or string, got %T", path, name, v)
		}
	}
	return values, nil
}
