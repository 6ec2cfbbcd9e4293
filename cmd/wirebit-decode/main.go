// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// wirebit-decode decodes a wire-format frame against a YAML layout
// definition and prints the decoded fields.
//
// The frame comes from --hex (whitespace-tolerant hex digits), from a
// binary file via --in, or from stdin when neither is given. Output
// formats: a field table (styled when stdout is a terminal), JSON,
// deterministic CBOR (for stored vectors), or CBOR diagnostic
// notation.
//
//	wirebit-decode --layout mbap.yaml --hex "cafe 0000 0006 11"
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/wirebit/lib/codec"
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
	var hexInput string
	var inPath string
	var format string

	flagSet := pflag.NewFlagSet("wirebit-decode", pflag.ContinueOnError)
	flagSet.StringVar(&layoutPath, "layout", "", "YAML layout definition (required)")
	flagSet.StringVar(&hexInput, "hex", "", "frame as hex digits (whitespace ignored)")
	flagSet.StringVar(&inPath, "in", "", "frame as a binary file (default: stdin)")
	flagSet.StringVar(&format, "format", "table", "output format: table, json, cbor, cbor-diag")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if layoutPath == "" {
		return fmt.Errorf("--layout is required")
	}
	if hexInput != "" && inPath != "" {
		return fmt.Errorf("--hex and --in are mutually exclusive")
	}

	compiled, err := layout.LoadFile(layoutPath)
	if err != nil {
		return err
	}
	compiled.SetLogger(newLogger())

	frame, err := readFrame(hexInput, inPath)
	if err != nil {
		return err
	}

	decoded, err := compiled.Decode(frame)
	if err != nil {
		return err
	}

	switch format {
	case "table":
		fmt.Print(renderTable(decoded))
	case "json":
		out, err := json.MarshalIndent(decoded, "", "  ")
		if err != nil {
			return fmt.Errorf("rendering JSON: %w", err)
		}
		fmt.Printf("%s\n", out)
	case "cbor":
		out, err := codec.Marshal(decoded)
		if err != nil {
			return fmt.Errorf("rendering CBOR: %w", err)
		}
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}
	case "cbor-diag":
		out, err := codec.Marshal(decoded)
		if err != nil {
			return fmt.Errorf("rendering CBOR: %w", err)
		}
		diag, err := codec.Diagnostic(out)
		if err != nil {
			return fmt.Errorf("rendering diagnostic notation: %w", err)
		}
		fmt.Println(diag)
	default:
		return fmt.Errorf("unknown format %q (want table, json, cbor, or cbor-diag)", format)
	}
	return nil
}

// newLogger builds the stderr logger used for reserved-field
// warnings: human-readable on a terminal, JSON when piped.
func newLogger() *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, options))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, options))
}

// readFrame resolves the input frame from --hex, --in, or stdin.
func readFrame(hexInput, inPath string) ([]byte, error) {
	if hexInput != "" {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\n' {
				return -1
			}
			return r
		}, hexInput)
		frame, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("parsing --hex: %w", err)
		}
		return frame, nil
	}
	if inPath != "" {
		frame, err := os.ReadFile(inPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", inPath, err)
		}
		return frame, nil
	}
	frame, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return frame, nil
}
