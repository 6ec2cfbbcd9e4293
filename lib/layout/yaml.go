// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
)

// fileLayout is the YAML form of a layout definition. The on-disk
// schema is deliberately close to the compiled form; the only
// translations are the byte-order string and the optional expected
// value (a pointer so a missing value is distinguishable from an
// explicit zero — const fields require one, reserved fields default
// to zero filler).
type fileLayout struct {
	Name        string      `yaml:"name"`
	ByteOrder   string      `yaml:"byte_order"`
	ByteAligned bool        `yaml:"byte_aligned"`
	Fields      []fileField `yaml:"fields"`
}

type fileField struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`
	Bits     uint    `yaml:"bits"`
	Expected *uint64 `yaml:"expected"`
}

// Parse unmarshals a YAML layout definition, compiles it, and
// validates it. Definitions look like:
//
//	name: modbus-constants
//	byte_order: big
//	byte_aligned: true
//	fields:
//	  - name: modbusTcpDefaultPort
//	    kind: const
//	    bits: 16
//	    expected: 502
func Parse(data []byte) (*Layout, error) {
	var file fileLayout
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	var order bitbuf.ByteOrder
	switch file.ByteOrder {
	case "", "big":
		order = bitbuf.BigEndian
	case "little":
		order = bitbuf.LittleEndian
	default:
		return nil, fmt.Errorf("%w: byte_order %q (want big or little)", ErrLayout, file.ByteOrder)
	}

	compiled := &Layout{
		Name:        file.Name,
		Order:       order,
		ByteAligned: file.ByteAligned,
		Fields:      make([]FieldDef, 0, len(file.Fields)),
	}
	for i, f := range file.Fields {
		def := FieldDef{
			Name: f.Name,
			Kind: FieldKind(f.Kind),
			Bits: f.Bits,
		}
		if f.Expected != nil {
			def.Expected = *f.Expected
		} else if def.Kind == KindConst {
			return nil, fmt.Errorf("%w: const field %d (%s) has no expected value", ErrLayout, i, f.Name)
		}
		compiled.Fields = append(compiled.Fields, def)
	}

	if err := compiled.Validate(); err != nil {
		return nil, err
	}
	return compiled, nil
}

// LoadFile reads and parses a YAML layout definition from disk.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	compiled, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return compiled, nil
}
