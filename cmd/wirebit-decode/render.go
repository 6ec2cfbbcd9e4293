// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/bureau-foundation/wirebit/lib/bitbuf"
	"github.com/bureau-foundation/wirebit/lib/layout"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	offsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderTable renders the decoded fields as an aligned table. Styling
// is applied only when stdout is a terminal; piped output is plain
// text with the same columns.
func renderTable(decoded *layout.Decoded) string {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	paint := func(style lipgloss.Style, s string) string {
		if !styled {
			return s
		}
		return style.Render(s)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "%s (%d bits)\n",
		paint(headerStyle, decoded.Layout), decoded.Bits)

	nameWidth := len("FIELD")
	for _, f := range decoded.Fields {
		if len(f.Name) > nameWidth {
			nameWidth = len(f.Name)
		}
	}

	fmt.Fprintf(&out, "  %-*s  %-14s  %5s  %s\n", nameWidth, "FIELD", "OFFSET", "BITS", "VALUE")
	for _, f := range decoded.Fields {
		offset := bitbuf.Offset(f.Offset).String()
		fmt.Fprintf(&out, "  %s  %s  %5d  %#x (%d)\n",
			paint(nameStyle, fmt.Sprintf("%-*s", nameWidth, f.Name)),
			paint(offsetStyle, fmt.Sprintf("%-14s", offset)),
			f.Bits, f.Value, f.Value)
	}
	return out.String()
}
