// Package glyph maps data bytes to single-cell preview glyphs and slices
// painted rows by terminal cell.
package glyph

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Placeholder is shown for bytes without a printable single-cell glyph.
const Placeholder = '.'

// Printable reports whether r occupies exactly one terminal cell and is a
// visible character.
func Printable(r rune) bool {
	return unicode.IsPrint(r) && runewidth.RuneWidth(r) == 1
}

// Preview returns the preview glyph for b. Bytes are read as Latin-1 code
// points; controls and other non-printable values map to Placeholder.
func Preview(b byte) rune {
	r := rune(b)
	if r == ' ' || Printable(r) {
		return r
	}
	return Placeholder
}

// PreviewRow renders data as one preview glyph per byte.
func PreviewRow(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(Preview(b))
	}
	return sb.String()
}

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// SliceCells returns the cell-safe substring covering cells [start, end).
// A wide cluster straddling a boundary is dropped.
func SliceCells(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	g := uniseg.NewGraphemes(text)
	col := 0
	var sb strings.Builder
	for g.Next() {
		if col >= end {
			break
		}
		w := runewidth.StringWidth(g.Str())
		if col >= start && col+w <= end {
			sb.WriteString(g.Str())
		}
		col += w
	}
	return sb.String()
}

// Fit pads or truncates text to exactly width cells.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	fitted := SliceCells(text, 0, width)
	if pad := width - Width(fitted); pad > 0 {
		fitted += strings.Repeat(" ", pad)
	}
	return fitted
}
