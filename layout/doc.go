// Package layout implements the pure structure model of a hexadecimal code
// area.
//
// A byte stream is laid out as a grid: every row holds BytesPerRow bytes,
// shown as a code section (digits in the active numeric base) and/or a
// preview section (one glyph per byte). Data offsets are 64-bit; character
// columns are 0-based and count from the left edge of a row.
package layout
