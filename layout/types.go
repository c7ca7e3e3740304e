package layout

import "fmt"

// CodeType selects the numeric base used to render bytes in the code section.
type CodeType int

const (
	CodeHexadecimal CodeType = iota
	CodeDecimal
	CodeOctal
	CodeBinary
)

// MaxDigitsForByte returns the number of characters needed to render one
// byte in the code type's base.
func (c CodeType) MaxDigitsForByte() int {
	switch c {
	case CodeHexadecimal:
		return 2
	case CodeDecimal, CodeOctal:
		return 3
	case CodeBinary:
		return 8
	default:
		panic(invalidValue("code type", c))
	}
}

// Base returns the numeric base of the code type.
func (c CodeType) Base() int {
	switch c {
	case CodeHexadecimal:
		return 16
	case CodeDecimal:
		return 10
	case CodeOctal:
		return 8
	case CodeBinary:
		return 2
	default:
		panic(invalidValue("code type", c))
	}
}

func (c CodeType) String() string {
	switch c {
	case CodeHexadecimal:
		return "hexadecimal"
	case CodeDecimal:
		return "decimal"
	case CodeOctal:
		return "octal"
	case CodeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ViewMode selects which sections of the code area are shown.
type ViewMode int

const (
	ViewDual ViewMode = iota
	ViewCodeMatrix
	ViewTextPreview
)

func (v ViewMode) HasCode() bool { return v != ViewTextPreview }

func (v ViewMode) HasPreview() bool { return v != ViewCodeMatrix }

func (v ViewMode) String() string {
	switch v {
	case ViewDual:
		return "dual"
	case ViewCodeMatrix:
		return "code"
	case ViewTextPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Section identifies the part of a row the caret is in.
type Section int

const (
	SectionCodeMatrix Section = iota
	SectionTextPreview
)

func (s Section) String() string {
	switch s {
	case SectionCodeMatrix:
		return "code"
	case SectionTextPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// RowWrapping controls whether bytes per row follow the page width.
type RowWrapping int

const (
	WrappingOff RowWrapping = iota
	WrappingOn
)

// CaretPosition points at a data offset, a digit within the byte's code
// cell, and the active section.
//
// DataPosition may equal the data size: that is the append position after
// the last byte. CodeOffset is always 0 in the preview section.
type CaretPosition struct {
	DataPosition int64
	CodeOffset   int
	Section      Section
}

// SelectionRange is a half-open byte range: [Start, End).
// Start may be greater than End while a selection is being extended
// backwards; use Normalize before range arithmetic.
type SelectionRange struct {
	Start int64
	End   int64
}

func (r SelectionRange) Normalize() SelectionRange {
	if r.Start <= r.End {
		return r
	}
	return SelectionRange{Start: r.End, End: r.Start}
}

func (r SelectionRange) IsEmpty() bool { return r.Start == r.End }

func (r SelectionRange) Length() int64 {
	n := r.Normalize()
	return n.End - n.Start
}

// Contains reports whether the byte at pos is selected.
func (r SelectionRange) Contains(pos int64) bool {
	n := r.Normalize()
	return pos >= n.Start && pos < n.End
}

// ComparePos orders caret positions by data position, then code offset.
// Section is ignored.
func ComparePos(a, b CaretPosition) int {
	if a.DataPosition < b.DataPosition {
		return -1
	}
	if a.DataPosition > b.DataPosition {
		return 1
	}
	if a.CodeOffset < b.CodeOffset {
		return -1
	}
	if a.CodeOffset > b.CodeOffset {
		return 1
	}
	return 0
}

func invalidValue[T ~int](kind string, v T) string {
	return fmt.Sprintf("layout: unexpected %s value %d", kind, int(v))
}
