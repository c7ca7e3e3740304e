// Package scroll implements the scrolling model of a code area: the live
// scroll position, conversions to and from host scrollbar values, and
// visibility, reveal and centering computations.
//
// A scroll position is two-part on each axis: a whole item (row or
// character) plus a pixel offset inside that item. Row positions are 64-bit
// so documents with more rows than fit an int32 scrollbar are supported.
package scroll

// Position is a scroll position.
//
// Offsets are in pixels, 0 <= offset < item size when the axis scrolls by
// pixel, and always 0 when the axis scrolls by whole items.
type Position struct {
	RowPosition  int64
	RowOffset    int
	CharPosition int
	CharOffset   int
}

// SetScrollPosition copies other into p.
func (p *Position) SetScrollPosition(other Position) {
	*p = other
}

func (p *Position) Reset() {
	*p = Position{}
}

// IsRowPositionGreaterThan compares the vertical parts lexicographically by
// (RowPosition, RowOffset).
func (p Position) IsRowPositionGreaterThan(other Position) bool {
	return p.RowPosition > other.RowPosition ||
		(p.RowPosition == other.RowPosition && p.RowOffset > other.RowOffset)
}

// IsCharPositionGreaterThan compares the horizontal parts lexicographically
// by (CharPosition, CharOffset).
func (p Position) IsCharPositionGreaterThan(other Position) bool {
	return p.CharPosition > other.CharPosition ||
		(p.CharPosition == other.CharPosition && p.CharOffset > other.CharOffset)
}
