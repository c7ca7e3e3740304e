package hexview

import (
	"github.com/iw2rmb/codearea/layout"
	"github.com/iw2rmb/codearea/scroll"
)

// ViewportState is a stable host-facing snapshot of the visible window.
type ViewportState struct {
	// TopRow is the document row rendered at viewport screen row 0.
	TopRow int64
	// LeftColumn is the row character column rendered at screen column 0.
	LeftColumn int
	// VisibleRows and VisibleColumns are the viewport size in cells.
	VisibleRows    int
	VisibleColumns int
	// DisplayRows counts document rows including the append row.
	DisplayRows int64

	BytesPerRow      int
	CharactersPerRow int
	// PreviewColumn is the first preview column, or -1 without a preview.
	PreviewColumn int

	VerticalBar   bool
	HorizontalBar bool
	// ScrollBarValue is the vertical scrollbar value in [0, ScrollBarMax]
	// relative to ScrollBarMaximum.
	ScrollBarValue   int
	ScrollBarMaximum int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	s := m.structure.Structure()
	p := m.scroller.ScrollPosition()
	return ViewportState{
		TopRow:           p.RowPosition,
		LeftColumn:       p.CharPosition,
		VisibleRows:      m.height,
		VisibleColumns:   m.width,
		DisplayRows:      s.DisplayRows(),
		BytesPerRow:      s.BytesPerRow(),
		CharactersPerRow: s.CharactersPerRow(),
		PreviewColumn:    s.PreviewCharPos(),
		VerticalBar:      m.scroller.VerticalBarVisible(),
		HorizontalBar:    m.scroller.HorizontalBarVisible(),
		ScrollBarValue:   m.scroller.VerticalScrollValue(1, m.scrollRange()),
		ScrollBarMaximum: m.scrollBarMaximum(),
	}
}

// SetScrollBarValue scrolls to a vertical scrollbar value in
// [0, ScrollBarMaximum]. It is ignored under ScrollFollowCaretOnly.
func (m Model) SetScrollBarValue(value int) Model {
	if m.cfg.ScrollPolicy != ScrollAllowManual {
		return m
	}
	m.scroller.UpdateVerticalScrollBarValue(value, 1, m.scrollBarMaximum(), m.scrollRange())
	m.setScroll(m.scroller.ScrollPosition())
	m.notify()
	return m
}

// ScreenToCaret maps viewport-local screen coordinates to a caret position.
//
// Coordinates use terminal cells relative to the viewport.
func (m Model) ScreenToCaret(x, y int) layout.CaretPosition {
	return m.screenToCaret(x, y)
}

// CaretToScreen maps a caret position to viewport-local screen coordinates.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) CaretToScreen(pos layout.CaretPosition) (x int, y int, ok bool) {
	return m.caretToScreen(pos)
}

// scrollRange is the number of rows the viewport can scroll through.
func (m Model) scrollRange() int64 {
	return m.scroller.MaximumScrollPosition().RowPosition
}

func (m Model) scrollBarMaximum() int {
	if m.scroller.VerticalScale() == scroll.ScaleScaled {
		return scroll.ScrollBarMax
	}
	r := m.scrollRange()
	if r > scroll.ScrollBarMax {
		return scroll.ScrollBarMax
	}
	return int(r)
}
