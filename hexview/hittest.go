package hexview

import (
	"github.com/iw2rmb/codearea/layout"
	"github.com/iw2rmb/codearea/scroll"
)

// screenToCaret maps viewport-local cell coordinates to the nearest caret
// position.
func (m Model) screenToCaret(x, y int) layout.CaretPosition {
	x, y = max(x, 0), max(y, 0)
	p := m.scroller.ScrollPosition()
	pos := m.structure.Structure().PositionAt(p.RowPosition+int64(y), p.CharPosition+x)
	return m.normalizeCaret(pos)
}

// caretToScreen maps a caret position to viewport-local cell coordinates.
// ok is false unless the caret cell is fully visible.
func (m Model) caretToScreen(pos layout.CaretPosition) (x int, y int, ok bool) {
	s := m.structure.Structure()
	row, col := s.CaretRow(pos), s.CaretCharPosition(pos)
	if m.scroller.ComputePositionScrollVisibility(row, col, m.metrics()) != scroll.Visible {
		return 0, 0, false
	}
	p := m.scroller.ScrollPosition()
	return col - p.CharPosition, int(row - p.RowPosition), true
}
