package scroll

// ComputePositionScrollVisibility classifies how much of the cell at
// (row, char) the viewport shows at the live scroll position.
func (m *Model) ComputePositionScrollVisibility(row int64, char int, vm ViewMetrics) Visibility {
	return positionVisibility(m.pos, row, char, vm)
}

func positionVisibility(p Position, row int64, char int, vm ViewMetrics) Visibility {
	v, h := vm.vertical(p), vm.horizontal(p)
	result := Visible
	for _, edge := range [...]Visibility{
		v.startVisibility(row),
		v.endVisibility(row),
		h.startVisibility(int64(char)),
		h.endVisibility(int64(char)),
	} {
		if edge == NotVisible {
			return NotVisible
		}
		if edge == Partial {
			result = Partial
		}
	}
	return result
}

// ComputeRevealScrollPosition returns the scroll position that brings the
// cell at (row, char) into view with the smallest movement. It reports false
// when the cell is already fully visible.
//
// A cell before the viewport is aligned to the viewport start, a cell after
// it flush to the viewport end.
func (m *Model) ComputeRevealScrollPosition(row int64, char int, vm ViewMetrics) (Position, bool) {
	target := m.pos

	rowPos, rowOff, rowMoved := vm.vertical(m.pos).reveal(row, m.verticalPixel())
	if rowMoved {
		target.RowPosition, target.RowOffset = rowPos, rowOff
	}
	charPos, charOff, charMoved := vm.horizontal(m.pos).reveal(int64(char), m.horizontalPixel())
	if charMoved {
		target.CharPosition, target.CharOffset = int(charPos), charOff
	}

	if target == m.pos {
		return Position{}, false
	}
	return target, true
}

// ComputeCenterOnScrollPosition returns the scroll position placing the
// cell at (row, char) in the middle of the viewport, clamped to
// [0, MaximumScrollPosition].
func (m *Model) ComputeCenterOnScrollPosition(row int64, char int, vm ViewMetrics) Position {
	var target Position
	v, h := vm.vertical(m.pos), vm.horizontal(m.pos)
	target.RowPosition, target.RowOffset = v.center(row, m.verticalPixel())
	pos, off := h.center(int64(char), m.horizontalPixel())
	target.CharPosition, target.CharOffset = int(pos), off
	return m.Clamp(target)
}
