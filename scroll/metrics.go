package scroll

// ViewMetrics describes the data view in pixels.
//
// Terminal hosts use RowHeight = CharacterWidth = 1 and cell dimensions.
// Non-positive item sizes are treated as 1.
type ViewMetrics struct {
	RowHeight      int
	CharacterWidth int
	DataViewWidth  int
	DataViewHeight int
}

func (vm ViewMetrics) rowHeight() int { return atLeastOne(vm.RowHeight) }

func (vm ViewMetrics) characterWidth() int { return atLeastOne(vm.CharacterWidth) }

func (vm ViewMetrics) viewHeight() int { return atLeastZero(vm.DataViewHeight) }

func (vm ViewMetrics) viewWidth() int { return atLeastZero(vm.DataViewWidth) }

// RowsPerPage is the number of rows fully visible from a row boundary.
func (vm ViewMetrics) RowsPerPage() int { return vm.viewHeight() / vm.rowHeight() }

// RowsPerRect is the number of rows touched by the view, counting a
// partially visible last row.
func (vm ViewMetrics) RowsPerRect() int {
	rh := vm.rowHeight()
	return (vm.viewHeight() + rh - 1) / rh
}

func (vm ViewMetrics) CharactersPerPage() int { return vm.viewWidth() / vm.characterWidth() }

func (vm ViewMetrics) CharactersPerRect() int {
	cw := vm.characterWidth()
	return (vm.viewWidth() + cw - 1) / cw
}

// LastRowOffset is the number of pixels of the last touched row that fall
// outside the view, or 0 when the view height is a whole number of rows.
func (vm ViewMetrics) LastRowOffset() int {
	return hiddenRemainder(vm.viewHeight(), vm.rowHeight())
}

// LastCharOffset is the horizontal counterpart of LastRowOffset.
func (vm ViewMetrics) LastCharOffset() int {
	return hiddenRemainder(vm.viewWidth(), vm.characterWidth())
}

func (vm ViewMetrics) vertical(p Position) axis {
	return axis{position: p.RowPosition, offset: p.RowOffset, size: vm.rowHeight(), extent: vm.viewHeight()}
}

func (vm ViewMetrics) horizontal(p Position) axis {
	return axis{position: int64(p.CharPosition), offset: p.CharOffset, size: vm.characterWidth(), extent: vm.viewWidth()}
}

func hiddenRemainder(extent, size int) int {
	rem := extent % size
	if rem == 0 {
		return 0
	}
	return size - rem
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func atLeastZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
