package scroll

import "math/bits"

// Config is the scrolling configuration read from the host.
type Config struct {
	VerticalUnit            VerticalUnit
	HorizontalUnit          HorizontalUnit
	VerticalBarVisibility   BarVisibility
	HorizontalBarVisibility BarVisibility
}

func DefaultConfig() Config {
	return Config{
		VerticalUnit:            VerticalUnitPixel,
		HorizontalUnit:          HorizontalUnitPixel,
		VerticalBarVisibility:   BarIfNeeded,
		HorizontalBarVisibility: BarIfNeeded,
	}
}

// Model owns the live scroll position and the maximum legal position.
//
// Model is not safe for concurrent use; the host serializes all calls.
type Model struct {
	cfg   Config
	scale VerticalScale

	pos Position
	max Position
}

func NewModel() *Model {
	return &Model{cfg: DefaultConfig()}
}

// UpdateCache replaces the scrolling configuration. Offsets on axes that
// switch to whole-item units are dropped.
func (m *Model) UpdateCache(cfg Config) {
	m.cfg = cfg
	if !m.verticalPixel() {
		m.pos.RowOffset = 0
		m.max.RowOffset = 0
	}
	if !m.horizontalPixel() {
		m.pos.CharOffset = 0
		m.max.CharOffset = 0
	}
}

func (m *Model) Config() Config { return m.cfg }

func (m *Model) ScrollPosition() Position { return m.pos }

// SetScrollPosition replaces the live position. Negative positions become
// 0 and offsets on whole-item axes are dropped; the maximum is not applied,
// use Clamp for that.
func (m *Model) SetScrollPosition(p Position) {
	if p.RowPosition < 0 {
		p.RowPosition, p.RowOffset = 0, 0
	}
	if p.CharPosition < 0 {
		p.CharPosition, p.CharOffset = 0, 0
	}
	if p.RowOffset < 0 || !m.verticalPixel() {
		p.RowOffset = 0
	}
	if p.CharOffset < 0 || !m.horizontalPixel() {
		p.CharOffset = 0
	}
	m.pos.SetScrollPosition(p)
}

func (m *Model) MaximumScrollPosition() Position { return m.max }

// Clamp limits p to [0, MaximumScrollPosition] on both axes.
func (m *Model) Clamp(p Position) Position {
	if p.RowPosition < 0 {
		p.RowPosition, p.RowOffset = 0, 0
	}
	if p.CharPosition < 0 {
		p.CharPosition, p.CharOffset = 0, 0
	}
	if p.IsRowPositionGreaterThan(m.max) {
		p.RowPosition, p.RowOffset = m.max.RowPosition, m.max.RowOffset
	}
	if p.IsCharPositionGreaterThan(m.max) {
		p.CharPosition, p.CharOffset = m.max.CharPosition, m.max.CharOffset
	}
	return p
}

func (m *Model) VerticalScale() VerticalScale { return m.scale }

func (m *Model) SetVerticalScale(scale VerticalScale) { m.scale = scale }

// UpdateVerticalScale selects Scaled when the vertical scrollbar extent of
// the document (rows, or pixels with pixel units) exceeds ScrollBarMax.
func (m *Model) UpdateVerticalScale(rowsPerDocument int64, rowHeight int) VerticalScale {
	unit := int64(1)
	if m.verticalPixel() && rowHeight > 1 {
		unit = int64(rowHeight)
	}
	m.scale = ScaleNormal
	if rowsPerDocument > ScrollBarMax/unit {
		m.scale = ScaleScaled
	}
	return m.scale
}

// UpdateHorizontalScrollBarValue moves the live position to the host
// scrollbar value.
func (m *Model) UpdateHorizontalScrollBarValue(scrollBarValue, characterWidth int) {
	if scrollBarValue < 0 {
		scrollBarValue = 0
	}
	switch m.cfg.HorizontalUnit {
	case HorizontalUnitCharacter:
		m.pos.CharPosition = scrollBarValue
		m.pos.CharOffset = 0
	case HorizontalUnitPixel:
		if characterWidth <= 0 {
			m.pos.CharPosition, m.pos.CharOffset = 0, 0
			return
		}
		m.pos.CharPosition = scrollBarValue / characterWidth
		m.pos.CharOffset = scrollBarValue % characterWidth
	default:
		panic(invalidValue("horizontal scroll unit", m.cfg.HorizontalUnit))
	}
}

// UpdateVerticalScrollBarValue moves the live position to the host
// scrollbar value. In Scaled mode the value is mapped proportionally from
// [0, maxValue] onto [0, rowsPerDocumentToLastPage] without overflowing.
func (m *Model) UpdateVerticalScrollBarValue(scrollBarValue, rowHeight, maxValue int, rowsPerDocumentToLastPage int64) {
	if scrollBarValue < 0 {
		scrollBarValue = 0
	}
	if m.scale == ScaleScaled {
		m.pos.RowPosition = scaledRow(scrollBarValue, maxValue, rowsPerDocumentToLastPage)
		m.pos.RowOffset = 0
		return
	}

	switch m.cfg.VerticalUnit {
	case VerticalUnitRow:
		m.pos.RowPosition = int64(scrollBarValue)
		m.pos.RowOffset = 0
	case VerticalUnitPixel:
		if rowHeight <= 0 {
			m.pos.RowPosition, m.pos.RowOffset = 0, 0
			return
		}
		m.pos.RowPosition = int64(scrollBarValue / rowHeight)
		m.pos.RowOffset = scrollBarValue % rowHeight
	default:
		panic(invalidValue("vertical scroll unit", m.cfg.VerticalUnit))
	}
}

// scaledRow computes value * rows / maxValue. Splitting rows into quotient
// and remainder by maxValue keeps every product below 2^62.
func scaledRow(value, maxValue int, rows int64) int64 {
	if rows <= 0 {
		return 0
	}
	if maxValue <= 0 {
		maxValue = ScrollBarMax
	}
	if value > maxValue {
		value = maxValue
	}
	v, mv := int64(value), int64(maxValue)
	if rows > mv {
		return v*(rows/mv) + (rows%mv)*v/mv
	}
	return v * rows / mv
}

// VerticalScrollValue converts the live position to a host scrollbar value.
// In Scaled mode the row is mapped onto [0, ScrollBarMax] proportionally to
// rowsPerDocumentToLastPage using a 128-bit intermediate product.
func (m *Model) VerticalScrollValue(rowHeight int, rowsPerDocumentToLastPage int64) int {
	if m.scale == ScaleScaled {
		if rowsPerDocumentToLastPage <= 0 || m.pos.RowPosition <= 0 {
			return 0
		}
		row := m.pos.RowPosition
		if row > rowsPerDocumentToLastPage {
			row = rowsPerDocumentToLastPage
		}
		hi, lo := bits.Mul64(uint64(row), ScrollBarMax)
		q, _ := bits.Div64(hi, lo, uint64(rowsPerDocumentToLastPage))
		return int(q)
	}

	switch m.cfg.VerticalUnit {
	case VerticalUnitRow:
		return saturate(m.pos.RowPosition, 1, 0)
	case VerticalUnitPixel:
		return saturate(m.pos.RowPosition, rowHeight, m.pos.RowOffset)
	default:
		panic(invalidValue("vertical scroll unit", m.cfg.VerticalUnit))
	}
}

// HorizontalScrollValue converts the live position to a host scrollbar value.
func (m *Model) HorizontalScrollValue(characterWidth int) int {
	switch m.cfg.HorizontalUnit {
	case HorizontalUnitCharacter:
		return m.pos.CharPosition
	case HorizontalUnitPixel:
		return saturate(int64(m.pos.CharPosition), characterWidth, m.pos.CharOffset)
	default:
		panic(invalidValue("horizontal scroll unit", m.cfg.HorizontalUnit))
	}
}

// saturate returns position*size+offset capped at ScrollBarMax.
func saturate(position int64, size, offset int) int {
	if position <= 0 && offset <= 0 {
		return 0
	}
	if size < 1 {
		size = 1
	}
	if position > (ScrollBarMax-int64(offset))/int64(size) {
		return ScrollBarMax
	}
	return int(position*int64(size) + int64(offset))
}

// ComputeScrolling returns start moved by one item or one page in dir,
// clamped to [0, MaximumScrollPosition]. It panics on an unknown direction.
func (m *Model) ComputeScrolling(start Position, dir Direction, rowsPerPage int, rowsPerDocument int64) Position {
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}
	target := start
	switch dir {
	case ScrollUp:
		if start.RowPosition <= 0 {
			target.RowPosition, target.RowOffset = 0, 0
		} else {
			target.RowPosition = start.RowPosition - 1
		}
	case ScrollDown:
		if m.max.IsRowPositionGreaterThan(start) {
			target.RowPosition = start.RowPosition + 1
		}
	case ScrollLeft:
		if start.CharPosition <= 0 {
			target.CharPosition, target.CharOffset = 0, 0
		} else {
			target.CharPosition = start.CharPosition - 1
		}
	case ScrollRight:
		if m.max.IsCharPositionGreaterThan(start) {
			target.CharPosition = start.CharPosition + 1
		}
	case ScrollPageUp:
		if start.RowPosition < int64(rowsPerPage) {
			target.RowPosition, target.RowOffset = 0, 0
		} else {
			target.RowPosition = start.RowPosition - int64(rowsPerPage)
		}
	case ScrollPageDown:
		switch {
		case start.RowPosition <= rowsPerDocument-2*int64(rowsPerPage):
			target.RowPosition = start.RowPosition + int64(rowsPerPage)
		case rowsPerDocument > int64(rowsPerPage):
			target.RowPosition = rowsPerDocument - int64(rowsPerPage)
		default:
			target.RowPosition, target.RowOffset = 0, 0
		}
		if target.RowPosition < start.RowPosition {
			target = start
		}
	default:
		panic(invalidValue("scroll direction", dir))
	}
	return m.Clamp(target)
}

// UpdateMaximumScrollPosition recomputes the maximum legal scroll position.
//
// rowsPerPage and charactersPerPage count the items the view spans; with
// pixel units that includes a partially visible last item whose hidden
// pixels are lastRowOffset / lastCharOffset. Offsets only apply on pixel
// axes and only when the document does not fit the view.
func (m *Model) UpdateMaximumScrollPosition(rowsPerDocument int64, rowsPerPage, charactersPerRow, charactersPerPage, lastCharOffset, lastRowOffset int) {
	m.max.Reset()
	if rowsPerDocument >= int64(rowsPerPage) {
		m.max.RowPosition = rowsPerDocument - int64(atLeastZero(rowsPerPage))
		if m.verticalPixel() {
			m.max.RowOffset = atLeastZero(lastRowOffset)
		}
	}
	if charactersPerRow >= charactersPerPage {
		m.max.CharPosition = charactersPerRow - atLeastZero(charactersPerPage)
		if m.horizontalPixel() {
			m.max.CharOffset = atLeastZero(lastCharOffset)
		}
	}
}

// UpdateMaximumForView recomputes the maximum from view metrics, choosing
// page sizes and residual offsets that match the configured units.
func (m *Model) UpdateMaximumForView(rowsPerDocument int64, charactersPerRow int, vm ViewMetrics) {
	rowsPerPage, lastRowOffset := vm.RowsPerPage(), 0
	if m.verticalPixel() {
		rowsPerPage, lastRowOffset = vm.RowsPerRect(), vm.LastRowOffset()
	}
	charsPerPage, lastCharOffset := vm.CharactersPerPage(), 0
	if m.horizontalPixel() {
		charsPerPage, lastCharOffset = vm.CharactersPerRect(), vm.LastCharOffset()
	}
	m.UpdateMaximumScrollPosition(rowsPerDocument, rowsPerPage, charactersPerRow, charsPerPage, lastCharOffset, lastRowOffset)
}

// VerticalBarVisible resolves the vertical scrollbar policy against the
// current maximum.
func (m *Model) VerticalBarVisible() bool {
	return barVisible(m.cfg.VerticalBarVisibility, m.max.RowPosition > 0 || m.max.RowOffset > 0)
}

// HorizontalBarVisible resolves the horizontal scrollbar policy against the
// current maximum.
func (m *Model) HorizontalBarVisible() bool {
	return barVisible(m.cfg.HorizontalBarVisibility, m.max.CharPosition > 0 || m.max.CharOffset > 0)
}

func barVisible(policy BarVisibility, needed bool) bool {
	switch policy {
	case BarAlways:
		return true
	case BarNever:
		return false
	case BarIfNeeded:
		return needed
	default:
		panic(invalidValue("scrollbar visibility", policy))
	}
}

func (m *Model) verticalPixel() bool { return m.cfg.VerticalUnit == VerticalUnitPixel }

func (m *Model) horizontalPixel() bool { return m.cfg.HorizontalUnit == HorizontalUnitPixel }
