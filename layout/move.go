package layout

// MoveDirection is a caret movement intent.
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveRowStart
	MoveRowEnd
	MoveDocStart
	MoveDocEnd
	MoveSwitchSection
)

func (d MoveDirection) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MovePageUp:
		return "page-up"
	case MovePageDown:
		return "page-down"
	case MoveRowStart:
		return "row-start"
	case MoveRowEnd:
		return "row-end"
	case MoveDocStart:
		return "doc-start"
	case MoveDocEnd:
		return "doc-end"
	case MoveSwitchSection:
		return "switch-section"
	default:
		return "unknown"
	}
}

// ComputeMovePosition returns the caret position reached from pos by moving
// in dir. Moves past the document bounds are clamped. The append position
// (DataPosition == DataSize) is always reachable and has CodeOffset 0.
//
// It panics on a direction outside the MoveDirection constants.
func (s Structure) ComputeMovePosition(pos CaretPosition, dir MoveDirection, rowsPerPage int) CaretPosition {
	bpr := int64(s.bytesPerRow)
	if bpr < 1 {
		bpr = 1
	}
	dataSize := s.cfg.DataSize
	digits := 1
	if s.cfg.ViewMode.HasCode() {
		digits = s.cfg.CodeType.MaxDigitsForByte()
	}
	inCode := s.activeSection(pos.Section) == SectionCodeMatrix

	target := pos
	switch dir {
	case MoveLeft:
		if inCode {
			if pos.CodeOffset > 0 {
				target.CodeOffset = pos.CodeOffset - 1
			} else if pos.DataPosition > 0 {
				target.DataPosition = pos.DataPosition - 1
				target.CodeOffset = digits - 1
			}
		} else if pos.DataPosition > 0 {
			target.DataPosition = pos.DataPosition - 1
		}
	case MoveRight:
		if pos.DataPosition >= dataSize {
			break
		}
		if inCode && pos.CodeOffset < digits-1 {
			target.CodeOffset = pos.CodeOffset + 1
		} else {
			target.DataPosition = pos.DataPosition + 1
			target.CodeOffset = 0
		}
	case MoveUp:
		if pos.DataPosition >= bpr {
			target.DataPosition = pos.DataPosition - bpr
		}
	case MoveDown:
		if pos.DataPosition < dataSize-bpr || (pos.DataPosition == dataSize-bpr && pos.CodeOffset == 0) {
			target.DataPosition = pos.DataPosition + bpr
		}
	case MoveRowStart:
		target.DataPosition = pos.DataPosition - pos.DataPosition%bpr
		target.CodeOffset = 0
	case MoveRowEnd:
		increment := bpr - 1 - pos.DataPosition%bpr
		if pos.DataPosition >= dataSize-increment {
			target.DataPosition = dataSize
		} else {
			target.DataPosition = pos.DataPosition + increment
		}
		target.CodeOffset = 0
		if inCode && target.DataPosition != dataSize {
			target.CodeOffset = digits - 1
		}
	case MovePageUp:
		increment := pageIncrement(bpr, rowsPerPage)
		if pos.DataPosition < increment {
			target.DataPosition = pos.DataPosition % bpr
		} else {
			target.DataPosition = pos.DataPosition - increment
		}
	case MovePageDown:
		increment := pageIncrement(bpr, rowsPerPage)
		if pos.DataPosition <= dataSize-increment {
			target.DataPosition = pos.DataPosition + increment
			if target.DataPosition == dataSize {
				target.CodeOffset = 0
			}
			break
		}
		// Land on the last row in the same column; step back one row when the
		// last row is too short to have that column.
		positionOnRow := pos.DataPosition % bpr
		lastRowStart := dataSize - dataSize%bpr
		candidate := lastRowStart + positionOnRow
		if candidate > dataSize {
			candidate -= bpr
		}
		if candidate < pos.DataPosition {
			candidate = pos.DataPosition
		}
		target.DataPosition = candidate
		if candidate == dataSize {
			target.CodeOffset = 0
		}
	case MoveDocStart:
		target.DataPosition = 0
		target.CodeOffset = 0
	case MoveDocEnd:
		target.DataPosition = dataSize
		target.CodeOffset = 0
	case MoveSwitchSection:
		if s.cfg.ViewMode != ViewDual {
			break
		}
		if pos.Section == SectionCodeMatrix {
			target.Section = SectionTextPreview
			target.CodeOffset = 0
		} else {
			target.Section = SectionCodeMatrix
		}
	default:
		panic(invalidValue("move direction", dir))
	}
	return target
}

// pageIncrement returns bytesPerRow*rowsPerPage, saturating instead of
// overflowing.
func pageIncrement(bytesPerRow int64, rowsPerPage int) int64 {
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}
	rows := int64(rowsPerPage)
	if bytesPerRow > maxInt64/rows {
		return maxInt64
	}
	return bytesPerRow * rows
}

const maxInt64 = int64(^uint64(0) >> 1)
