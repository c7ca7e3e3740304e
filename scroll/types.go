package scroll

import (
	"fmt"
	"math"
)

// ScrollBarMax is the largest value a host scrollbar can represent.
const ScrollBarMax = math.MaxInt32

// VerticalUnit is the granularity of vertical scrolling.
type VerticalUnit int

const (
	VerticalUnitPixel VerticalUnit = iota
	VerticalUnitRow
)

func (u VerticalUnit) String() string {
	switch u {
	case VerticalUnitPixel:
		return "pixel"
	case VerticalUnitRow:
		return "row"
	default:
		return "unknown"
	}
}

// HorizontalUnit is the granularity of horizontal scrolling.
type HorizontalUnit int

const (
	HorizontalUnitPixel HorizontalUnit = iota
	HorizontalUnitCharacter
)

func (u HorizontalUnit) String() string {
	switch u {
	case HorizontalUnitPixel:
		return "pixel"
	case HorizontalUnitCharacter:
		return "character"
	default:
		return "unknown"
	}
}

// BarVisibility is the policy for showing a scrollbar.
type BarVisibility int

const (
	BarIfNeeded BarVisibility = iota
	BarNever
	BarAlways
)

func (v BarVisibility) String() string {
	switch v {
	case BarIfNeeded:
		return "if-needed"
	case BarNever:
		return "never"
	case BarAlways:
		return "always"
	default:
		return "unknown"
	}
}

// VerticalScale selects how row positions map onto the scrollbar range.
// Scaled maps documents whose extent exceeds ScrollBarMax proportionally.
type VerticalScale int

const (
	ScaleNormal VerticalScale = iota
	ScaleScaled
)

// Direction is a scroll step.
type Direction int

const (
	ScrollUp Direction = iota
	ScrollDown
	ScrollLeft
	ScrollRight
	ScrollPageUp
	ScrollPageDown
)

func (d Direction) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	case ScrollPageUp:
		return "page-up"
	case ScrollPageDown:
		return "page-down"
	default:
		return "unknown"
	}
}

// Visibility classifies how much of a cell the viewport shows. Values are
// ordered: NotVisible < Partial < Visible.
type Visibility int

const (
	NotVisible Visibility = iota
	Partial
	Visible
)

func (v Visibility) String() string {
	switch v {
	case NotVisible:
		return "not-visible"
	case Partial:
		return "partial"
	case Visible:
		return "visible"
	default:
		return "unknown"
	}
}

func invalidValue[T ~int](kind string, v T) string {
	return fmt.Sprintf("scroll: unexpected %s value %d", kind, int(v))
}
