package hexview

// ScrollPolicy controls how viewport scrolling is allowed to move relative to
// the caret.
type ScrollPolicy int

const (
	// ScrollAllowManual allows manual viewport scrolling (mouse wheel, scroll
	// bindings, scrollbar values) even when the caret does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCaretOnly keeps viewport movement caret-driven.
	// Manual viewport scrolling is ignored.
	ScrollFollowCaretOnly
)

func (p ScrollPolicy) String() string {
	switch p {
	case ScrollAllowManual:
		return "allow-manual"
	case ScrollFollowCaretOnly:
		return "follow-caret"
	default:
		return "unknown"
	}
}
