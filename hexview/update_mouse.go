package hexview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codearea/layout"
	"github.com/iw2rmb/codearea/scroll"
)

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if isManualScrollMouse(msg) {
		if m.cfg.ScrollPolicy == ScrollAllowManual {
			m.scrollBy(wheelDirection(msg.Button))
		}
		return m
	}

	if !m.focused {
		return m
	}

	// Only handle caret/selection changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m
		}

		p := m.screenToCaret(msg.X, msg.Y)
		if msg.Shift {
			if !m.selecting {
				m.selecting = true
				m.anchor = m.caret.DataPosition
			}
			m.selection = layout.SelectionRange{Start: m.anchor, End: p.DataPosition}
		} else {
			m.clearSelection()
			m.anchor = p.DataPosition
		}
		m.caret = p
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p := m.screenToCaret(x, y)
		m.selecting = true
		m.selection = layout.SelectionRange{Start: m.anchor, End: p.DataPosition}
		m.caret = p

	case tea.MouseActionRelease:
		m.mouseDragging = false
		return m

	default:
		return m
	}

	m.recompute()
	m.revealCaret()
	return m
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func wheelDirection(b tea.MouseButton) scroll.Direction {
	switch b { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		return scroll.ScrollUp
	case tea.MouseButtonWheelDown:
		return scroll.ScrollDown
	case tea.MouseButtonWheelLeft:
		return scroll.ScrollLeft
	default:
		return scroll.ScrollRight
	}
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.width > 0 {
		x = min(max(x, 0), m.width-1)
	}
	if m.height > 0 {
		y = min(max(y, 0), m.height-1)
	}
	return x, y
}
