package hexview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/layout"
	"github.com/iw2rmb/codearea/scroll"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(layout.MoveLeft, false)
	case key.Matches(msg, km.Right):
		m.move(layout.MoveRight, false)
	case key.Matches(msg, km.Up):
		m.move(layout.MoveUp, false)
	case key.Matches(msg, km.Down):
		m.move(layout.MoveDown, false)

	case key.Matches(msg, km.ShiftLeft):
		m.move(layout.MoveLeft, true)
	case key.Matches(msg, km.ShiftRight):
		m.move(layout.MoveRight, true)
	case key.Matches(msg, km.ShiftUp):
		m.move(layout.MoveUp, true)
	case key.Matches(msg, km.ShiftDown):
		m.move(layout.MoveDown, true)

	case key.Matches(msg, km.PageUp):
		m.scrollBy(scroll.ScrollPageUp)
		m.move(layout.MovePageUp, false)
	case key.Matches(msg, km.PageDown):
		m.scrollBy(scroll.ScrollPageDown)
		m.move(layout.MovePageDown, false)

	case key.Matches(msg, km.Home):
		m.move(layout.MoveRowStart, false)
	case key.Matches(msg, km.End):
		m.move(layout.MoveRowEnd, false)
	case key.Matches(msg, km.ShiftHome):
		m.move(layout.MoveRowStart, true)
	case key.Matches(msg, km.ShiftEnd):
		m.move(layout.MoveRowEnd, true)
	case key.Matches(msg, km.DocStart):
		m.move(layout.MoveDocStart, false)
	case key.Matches(msg, km.DocEnd):
		m.move(layout.MoveDocEnd, false)

	case key.Matches(msg, km.SwitchSection):
		m.move(layout.MoveSwitchSection, false)
	case key.Matches(msg, km.SelectAll):
		m.selecting = true
		m.anchor = 0
		m.selection = layout.SelectionRange{Start: 0, End: m.dataSize}
		m.recompute()
	case key.Matches(msg, km.Center):
		m.centerCaret()

	case key.Matches(msg, km.ScrollUp):
		m.manualScroll(scroll.ScrollUp)
	case key.Matches(msg, km.ScrollDown):
		m.manualScroll(scroll.ScrollDown)
	case key.Matches(msg, km.ScrollLeft):
		m.manualScroll(scroll.ScrollLeft)
	case key.Matches(msg, km.ScrollRight):
		m.manualScroll(scroll.ScrollRight)
	}

	return m
}

// move applies a caret movement; extend grows the selection from its anchor
// instead of clearing it.
func (m *Model) move(dir layout.MoveDirection, extend bool) {
	next := m.structure.Structure().ComputeMovePosition(m.caret, dir, m.rowsPerPage())
	if extend {
		if !m.selecting {
			m.selecting = true
			m.anchor = m.caret.DataPosition
		}
		m.selection = layout.SelectionRange{Start: m.anchor, End: next.DataPosition}
	} else {
		m.clearSelection()
	}

	if next != m.caret {
		log.Debug(log.CatUI, "caret moved", "direction", dir, "position", next.DataPosition, "section", next.Section)
	}
	m.caret = next
	m.recompute()
	m.revealCaret()
}

func (m *Model) manualScroll(dir scroll.Direction) {
	if m.cfg.ScrollPolicy != ScrollAllowManual {
		return
	}
	m.scrollBy(dir)
}
