package hexview

import (
	"github.com/iw2rmb/codearea/layout"
	"github.com/iw2rmb/codearea/scroll"
)

type ChangeEvent struct {
	Caret     layout.CaretPosition
	Selection struct {
		Range  layout.SelectionRange
		Active bool
	}
	Scroll   scroll.Position
	DataSize int64
}

func (m Model) buildChangeEvent() ChangeEvent {
	ev := ChangeEvent{
		Caret:    m.caret,
		Scroll:   m.scroller.ScrollPosition(),
		DataSize: m.dataSize,
	}
	if r, ok := m.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}

// notify fires OnChange when the observable state differs from the last
// event.
func (m *Model) notify() {
	ev := m.buildChangeEvent()
	if ev == m.lastEvent {
		return
	}
	m.lastEvent = ev
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
}
