package hexview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codearea/layout"
)

func click(m Model, x, y int, shift bool) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Shift: shift, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return m
}

func TestMouse_ClickPlacesCaret(t *testing.T) {
	m := newSized(1000)

	m = click(m, 5, 2, false)
	if got := m.Caret(); got != (layout.CaretPosition{DataPosition: 34, CodeOffset: 1}) {
		t.Fatalf("code click: got %+v", got)
	}

	m = click(m, 40, 1, false)
	want := layout.CaretPosition{DataPosition: 23, Section: layout.SectionTextPreview}
	if got := m.Caret(); got != want {
		t.Fatalf("preview click: got %+v, want %+v", got, want)
	}

	m = click(m, 79, 9, false)
	if got := m.Caret(); got != (layout.CaretPosition{DataPosition: 159, Section: layout.SectionTextPreview}) {
		t.Fatalf("click past row end: got %+v", got)
	}
}

func TestMouse_ClickOutsideBoundsIgnored(t *testing.T) {
	m := newSized(1000)
	m = click(m, 90, 2, false)
	if got := m.Caret(); got != (layout.CaretPosition{}) {
		t.Fatalf("out of bounds click moved caret to %+v", got)
	}
}

func TestMouse_ShiftClickAndDragSelect(t *testing.T) {
	m := newSized(1000)

	m = click(m, 0, 0, false)
	m = click(m, 36, 0, true)
	r, ok := m.Selection()
	if !ok || r != (layout.SelectionRange{Start: 0, End: 3}) {
		t.Fatalf("shift click selection: got %+v ok=%v", r, ok)
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, ok := m.Selection(); ok {
		t.Fatalf("plain press must clear selection")
	}
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	r, ok = m.Selection()
	if !ok || r != (layout.SelectionRange{Start: 0, End: 16}) {
		t.Fatalf("drag selection: got %+v ok=%v", r, ok)
	}

	// Motion after release does not extend the selection.
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 3, Action: tea.MouseActionMotion})
	if r, _ := m.Selection(); r.End != 16 {
		t.Fatalf("motion after release changed selection to %+v", r)
	}
}

func TestScreenToCaret_UsesScrollPosition(t *testing.T) {
	m := newSized(1000).SetScrollBarValue(20)
	if got := m.ScreenToCaret(0, 0); got.DataPosition != 320 {
		t.Fatalf("screen origin: got %+v, want data position 320", got)
	}
	if got := m.ScreenToCaret(0, 9); got.DataPosition != 464 {
		t.Fatalf("last screen row: got %+v, want data position 464", got)
	}
}
