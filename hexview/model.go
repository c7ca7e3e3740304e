package hexview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/layout"
	"github.com/iw2rmb/codearea/scroll"
)

// Model is a Bubble Tea component that owns the caret, selection and scroll
// position of a hex code area.
//
// Terminal cells are the pixel unit: rows are 1 cell high and characters 1
// cell wide.
type Model struct {
	cfg Config

	structure *layout.Model
	scroller  *scroll.Model

	dataSize int64
	caret    layout.CaretPosition

	selecting bool
	anchor    int64
	selection layout.SelectionRange

	width, height int
	focused       bool

	mouseDragging bool

	lastEvent ChangeEvent
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:       cfg,
		structure: layout.NewModel(),
		scroller:  scroll.NewModel(),
		dataSize:  max(cfg.DataSize, 0),
		focused:   true,
	}
	m.caret.Section = m.defaultSection()
	m.recompute()
	m.lastEvent = m.buildChangeEvent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	m.recompute()
	m.revealCaret()
	m.notify()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.mouseDragging = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	default:
		return m, nil
	}
	m.notify()
	return m, nil
}

func (m Model) Config() Config { return m.cfg }

// Structure returns the geometry for the current size and configuration.
func (m Model) Structure() layout.Structure { return m.structure.Structure() }

func (m Model) DataSize() int64 { return m.dataSize }

// SetDataSize changes the document length, clamping the caret and selection
// into the new range.
func (m Model) SetDataSize(size int64) Model {
	m.dataSize = max(size, 0)
	if m.caret.DataPosition >= m.dataSize {
		m.caret.DataPosition = m.dataSize
		m.caret.CodeOffset = 0
	}
	if m.selecting {
		m.anchor = min(m.anchor, m.dataSize)
		m.selection = layout.SelectionRange{
			Start: min(m.selection.Start, m.dataSize),
			End:   min(m.selection.End, m.dataSize),
		}
	}
	m.recompute()
	m.notify()
	return m
}

func (m Model) Caret() layout.CaretPosition { return m.caret }

// SetCaret moves the caret, clears the selection and reveals the caret.
func (m Model) SetCaret(pos layout.CaretPosition) Model {
	m.caret = m.normalizeCaret(pos)
	m.clearSelection()
	m.recompute()
	m.revealCaret()
	m.notify()
	return m
}

// Selection returns the normalized selection; ok is false when nothing is
// selected.
func (m Model) Selection() (layout.SelectionRange, bool) {
	if !m.selecting || m.selection.IsEmpty() {
		return layout.SelectionRange{}, false
	}
	return m.selection.Normalize(), true
}

// SetSelection selects r and moves the caret to its end.
func (m Model) SetSelection(r layout.SelectionRange) Model {
	r.Start = clampData(r.Start, m.dataSize)
	r.End = clampData(r.End, m.dataSize)
	m.selecting = true
	m.anchor = r.Start
	m.selection = r
	m.caret = m.normalizeCaret(layout.CaretPosition{DataPosition: r.End, Section: m.caret.Section})
	m.recompute()
	m.revealCaret()
	m.notify()
	return m
}

func (m Model) ClearSelection() Model {
	m.clearSelection()
	m.recompute()
	m.notify()
	return m
}

func (m Model) ScrollPosition() scroll.Position { return m.scroller.ScrollPosition() }

// SetViewMode switches the visible sections, keeping the caret on the same
// byte.
func (m Model) SetViewMode(mode layout.ViewMode) Model {
	m.cfg.ViewMode = mode
	return m.reconfigure()
}

// SetCodeType switches the numeric base of the code section.
func (m Model) SetCodeType(codeType layout.CodeType) Model {
	m.cfg.CodeType = codeType
	return m.reconfigure()
}

// SetRowWrapping switches between fixed and page-width rows.
func (m Model) SetRowWrapping(wrapping layout.RowWrapping) Model {
	m.cfg.RowWrapping = wrapping
	return m.reconfigure()
}

// SetScrollConfig replaces the scroll units and scrollbar policies.
func (m Model) SetScrollConfig(cfg scroll.Config) Model {
	m.cfg.Scroll = cfg
	return m.reconfigure()
}

func (m Model) reconfigure() Model {
	m.caret = m.normalizeCaret(m.caret)
	m.recompute()
	m.revealCaret()
	m.notify()
	return m
}

func (m Model) layoutConfig() layout.Config {
	cfg := layout.Config{
		ViewMode:               m.cfg.ViewMode,
		CodeType:               m.cfg.CodeType,
		Caret:                  m.caret,
		DataSize:               m.dataSize,
		RowWrapping:            m.cfg.RowWrapping,
		MaxBytesPerRow:         m.cfg.MaxBytesPerRow,
		WrappingBytesGroupSize: m.cfg.WrappingBytesGroupSize,
	}
	if r, ok := m.Selection(); ok {
		cfg.Selection = r
	}
	return cfg
}

func (m Model) metrics() scroll.ViewMetrics {
	return scroll.ViewMetrics{
		RowHeight:      1,
		CharacterWidth: 1,
		DataViewWidth:  m.width,
		DataViewHeight: m.height,
	}
}

func (m Model) rowsPerPage() int { return max(m.height, 1) }

// recompute refreshes the cached geometry and the maximum scroll position.
func (m *Model) recompute() {
	m.structure.UpdateCache(m.layoutConfig(), m.width)
	m.scroller.UpdateCache(m.cfg.Scroll)

	s := m.structure.Structure()
	rows := s.DisplayRows()
	m.scroller.UpdateVerticalScale(rows, 1)
	m.scroller.UpdateMaximumForView(rows, s.CharactersPerRow(), m.metrics())
	m.scroller.SetScrollPosition(m.scroller.Clamp(m.scroller.ScrollPosition()))

	log.Debug(log.CatLayout, "recomputed",
		"bytesPerRow", s.BytesPerRow(),
		"rows", s.RowsPerDocument(),
		"charactersPerRow", s.CharactersPerRow(),
		"width", m.width,
		"height", m.height)
}

func (m *Model) revealCaret() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	s := m.structure.Structure()
	p, ok := m.scroller.ComputeRevealScrollPosition(s.CaretRow(m.caret), s.CaretCharPosition(m.caret), m.metrics())
	if !ok {
		return
	}
	m.setScroll(p)
}

func (m *Model) centerCaret() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	s := m.structure.Structure()
	m.setScroll(m.scroller.ComputeCenterOnScrollPosition(s.CaretRow(m.caret), s.CaretCharPosition(m.caret), m.metrics()))
}

func (m *Model) scrollBy(dir scroll.Direction) {
	start := m.scroller.ScrollPosition()
	m.setScroll(m.scroller.ComputeScrolling(start, dir, m.rowsPerPage(), m.structure.Structure().DisplayRows()))
}

func (m *Model) setScroll(p scroll.Position) {
	p = m.scroller.Clamp(p)
	if p == m.scroller.ScrollPosition() {
		return
	}
	m.scroller.SetScrollPosition(p)
	log.Debug(log.CatScroll, "scrolled", "row", p.RowPosition, "char", p.CharPosition)
}

func (m *Model) clearSelection() {
	m.selecting = false
	m.selection = layout.SelectionRange{}
}

func (m Model) defaultSection() layout.Section {
	if m.cfg.ViewMode == layout.ViewTextPreview {
		return layout.SectionTextPreview
	}
	return layout.SectionCodeMatrix
}

// normalizeCaret keeps pos inside the data and consistent with the view
// mode and code type.
func (m Model) normalizeCaret(pos layout.CaretPosition) layout.CaretPosition {
	pos.DataPosition = clampData(pos.DataPosition, m.dataSize)
	switch m.cfg.ViewMode {
	case layout.ViewCodeMatrix:
		pos.Section = layout.SectionCodeMatrix
	case layout.ViewTextPreview:
		pos.Section = layout.SectionTextPreview
	}
	digits := m.cfg.CodeType.MaxDigitsForByte()
	if pos.Section == layout.SectionTextPreview || pos.CodeOffset < 0 || pos.DataPosition == m.dataSize {
		pos.CodeOffset = 0
	}
	if pos.CodeOffset >= digits {
		pos.CodeOffset = digits - 1
	}
	return pos
}

func clampData(pos, size int64) int64 {
	if pos < 0 {
		return 0
	}
	if pos > size {
		return size
	}
	return pos
}
