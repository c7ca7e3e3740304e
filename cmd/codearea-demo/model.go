package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codearea/hexview"
	"github.com/iw2rmb/codearea/internal/config"
	"github.com/iw2rmb/codearea/internal/glyph"
	"github.com/iw2rmb/codearea/layout"
)

type keyMap struct {
	Quit, CycleView, CycleCode, ToggleWrap key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		CycleView:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view mode")),
		CycleCode:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "code type")),
		ToggleWrap: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wrap")),
	}
}

type styles struct {
	even, odd lipgloss.Style
	preview   lipgloss.Style
	caret     lipgloss.Style
	selected  lipgloss.Style
	track     lipgloss.Style
	thumb     lipgloss.Style
	status    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		even:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}),
		odd:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#93C5FD"}),
		preview:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#047857", Dark: "#6EE7B7"}),
		caret:    lipgloss.NewStyle().Reverse(true),
		selected: lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "#FDE68A", Dark: "#78350F"}),
		track:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		thumb:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		status:   lipgloss.NewStyle().Faint(true),
	}
}

type model struct {
	view   hexview.Model
	data   []byte
	keys   keyMap
	styles styles

	width, height int
}

func newModel(cfg config.Config, data []byte) (model, error) {
	hv, err := cfg.Hexview(int64(len(data)))
	if err != nil {
		return model{}, err
	}
	return model{
		view:   hexview.New(hv),
		data:   data,
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view = m.view.SetSize(m.dataWidth(), m.dataHeight())
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.CycleView):
			mode := (m.view.Config().ViewMode + 1) % 3
			m.view = m.view.SetViewMode(mode)
			return m, nil
		case key.Matches(msg, m.keys.CycleCode):
			code := (m.view.Config().CodeType + 1) % 4
			m.view = m.view.SetCodeType(code)
			return m, nil
		case key.Matches(msg, m.keys.ToggleWrap):
			m.view = m.view.SetRowWrapping(1 - m.view.Config().RowWrapping)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// dataWidth leaves one column for the vertical scrollbar.
func (m model) dataWidth() int { return max(m.width-1, 0) }

// dataHeight leaves one row for the status line.
func (m model) dataHeight() int { return max(m.height-1, 0) }

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	st := m.view.ViewportState()
	s := m.view.Structure()
	bar := m.scrollbar(st)

	lines := make([]string, 0, m.height)
	for y := 0; y < st.VisibleRows; y++ {
		row := st.TopRow + int64(y)
		line := ""
		if row < st.DisplayRows {
			line = m.renderRow(s, row, st.LeftColumn, st.VisibleColumns)
		}
		pad := st.VisibleColumns - lipgloss.Width(line)
		if pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines = append(lines, line+bar[y])
	}
	lines = append(lines, m.styles.status.Render(glyph.Fit(m.statusLine(s), m.width)))
	return strings.Join(lines, "\n")
}

type cell struct {
	ch    rune
	style lipgloss.Style
}

func (m model) renderRow(s layout.Structure, row int64, left, cols int) string {
	cells := m.rowCells(s, row)
	var sb strings.Builder
	for c := left; c < left+cols && c < len(cells); c++ {
		sb.WriteString(cells[c].style.Render(string(cells[c].ch)))
	}
	return sb.String()
}

// rowCells lays out one document row: code digits, the dual mode separator,
// then preview glyphs.
func (m model) rowCells(s layout.Structure, row int64) []cell {
	bpr := s.BytesPerRow()
	cells := make([]cell, s.CharactersPerRow())
	for i := range cells {
		cells[i] = cell{ch: ' ', style: m.styles.even}
	}

	caret := m.view.Caret()
	caretCol := -1
	if s.CaretRow(caret) == row {
		caretCol = s.CaretCharPosition(caret)
	}
	sel, hasSel := m.view.Selection()

	start := row * int64(bpr)
	code := s.CodeType()
	digits := code.MaxDigitsForByte()
	var preview []rune
	if s.PreviewCharPos() >= 0 && start < int64(len(m.data)) {
		end := min(start+int64(bpr), int64(len(m.data)))
		preview = []rune(glyph.PreviewRow(m.data[start:end]))
	}

	for i := 0; i < bpr; i++ {
		pos := start + int64(i)
		if pos >= int64(len(m.data)) {
			break
		}
		selected := hasSel && sel.Contains(pos)
		if s.ViewMode().HasCode() {
			base := layout.ComputeFirstCodeCharacterPos(code, i)
			text := formatByte(m.data[pos], code, digits)
			style := m.styles.even
			if i%2 == 1 {
				style = m.styles.odd
			}
			if selected {
				style = style.Inherit(m.styles.selected)
			}
			for d, r := range text {
				cells[base+d] = cell{ch: r, style: style}
			}
		}
		if i < len(preview) {
			style := m.styles.preview
			if selected {
				style = style.Inherit(m.styles.selected)
			}
			cells[s.PreviewCharPos()+i] = cell{ch: preview[i], style: style}
		}
	}

	if caretCol >= 0 && caretCol < len(cells) {
		cells[caretCol].style = cells[caretCol].style.Inherit(m.styles.caret)
	}
	return cells
}

func formatByte(b byte, code layout.CodeType, digits int) string {
	text := strings.ToUpper(strconv.FormatUint(uint64(b), code.Base()))
	if len(text) < digits {
		text = strings.Repeat("0", digits-len(text)) + text
	}
	return text
}

// scrollbar returns one cell per data row, placing the thumb from the
// scrollbar value.
func (m model) scrollbar(st hexview.ViewportState) []string {
	out := make([]string, st.VisibleRows)
	if !st.VerticalBar || st.VisibleRows == 0 {
		for i := range out {
			out[i] = " "
		}
		return out
	}
	thumb := 0
	if st.ScrollBarMaximum > 0 {
		thumb = int(int64(st.ScrollBarValue) * int64(st.VisibleRows-1) / int64(st.ScrollBarMaximum))
	}
	for i := range out {
		if i == thumb {
			out[i] = m.styles.thumb.Render("█")
		} else {
			out[i] = m.styles.track.Render("│")
		}
	}
	return out
}

func (m model) statusLine(s layout.Structure) string {
	caret := m.view.Caret()
	status := fmt.Sprintf("offset 0x%X  row %d/%d  %s %s  %s",
		caret.DataPosition, s.CaretRow(caret)+1, s.DisplayRows(), s.ViewMode(), s.CodeType(), caret.Section)
	if sel, ok := m.view.Selection(); ok {
		status += fmt.Sprintf("  sel %d", sel.Length())
	}
	return status
}
