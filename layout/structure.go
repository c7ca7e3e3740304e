package layout

// Config is the editor configuration the structure is computed from.
//
// The host fills it before every UpdateCache call.
type Config struct {
	ViewMode ViewMode
	CodeType CodeType

	Caret CaretPosition
	// Selection is inactive when empty.
	Selection SelectionRange

	DataSize int64

	RowWrapping RowWrapping
	// MaxBytesPerRow is the row width when wrapping is off and the cap on
	// computed widths when wrapping is on (0 means no cap).
	MaxBytesPerRow int
	// WrappingBytesGroupSize restricts wrapped rows to multiples of the group.
	WrappingBytesGroupSize int
}

// DefaultConfig returns a dual view, hexadecimal, 16 bytes per row layout.
func DefaultConfig() Config {
	return Config{
		ViewMode:       ViewDual,
		CodeType:       CodeHexadecimal,
		RowWrapping:    WrappingOff,
		MaxBytesPerRow: 16,
	}
}

// Structure is the grid geometry computed from a Config.
//
// A Structure is immutable; recompute it with Compute (or Model.UpdateCache)
// after any configuration change.
type Structure struct {
	cfg Config

	bytesPerRow              int
	charactersPerRow         int
	charactersPerCodeSection int
	rowsPerDocument          int64

	codeLastCharPos int
	previewCharPos  int
}

// Compute derives the grid geometry for cfg on a page charactersPerPage
// columns wide.
func Compute(cfg Config, charactersPerPage int) Structure {
	s := Structure{cfg: cfg}
	if s.cfg.DataSize < 0 {
		s.cfg.DataSize = 0
	}

	s.bytesPerRow = ComputeBytesPerRow(cfg, charactersPerPage)
	s.charactersPerRow = ComputeCharactersPerRow(cfg.ViewMode, cfg.CodeType, s.bytesPerRow)
	s.rowsPerDocument = ComputeRowsPerDocument(s.cfg.DataSize, s.bytesPerRow)

	s.codeLastCharPos = -1
	s.previewCharPos = -1
	if cfg.ViewMode.HasCode() {
		s.charactersPerCodeSection = ComputeFirstCodeCharacterPos(cfg.CodeType, s.bytesPerRow)
		s.codeLastCharPos = s.charactersPerCodeSection - 1
	}
	switch cfg.ViewMode {
	case ViewDual:
		s.previewCharPos = s.charactersPerCodeSection + 1
	case ViewTextPreview:
		s.previewCharPos = 0
	}
	return s
}

// ComputeBytesPerRow returns the number of bytes shown on one row. The
// result is always at least 1.
func ComputeBytesPerRow(cfg Config, charactersPerPage int) int {
	bytesPerRow := cfg.MaxBytesPerRow
	if cfg.RowWrapping == WrappingOn {
		bytesPerRow = computeFittingBytes(cfg.ViewMode, cfg.CodeType, charactersPerPage)
		if cfg.MaxBytesPerRow > 0 && bytesPerRow > cfg.MaxBytesPerRow {
			bytesPerRow = cfg.MaxBytesPerRow
		}
		if group := cfg.WrappingBytesGroupSize; group > 1 {
			bytesPerRow -= bytesPerRow % group
		}
	}
	if bytesPerRow < 1 {
		bytesPerRow = 1
	}
	return bytesPerRow
}

func computeFittingBytes(mode ViewMode, codeType CodeType, charactersPerPage int) int {
	charactersPerByte := 0
	if mode.HasCode() {
		charactersPerByte += codeType.MaxDigitsForByte()
	}
	if mode.HasPreview() {
		charactersPerByte++
	}

	available := charactersPerPage
	if mode == ViewDual {
		available--
	}
	if available <= 0 {
		return 0
	}
	return available / charactersPerByte
}

// ComputeCharactersPerRow returns the row width in characters: the code
// cells, one separator column in dual mode, then one preview glyph per byte.
func ComputeCharactersPerRow(mode ViewMode, codeType CodeType, bytesPerRow int) int {
	switch mode {
	case ViewDual:
		return ComputeFirstCodeCharacterPos(codeType, bytesPerRow) + 1 + bytesPerRow
	case ViewCodeMatrix:
		return ComputeFirstCodeCharacterPos(codeType, bytesPerRow)
	case ViewTextPreview:
		return bytesPerRow
	default:
		panic(invalidValue("view mode", mode))
	}
}

// ComputeFirstCodeCharacterPos returns the first code column of the byte at
// byteOffset within a row.
func ComputeFirstCodeCharacterPos(codeType CodeType, byteOffset int) int {
	return byteOffset * codeType.MaxDigitsForByte()
}

// ComputeRowsPerDocument returns ceil(dataSize / bytesPerRow).
func ComputeRowsPerDocument(dataSize int64, bytesPerRow int) int64 {
	if dataSize <= 0 || bytesPerRow <= 0 {
		return 0
	}
	bpr := int64(bytesPerRow)
	rows := dataSize / bpr
	if dataSize%bpr > 0 {
		rows++
	}
	return rows
}

func (s Structure) Config() Config { return s.cfg }

func (s Structure) ViewMode() ViewMode { return s.cfg.ViewMode }

func (s Structure) CodeType() CodeType { return s.cfg.CodeType }

func (s Structure) Caret() CaretPosition { return s.cfg.Caret }

func (s Structure) Selection() (SelectionRange, bool) {
	if s.cfg.Selection.IsEmpty() {
		return SelectionRange{}, false
	}
	return s.cfg.Selection.Normalize(), true
}

func (s Structure) DataSize() int64 { return s.cfg.DataSize }

func (s Structure) BytesPerRow() int { return s.bytesPerRow }

func (s Structure) CharactersPerRow() int { return s.charactersPerRow }

func (s Structure) CharactersPerCodeSection() int { return s.charactersPerCodeSection }

func (s Structure) RowsPerDocument() int64 { return s.rowsPerDocument }

// CodeLastCharPos is the last column of the code section, or -1 when the
// code section is hidden.
func (s Structure) CodeLastCharPos() int { return s.codeLastCharPos }

// PreviewCharPos is the first column of the preview section, or -1 when the
// preview section is hidden.
func (s Structure) PreviewCharPos() int { return s.previewCharPos }

// DisplayRows returns the number of rows needed to show every caret
// position. It exceeds RowsPerDocument by one when the append position
// starts a new row.
func (s Structure) DisplayRows() int64 {
	if s.bytesPerRow <= 0 {
		return 1
	}
	if s.cfg.DataSize%int64(s.bytesPerRow) == 0 {
		return s.rowsPerDocument + 1
	}
	return s.rowsPerDocument
}

// CaretRow returns the row holding pos.
func (s Structure) CaretRow(pos CaretPosition) int64 {
	if s.bytesPerRow <= 0 || pos.DataPosition <= 0 {
		return 0
	}
	return pos.DataPosition / int64(s.bytesPerRow)
}

// CaretCharPosition returns the character column of pos within its row.
func (s Structure) CaretCharPosition(pos CaretPosition) int {
	if s.bytesPerRow <= 0 {
		return 0
	}
	byteInRow := int(pos.DataPosition % int64(s.bytesPerRow))
	if byteInRow < 0 {
		byteInRow = 0
	}
	if s.activeSection(pos.Section) == SectionCodeMatrix {
		digits := s.cfg.CodeType.MaxDigitsForByte()
		return ComputeFirstCodeCharacterPos(s.cfg.CodeType, byteInRow) + clampInt(pos.CodeOffset, 0, digits-1)
	}
	return s.previewCharPos + byteInRow
}

// SectionAt reports which section the character column charPos belongs to.
// ok is false for the dual mode separator column and columns past the row.
func (s Structure) SectionAt(charPos int) (section Section, ok bool) {
	if charPos < 0 {
		return SectionCodeMatrix, false
	}
	if s.cfg.ViewMode.HasCode() && charPos <= s.codeLastCharPos {
		return SectionCodeMatrix, true
	}
	if s.cfg.ViewMode.HasPreview() && charPos >= s.previewCharPos && charPos < s.previewCharPos+s.bytesPerRow {
		return SectionTextPreview, true
	}
	return SectionCodeMatrix, false
}

// PositionAt maps a row and character column to the nearest caret position.
// Columns outside the sections snap to the closest byte; positions past the
// data snap to the append position.
func (s Structure) PositionAt(row int64, charPos int) CaretPosition {
	if s.bytesPerRow <= 0 {
		return CaretPosition{}
	}
	if row < 0 {
		row = 0
	}
	if row > s.rowsPerDocument {
		row = s.rowsPerDocument
	}

	section := SectionTextPreview
	switch s.cfg.ViewMode {
	case ViewCodeMatrix:
		section = SectionCodeMatrix
	case ViewDual:
		if charPos < s.previewCharPos {
			section = SectionCodeMatrix
		}
	}

	var byteInRow, codeOffset int
	if section == SectionCodeMatrix {
		digits := s.cfg.CodeType.MaxDigitsForByte()
		col := clampInt(charPos, 0, s.codeLastCharPos)
		byteInRow = col / digits
		codeOffset = col % digits
	} else {
		byteInRow = clampInt(charPos-s.previewCharPos, 0, s.bytesPerRow-1)
	}

	dataPos := row*int64(s.bytesPerRow) + int64(byteInRow)
	if dataPos >= s.cfg.DataSize {
		dataPos = s.cfg.DataSize
		codeOffset = 0
	}
	return CaretPosition{DataPosition: dataPos, CodeOffset: codeOffset, Section: section}
}

// activeSection returns the section the caret is effectively in given the
// view mode.
func (s Structure) activeSection(section Section) Section {
	switch s.cfg.ViewMode {
	case ViewCodeMatrix:
		return SectionCodeMatrix
	case ViewTextPreview:
		return SectionTextPreview
	default:
		return section
	}
}

// Model is the stateful cache around a Structure.
//
// It is owned by a single host and must not be used concurrently. Call
// UpdateCache after every configuration change before reading geometry.
type Model struct {
	s Structure
}

// NewModel returns a Model computed from DefaultConfig.
func NewModel() *Model {
	m := &Model{}
	m.UpdateCache(DefaultConfig(), 0)
	return m
}

// UpdateCache recomputes the cached geometry from cfg.
func (m *Model) UpdateCache(cfg Config, charactersPerPage int) {
	m.s = Compute(cfg, charactersPerPage)
}

func (m *Model) Structure() Structure { return m.s }

func (m *Model) BytesPerRow() int { return m.s.bytesPerRow }

func (m *Model) CharactersPerRow() int { return m.s.charactersPerRow }

func (m *Model) CharactersPerCodeSection() int { return m.s.charactersPerCodeSection }

func (m *Model) RowsPerDocument() int64 { return m.s.rowsPerDocument }

func (m *Model) CodeLastCharPos() int { return m.s.codeLastCharPos }

func (m *Model) PreviewCharPos() int { return m.s.previewCharPos }

// ComputeMovePosition forwards to the cached Structure.
func (m *Model) ComputeMovePosition(pos CaretPosition, dir MoveDirection, rowsPerPage int) CaretPosition {
	return m.s.ComputeMovePosition(pos, dir, rowsPerPage)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
