package layout

import "testing"

func dualHex(dataSize int64, bytesPerRow int) Structure {
	return Compute(Config{
		ViewMode:       ViewDual,
		CodeType:       CodeHexadecimal,
		DataSize:       dataSize,
		MaxBytesPerRow: bytesPerRow,
	}, 0)
}

func TestComputeMovePosition_LeftRightCodeDigits(t *testing.T) {
	s := dualHex(4, 16)

	p := CaretPosition{}
	p = s.ComputeMovePosition(p, MoveLeft, 1)
	if p != (CaretPosition{}) {
		t.Fatalf("left at doc start: got %+v, want zero", p)
	}

	p = s.ComputeMovePosition(p, MoveRight, 1)
	if p != (CaretPosition{DataPosition: 0, CodeOffset: 1}) {
		t.Fatalf("right within byte: got %+v", p)
	}
	p = s.ComputeMovePosition(p, MoveRight, 1)
	if p != (CaretPosition{DataPosition: 1, CodeOffset: 0}) {
		t.Fatalf("right across byte: got %+v", p)
	}
	p = s.ComputeMovePosition(p, MoveLeft, 1)
	if p != (CaretPosition{DataPosition: 0, CodeOffset: 1}) {
		t.Fatalf("left across byte: got %+v", p)
	}
}

func TestComputeMovePosition_RightStopsAtAppendPosition(t *testing.T) {
	s := dualHex(2, 16)

	p := CaretPosition{DataPosition: 1, CodeOffset: 1}
	p = s.ComputeMovePosition(p, MoveRight, 1)
	if p != (CaretPosition{DataPosition: 2}) {
		t.Fatalf("right onto append position: got %+v", p)
	}
	if got := s.ComputeMovePosition(p, MoveRight, 1); got != p {
		t.Fatalf("right past data: got %+v, want %+v", got, p)
	}
}

func TestComputeMovePosition_PreviewMovesWholeBytes(t *testing.T) {
	s := dualHex(4, 16)

	p := CaretPosition{DataPosition: 1, Section: SectionTextPreview}
	if got := s.ComputeMovePosition(p, MoveRight, 1); got != (CaretPosition{DataPosition: 2, Section: SectionTextPreview}) {
		t.Fatalf("preview right: got %+v", got)
	}
	if got := s.ComputeMovePosition(p, MoveLeft, 1); got != (CaretPosition{DataPosition: 0, Section: SectionTextPreview}) {
		t.Fatalf("preview left: got %+v", got)
	}
}

func TestComputeMovePosition_UpDown(t *testing.T) {
	s := dualHex(40, 16)

	p := CaretPosition{DataPosition: 5, CodeOffset: 1}
	if got := s.ComputeMovePosition(p, MoveUp, 1); got != p {
		t.Fatalf("up on first row: got %+v, want unchanged", got)
	}
	p = s.ComputeMovePosition(p, MoveDown, 1)
	if p.DataPosition != 21 || p.CodeOffset != 1 {
		t.Fatalf("down: got %+v", p)
	}
	p = s.ComputeMovePosition(p, MoveDown, 1)
	if p.DataPosition != 37 {
		t.Fatalf("down to last row: got %+v", p)
	}
	if got := s.ComputeMovePosition(p, MoveDown, 1); got != p {
		t.Fatalf("down past end: got %+v, want unchanged", got)
	}
	if got := s.ComputeMovePosition(p, MoveUp, 1); got.DataPosition != 21 {
		t.Fatalf("up: got %+v", got)
	}
}

func TestComputeMovePosition_DownOntoAppendPosition(t *testing.T) {
	s := dualHex(32, 16)

	p := CaretPosition{DataPosition: 16}
	if got := s.ComputeMovePosition(p, MoveDown, 1); got.DataPosition != 32 {
		t.Fatalf("down onto append position: got %+v", got)
	}

	p = CaretPosition{DataPosition: 16, CodeOffset: 1}
	if got := s.ComputeMovePosition(p, MoveDown, 1); got != p {
		t.Fatalf("down onto append position with code offset: got %+v, want unchanged", got)
	}
}

func TestComputeMovePosition_RowStartEnd(t *testing.T) {
	s := dualHex(20, 16)

	p := CaretPosition{DataPosition: 5, CodeOffset: 1}
	if got := s.ComputeMovePosition(p, MoveRowStart, 1); got != (CaretPosition{DataPosition: 0}) {
		t.Fatalf("row start: got %+v", got)
	}
	if got := s.ComputeMovePosition(p, MoveRowEnd, 1); got != (CaretPosition{DataPosition: 15, CodeOffset: 1}) {
		t.Fatalf("row end: got %+v", got)
	}

	short := CaretPosition{DataPosition: 17}
	if got := s.ComputeMovePosition(short, MoveRowEnd, 1); got != (CaretPosition{DataPosition: 20}) {
		t.Fatalf("row end on short last row: got %+v", got)
	}

	preview := CaretPosition{DataPosition: 5, Section: SectionTextPreview}
	if got := s.ComputeMovePosition(preview, MoveRowEnd, 1); got != (CaretPosition{DataPosition: 15, Section: SectionTextPreview}) {
		t.Fatalf("row end in preview: got %+v", got)
	}
}

func TestComputeMovePosition_Pages(t *testing.T) {
	s := dualHex(1000, 16)

	p := CaretPosition{DataPosition: 40}
	if got := s.ComputeMovePosition(p, MovePageUp, 4); got.DataPosition != 8 {
		t.Fatalf("page up clamps to first row column: got %+v", got)
	}
	if got := s.ComputeMovePosition(p, MovePageDown, 4); got.DataPosition != 104 {
		t.Fatalf("page down: got %+v", got)
	}

	// Last row holds bytes 992..999.
	near := CaretPosition{DataPosition: 940}
	if got := s.ComputeMovePosition(near, MovePageDown, 10); got.DataPosition != 988 {
		t.Fatalf("page down past short last row: got %+v, want 988", got)
	}
	nearLow := CaretPosition{DataPosition: 963}
	if got := s.ComputeMovePosition(nearLow, MovePageDown, 10); got.DataPosition != 995 {
		t.Fatalf("page down onto last row: got %+v, want 995", got)
	}
}

func TestComputeMovePosition_PageDownOntoAppendPosition(t *testing.T) {
	s := dualHex(64, 16)

	p := CaretPosition{DataPosition: 16, CodeOffset: 1}
	got := s.ComputeMovePosition(p, MovePageDown, 3)
	if got != (CaretPosition{DataPosition: 64}) {
		t.Fatalf("page down onto append position: got %+v", got)
	}
}

func TestComputeMovePosition_DocStartEnd(t *testing.T) {
	s := dualHex(1000, 16)

	p := CaretPosition{DataPosition: 500, CodeOffset: 1}
	if got := s.ComputeMovePosition(p, MoveDocStart, 1); got != (CaretPosition{}) {
		t.Fatalf("doc start: got %+v", got)
	}
	if got := s.ComputeMovePosition(p, MoveDocEnd, 1); got != (CaretPosition{DataPosition: 1000}) {
		t.Fatalf("doc end: got %+v", got)
	}

	empty := dualHex(0, 16)
	if got := empty.ComputeMovePosition(p, MoveDocEnd, 1); got.DataPosition != 0 {
		t.Fatalf("doc end on empty data: got %+v", got)
	}
}

func TestComputeMovePosition_SwitchSection(t *testing.T) {
	s := dualHex(10, 16)

	p := CaretPosition{DataPosition: 3, CodeOffset: 1}
	p = s.ComputeMovePosition(p, MoveSwitchSection, 1)
	if p != (CaretPosition{DataPosition: 3, Section: SectionTextPreview}) {
		t.Fatalf("switch to preview: got %+v", p)
	}
	p = s.ComputeMovePosition(p, MoveSwitchSection, 1)
	if p != (CaretPosition{DataPosition: 3, Section: SectionCodeMatrix}) {
		t.Fatalf("switch to code: got %+v", p)
	}

	single := Compute(Config{ViewMode: ViewCodeMatrix, DataSize: 10, MaxBytesPerRow: 16}, 0)
	q := CaretPosition{DataPosition: 3}
	if got := single.ComputeMovePosition(q, MoveSwitchSection, 1); got != q {
		t.Fatalf("switch without preview: got %+v, want unchanged", got)
	}
}

func TestComputeMovePosition_DoesNotMutateInput(t *testing.T) {
	s := dualHex(100, 16)
	p := CaretPosition{DataPosition: 50, CodeOffset: 1}
	orig := p
	_ = s.ComputeMovePosition(p, MoveDocEnd, 1)
	if p != orig {
		t.Fatalf("input mutated: got %+v, want %+v", p, orig)
	}
}

func TestComputeMovePosition_UnknownDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown direction")
		}
	}()
	_ = dualHex(10, 16).ComputeMovePosition(CaretPosition{}, MoveDirection(99), 1)
}
