package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func drawConfig(rt *rapid.T) Config {
	return Config{
		ViewMode:               ViewMode(rapid.IntRange(0, 2).Draw(rt, "viewMode")),
		CodeType:               CodeType(rapid.IntRange(0, 3).Draw(rt, "codeType")),
		DataSize:               rapid.Int64Range(0, 1<<40).Draw(rt, "dataSize"),
		RowWrapping:            RowWrapping(rapid.IntRange(0, 1).Draw(rt, "wrapping")),
		MaxBytesPerRow:         rapid.IntRange(-4, 256).Draw(rt, "maxBytesPerRow"),
		WrappingBytesGroupSize: rapid.IntRange(0, 16).Draw(rt, "groupSize"),
	}
}

func TestProperty_BytesPerRowAtLeastOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := drawConfig(rt)
		chars := rapid.IntRange(-100, 1000).Draw(rt, "charactersPerPage")

		require.GreaterOrEqual(t, ComputeBytesPerRow(cfg, chars), 1)
	})
}

func TestProperty_WrappedRowFitsPage(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := drawConfig(rt)
		cfg.RowWrapping = WrappingOn
		chars := rapid.IntRange(20, 1000).Draw(rt, "charactersPerPage")

		s := Compute(cfg, chars)
		if s.BytesPerRow() == 1 {
			return
		}
		require.LessOrEqual(t, s.CharactersPerRow(), chars, "bytesPerRow=%d", s.BytesPerRow())
	})
}

func TestProperty_RowsPerDocumentIsCeiling(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dataSize := rapid.Int64Range(0, 1<<50).Draw(rt, "dataSize")
		bpr := rapid.IntRange(1, 4096).Draw(rt, "bytesPerRow")

		rows := ComputeRowsPerDocument(dataSize, bpr)
		require.Equal(t, dataSize == 0, rows == 0)
		require.GreaterOrEqual(t, rows*int64(bpr), dataSize)
		if rows > 0 {
			require.Less(t, (rows-1)*int64(bpr), dataSize)
		}
	})
}

func TestProperty_RightThenLeftIsLocallyInvertible(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := drawConfig(rt)
		cfg.DataSize = rapid.Int64Range(1, 1<<40).Draw(rt, "dataSize")
		s := Compute(cfg, rapid.IntRange(0, 400).Draw(rt, "charactersPerPage"))

		section := Section(rapid.IntRange(0, 1).Draw(rt, "section"))
		pos := CaretPosition{
			DataPosition: rapid.Int64Range(0, cfg.DataSize-1).Draw(rt, "dataPosition"),
			Section:      section,
		}
		if s.activeSection(section) == SectionCodeMatrix {
			pos.CodeOffset = rapid.IntRange(0, cfg.CodeType.MaxDigitsForByte()-1).Draw(rt, "codeOffset")
		}

		right := s.ComputeMovePosition(pos, MoveRight, 1)
		back := s.ComputeMovePosition(right, MoveLeft, 1)
		require.Equal(t, pos, back)
	})
}

func TestProperty_DocEndReachesDataSize(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := drawConfig(rt)
		s := Compute(cfg, 80)
		pos := CaretPosition{
			DataPosition: rapid.Int64Range(0, cfg.DataSize).Draw(rt, "dataPosition"),
			CodeOffset:   rapid.IntRange(0, 7).Draw(rt, "codeOffset"),
		}

		got := s.ComputeMovePosition(pos, MoveDocEnd, 1)
		require.Equal(t, cfg.DataSize, got.DataPosition)
		require.Equal(t, 0, got.CodeOffset)
	})
}

func TestProperty_MovesStayInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := drawConfig(rt)
		s := Compute(cfg, rapid.IntRange(0, 400).Draw(rt, "charactersPerPage"))
		pos := CaretPosition{DataPosition: rapid.Int64Range(0, cfg.DataSize).Draw(rt, "dataPosition")}
		dir := MoveDirection(rapid.IntRange(int(MoveUp), int(MoveSwitchSection)).Draw(rt, "direction"))
		rowsPerPage := rapid.IntRange(0, 1000).Draw(rt, "rowsPerPage")

		got := s.ComputeMovePosition(pos, dir, rowsPerPage)
		require.GreaterOrEqual(t, got.DataPosition, int64(0))
		require.LessOrEqual(t, got.DataPosition, cfg.DataSize)
		if got.DataPosition == cfg.DataSize {
			require.Equal(t, 0, got.CodeOffset, "append position must have no code offset (dir=%v)", dir)
		}
	})
}
