package glyph

import "testing"

func TestPreview_PrintableAndPlaceholder(t *testing.T) {
	cases := []struct {
		b    byte
		want rune
	}{
		{b: 'A', want: 'A'},
		{b: ' ', want: ' '},
		{b: '~', want: '~'},
		{b: 0x00, want: Placeholder},
		{b: '\n', want: Placeholder},
		{b: 0x7f, want: Placeholder},
		{b: 0x85, want: Placeholder},
		{b: 0xe9, want: 'é'},
	}
	for _, tc := range cases {
		if got := Preview(tc.b); got != tc.want {
			t.Fatalf("Preview(%#x): got %q, want %q", tc.b, got, tc.want)
		}
	}
}

func TestPreviewRow(t *testing.T) {
	if got, want := PreviewRow([]byte("hi\x00\tok")), "hi..ok"; got != want {
		t.Fatalf("row: got %q, want %q", got, want)
	}
	if got := PreviewRow(nil); got != "" {
		t.Fatalf("empty row: got %q", got)
	}
}

func TestPrintable_RejectsWideRunes(t *testing.T) {
	if Printable('世') {
		t.Fatalf("wide rune must not be a preview glyph")
	}
	if !Printable('a') {
		t.Fatalf("letter should be printable")
	}
}

func TestSliceCells(t *testing.T) {
	text := "ab世cd"
	if got, want := SliceCells(text, 1, 4), "b世"; got != want {
		t.Fatalf("slice: got %q, want %q", got, want)
	}
	if got, want := SliceCells(text, 3, 6), "cd"; got != want {
		t.Fatalf("slice from inside wide cluster: got %q, want %q", got, want)
	}
	if got := SliceCells(text, 7, 9); got != "" {
		t.Fatalf("slice past end: got %q, want empty", got)
	}
	if got, want := SliceCells("a"+"é"+"b", 1, 2), "é"; got != want {
		t.Fatalf("combining cluster: got %q, want %q", got, want)
	}
}

func TestWidthAndFit(t *testing.T) {
	if got := Width("ab世"); got != 4 {
		t.Fatalf("width: got %d, want 4", got)
	}
	if got, want := Fit("abc", 5), "abc  "; got != want {
		t.Fatalf("fit pad: got %q, want %q", got, want)
	}
	if got, want := Fit("abcdef", 4), "abcd"; got != want {
		t.Fatalf("fit truncate: got %q, want %q", got, want)
	}
	if got := Fit("abc", 0); got != "" {
		t.Fatalf("fit zero: got %q", got)
	}
}
