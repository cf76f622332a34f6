package buffer

import "testing"

func TestBuffer_MoveGrapheme_BoundsAndLineCrossing(t *testing.T) {
	b := New("ab\ncd", Options{})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}

	b.SetCursor(2)
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != 2 {
		t.Fatalf("cursor=%d, want 2", got)
	}
}

func TestBuffer_MoveGrapheme_SkipsCombiningMarks(t *testing.T) {
	b := New("e\u0301x", Options{})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != 2 {
		t.Fatalf("cursor=%d, want 2", got)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
}

func TestBuffer_MoveLine_HomeEndAndVerticalClamp(t *testing.T) {
	b := New("hello\nw\nworld", Options{})

	b.SetCursor(3)
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got := b.Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	b.SetCursor(13) // row 2, col 5
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.Cursor(); got != 7 {
		t.Fatalf("cursor=%d, want 7 (row 1, col 1)", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got := b.Cursor(); got != 9 {
		t.Fatalf("cursor=%d, want 9 (row 2, col 1)", got)
	}
}

func TestBuffer_MoveWord(t *testing.T) {
	b := New("one two  three", Options{})

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != 7 {
		t.Fatalf("cursor=%d, want 7", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
}

func TestBuffer_MoveDoc_StartEnd(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetCursor(3)
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
}

func TestBuffer_MoveExtend_BuildsSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetCursor(1)

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})

	r, ok := b.Selection()
	if !ok || r != (Range{Start: 1, End: 3}) {
		t.Fatalf("selection=%v (active=%v), want [1,3)", r, ok)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected plain move to clear selection")
	}
}
