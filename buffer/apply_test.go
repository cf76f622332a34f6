package buffer

import "testing"

func TestBuffer_Apply_AppliesSequentiallyAgainstEvolvingState(t *testing.T) {
	b := New("hello", Options{})
	v := b.Version()

	b.Apply(
		TextEdit{Range: Caret(0), Text: "X"},
		TextEdit{Range: Range{Start: 1, End: 2}, Text: ""},
	)

	if got, want := b.Text(), "Xello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 1; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestBuffer_Apply_ClampsOutOfBoundsRanges(t *testing.T) {
	b := New("ab\ncd", Options{})

	b.Apply(
		TextEdit{Range: Caret(999), Text: "X"},
		TextEdit{Range: Caret(-9), Text: "Y"},
	)

	if got, want := b.Text(), "Yab\ncdX"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 1; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestBuffer_Apply_NoOpDoesNotBumpVersion(t *testing.T) {
	b := New("a", Options{})
	v := b.Version()

	b.Apply(TextEdit{Range: Caret(0), Text: ""})
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
	if b.CanUndo() {
		t.Fatalf("no-op apply must not record undo")
	}
}

func TestBuffer_Replace_AdoptsSelectionAsOneUndoStep(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: 0, End: 5})

	b.Replace(TextEdit{Range: Range{Start: 0, End: 5}, Text: "**hello**"}, Range{Start: 0, End: 9}, ChangeSourceFormat)

	if got, want := b.Text(), "**hello**"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	r, ok := b.Selection()
	if !ok || r != (Range{Start: 0, End: 9}) {
		t.Fatalf("selection=%v (active=%v), want [0,9)", r, ok)
	}
	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.Source, ChangeSourceFormat; got != want {
		t.Fatalf("source=%v, want %v", got, want)
	}

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got, want := b.Text(), "hello"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
	if r, ok := b.Selection(); !ok || r != (Range{Start: 0, End: 5}) {
		t.Fatalf("selection after undo=%v (active=%v), want [0,5)", r, ok)
	}
}

func TestBuffer_Replace_CaretSelection(t *testing.T) {
	b := New("", Options{})

	b.Replace(TextEdit{Range: Caret(0), Text: "****"}, Caret(2), ChangeSourceFormat)

	if got, want := b.Text(), "****"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected caret, got selection")
	}
	if got, want := b.Cursor(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestBuffer_Replace_NoOpEditStillMovesSelection(t *testing.T) {
	b := New("abc", Options{})
	v := b.TextVersion()

	b.Replace(TextEdit{Range: Range{Start: 0, End: 1}, Text: "a"}, Range{Start: 1, End: 3}, ChangeSourceFormat)

	if got := b.TextVersion(); got != v {
		t.Fatalf("text version=%d, want %d", got, v)
	}
	if r, ok := b.Selection(); !ok || r != (Range{Start: 1, End: 3}) {
		t.Fatalf("selection=%v (active=%v), want [1,3)", r, ok)
	}
}

func TestBuffer_Replace_KeepsBackwardSelection(t *testing.T) {
	b := New("say hello", Options{})
	b.SetSelection(Range{Start: 9, End: 4})

	b.Replace(TextEdit{Range: Caret(0), Text: "> "}, Range{Start: 6, End: 11}, ChangeSourceUpload)

	if got, want := b.Text(), "> say hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	raw, ok := b.SelectionRaw()
	if !ok || raw != (Range{Start: 11, End: 6}) {
		t.Fatalf("raw selection=%v (%v), want 11->6", raw, ok)
	}
	if got, want := b.Cursor(), 6; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	b.Replace(TextEdit{Range: Caret(0), Text: ""}, Range{Start: 6, End: 11}, ChangeSourceFormat)
	if raw, _ := b.SelectionRaw(); raw != (Range{Start: 11, End: 6}) {
		t.Fatalf("raw selection after no-op=%v, want 11->6", raw)
	}
}
