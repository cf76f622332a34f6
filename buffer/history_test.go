package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false")
	}
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}

	b.InsertText("a")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 0; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 1; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("hi", Options{})
	b.SetCursor(1)

	v := b.Version()
	if b.Undo() {
		t.Fatalf("expected Undo=false")
	}
	if b.Redo() {
		t.Fatalf("expected Redo=false")
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
	if got, want := b.Text(), "hi"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_Undo_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	if !b.Undo() || !b.Undo() {
		t.Fatalf("expected two undos")
	}
	if b.Undo() {
		t.Fatalf("expected history to be capped at 2")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("expected redo stack cleared by new edit")
	}
}

func TestBuffer_Undo_RestoresFormatSelection(t *testing.T) {
	b := New("say hello", Options{})
	b.SetSelection(Range{Start: 4, End: 9})
	b.Replace(TextEdit{Range: Range{Start: 4, End: 9}, Text: "**hello**"}, Range{Start: 4, End: 13}, ChangeSourceFormat)

	if !b.Undo() {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), "say hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	r, ok := b.Selection()
	if !ok || r != (Range{Start: 4, End: 9}) {
		t.Fatalf("selection=%v (%v), want [4,9)", r, ok)
	}

	if !b.Redo() {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "say **hello**"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	r, ok = b.Selection()
	if !ok || r != (Range{Start: 4, End: 13}) {
		t.Fatalf("selection=%v (%v), want [4,13)", r, ok)
	}
}

func TestBuffer_Undo_ChangeListsInverseEdits(t *testing.T) {
	b := New("ab", Options{})
	b.Apply(
		TextEdit{Range: Range{Start: 0, End: 0}, Text: "<"},
		TextEdit{Range: Range{Start: 3, End: 3}, Text: ">"},
	)
	if got, want := b.Text(), "<ab>"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.Undo()
	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	want := []AppliedEdit{
		{RangeBefore: Range{Start: 3, End: 4}, RangeAfter: Range{Start: 3, End: 3}, DeletedText: ">"},
		{RangeBefore: Range{Start: 0, End: 1}, RangeAfter: Range{Start: 0, End: 0}, DeletedText: "<"},
	}
	if diff := cmp.Diff(want, ch.AppliedEdits); diff != "" {
		t.Fatalf("undo edits mismatch (-want +got):\n%s", diff)
	}
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_Redo_RespectsHistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 1})
	b.InsertText("a")
	b.Undo()
	b.Redo()
	if !b.CanUndo() {
		t.Fatalf("expected redone step back on the undo stack")
	}
	b.Undo()
	if b.CanUndo() {
		t.Fatalf("expected a single undo step")
	}
}
