package buffer

import (
	"github.com/forem/mdtoolbar/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	change := b.beginChange(ChangeSourceLocal)

	nextCursor, applied, changed := b.replaceRange(b.SelectedRange(), s)
	if !changed {
		return
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	change.addAppliedEdit(applied)
	b.record(change)
	b.commitChange(change)
}

// InsertRune inserts a single rune at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. Without a selection it removes
// the grapheme cluster before the cursor, or joins with the previous line.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}

	n := 1
	if start := b.lineStart(b.cursor); start < b.cursor {
		n = grapheme.LastLen(string(b.text[start:b.cursor]))
	}
	b.deleteRange(Range{Start: b.cursor - n, End: b.cursor})
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == len(b.text) {
		return
	}

	n := 1
	if end := b.lineEnd(b.cursor); end > b.cursor {
		n = grapheme.FirstLen(string(b.text[b.cursor:end]))
	}
	b.deleteRange(Range{Start: b.cursor, End: b.cursor + n})
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.deleteRange(r)
}

func (b *Buffer) deleteRange(r Range) {
	change := b.beginChange(ChangeSourceLocal)
	nextCursor, applied, changed := b.replaceRange(r, "")
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	change.addAppliedEdit(applied)
	b.record(change)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor int, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.text)))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deletedText := string(b.text[r.Start:r.End])
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	ins := []rune(text)
	out := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	out = append(out, b.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[r.End:]...)

	b.text = out
	b.textVersion++
	nextCursor = r.Start + len(ins)
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

func (b *Buffer) lineStart(off int) int {
	for i := off; i > 0; i-- {
		if b.text[i-1] == '\n' {
			return i
		}
	}
	return 0
}

func (b *Buffer) lineEnd(off int) int {
	for i := off; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			return i
		}
	}
	return len(b.text)
}
