package buffer

// Apply applies a sequence of text edits in order. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
//
// Semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Cursor moves to the end of the last applied (effective) edit.
// - Selection is cleared if any edit applies.
func (b *Buffer) Apply(edits ...TextEdit) {
	b.apply(ChangeSourceLocal, edits, nil)
}

// Replace applies e and then adopts sel, which is interpreted against the
// post-edit text, as one undoable change attributed to src.
//
// This is how formatter, upload and embed results reach the document: the
// edit and the selection it computed land together, so undo restores both.
// A no-op edit with a different selection only moves the selection. A
// backward selection stays backward.
func (b *Buffer) Replace(e TextEdit, sel Range, src ChangeSource) {
	b.apply(src, []TextEdit{e}, &sel)
}

func (b *Buffer) apply(src ChangeSource, edits []TextEdit, sel *Range) {
	if len(edits) == 0 {
		return
	}

	change := b.beginChange(src)

	anyChanged := false
	lastCursor := b.cursor

	for _, e := range edits {
		nextCursor, applied, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
		change.addAppliedEdit(applied)
	}

	if sel != nil {
		oriented := orient(*sel, change.caretBefore.sel)
		sel = &oriented
	}

	if !anyChanged {
		if sel != nil {
			b.SetSelection(*sel)
		}
		return
	}

	b.cursor = ClampOffset(lastCursor, len(b.text))
	b.sel = selectionState{}
	if sel != nil {
		r := ClampRange(*sel, len(b.text))
		b.cursor = r.End
		if !r.IsEmpty() {
			b.sel = selectionState{active: true, anchor: r.Start, end: r.End}
		}
	}
	b.version++
	b.record(change)
	b.commitChange(change)
}

// orient points sel the way the previous selection pointed.
func orient(sel Range, prev selectionState) Range {
	sel = NormalizeRange(sel)
	if prev.active && prev.anchor > prev.end {
		return Range{Start: sel.End, End: sel.Start}
	}
	return sel
}
