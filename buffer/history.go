package buffer

// caret is the cursor and selection on one side of an undo step.
type caret struct {
	cursor int
	sel    selectionState
}

// step is one undoable transaction. Edits are kept in application order, so
// undo walks them backwards replacing RangeAfter with DeletedText and redo
// walks them forwards replacing RangeBefore with InsertText.
type step struct {
	edits  []AppliedEdit
	before caret
	after  caret
}

type history struct {
	undo []step
	redo []step
}

func (h *history) push(limit int, s step) {
	if limit <= 0 {
		return
	}
	h.undo = append(h.undo, s)
	if over := len(h.undo) - limit; over > 0 {
		h.undo = h.undo[over:]
	}
}

func (b *Buffer) caret() caret {
	return caret{cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) setCaret(c caret) {
	n := len(b.text)
	b.cursor = ClampOffset(c.cursor, n)
	b.sel = selectionState{}
	if !c.sel.active {
		return
	}
	anchor, end := ClampOffset(c.sel.anchor, n), ClampOffset(c.sel.end, n)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

// record pushes the transaction cb describes onto the undo stack and drops
// any redo steps.
func (b *Buffer) record(cb changeBuilder) {
	if b.version == cb.versionBefore || len(cb.appliedEdits) == 0 {
		return
	}
	b.hist.push(b.opt.HistoryLimit, step{
		edits:  append([]AppliedEdit(nil), cb.appliedEdits...),
		before: cb.caretBefore,
		after:  b.caret(),
	})
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo reverts the most recent step. The resulting Change lists the inverse
// edits and is attributed to ChangeSourceLocal.
func (b *Buffer) Undo() bool {
	n := len(b.hist.undo)
	if n == 0 {
		return false
	}
	s := b.hist.undo[n-1]
	b.hist.undo = b.hist.undo[:n-1]

	change := b.beginChange(ChangeSourceLocal)
	for i := len(s.edits) - 1; i >= 0; i-- {
		e := s.edits[i]
		if _, applied, ok := b.replaceRange(e.RangeAfter, e.DeletedText); ok {
			change.addAppliedEdit(applied)
		}
	}
	b.setCaret(s.before)
	b.version++
	b.commitChange(change)

	b.hist.redo = append(b.hist.redo, s)
	return true
}

// Redo reapplies the most recently undone step.
func (b *Buffer) Redo() bool {
	n := len(b.hist.redo)
	if n == 0 {
		return false
	}
	s := b.hist.redo[n-1]
	b.hist.redo = b.hist.redo[:n-1]

	change := b.beginChange(ChangeSourceLocal)
	for _, e := range s.edits {
		if _, applied, ok := b.replaceRange(e.RangeBefore, e.InsertText); ok {
			change.addAppliedEdit(applied)
		}
	}
	b.setCaret(s.after)
	b.version++
	b.commitChange(change)

	b.hist.push(b.opt.HistoryLimit, s)
	return true
}
