package buffer

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	text        []rune
	version     uint64
	textVersion uint64

	cursor int
	sel    selectionState

	opt  Options
	hist history

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		text: []rune(text),
		opt:  opt,
	}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Version increments on every effective mutation, including cursor and
// selection changes.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the document text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) SetCursor(off int) {
	next := ClampOffset(off, len(b.text))
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// while still treating empty selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SelectedRange returns the active selection, or the empty range at the
// cursor when nothing is selected. This is the range formatters operate on.
func (b *Buffer) SelectedRange() Range {
	if r, ok := b.Selection(); ok {
		return r
	}
	return Caret(b.cursor)
}

// SetSelection selects r and moves the cursor to r.End. An empty r collapses
// to a plain cursor at that offset.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.text))
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if clamped.IsEmpty() {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	nextRange, nextOK := Range{}, false
	if next.active {
		nextRange, nextOK = NormalizeRange(clamped), true
	}

	cursorSame := b.cursor == clamped.End
	b.cursor = clamped.End
	if cursorSame && prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		b.sel = next
		return
	}

	b.sel = next
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if r, ok := b.Selection(); !ok || r.IsEmpty() {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}
