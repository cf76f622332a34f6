package buffer

import (
	"unicode"

	"github.com/forem/mdtoolbar/internal/grapheme"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := ClampOffset(b.moveCursor(prevCursor, m), len(b.text))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	change := b.beginChange(ChangeSourceLocal)
	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
	b.commitChange(change)
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if off == 0 {
			return off
		}
		start := b.lineStart(off)
		if start == off {
			return off - 1
		}
		return off - grapheme.LastLen(string(b.text[start:off]))
	case DirRight:
		if off == len(b.text) {
			return off
		}
		end := b.lineEnd(off)
		if end == off {
			return off + 1
		}
		return off + grapheme.FirstLen(string(b.text[off:end]))
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	start, end := b.lineStart(off), b.lineEnd(off)

	switch dir {
	case DirLeft:
		return start + prevWordBoundary(b.text[start:end], off-start)
	case DirRight:
		return start + nextWordBoundary(b.text[start:end], off-start)
	case DirHome:
		return start
	case DirEnd:
		return end
	default:
		return off
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	switch dir {
	case DirHome:
		return b.lineStart(off)
	case DirEnd:
		return b.lineEnd(off)
	case DirUp, DirDown:
		p := posFromRunes(b.text, off)
		if dir == DirUp {
			if p.Row == 0 {
				return off
			}
			p.Row--
		} else {
			if p.Row == b.LineCount()-1 {
				return off
			}
			p.Row++
		}
		next, _ := b.OffsetFromPos(p, OffsetClamp)
		return next
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.text)
	default:
		return off
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line []rune, col int) int {
	col = clampInt(col, 0, len(line))
	i := col
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	col = clampInt(col, 0, len(line))
	i := col
	for i < len(line) && unicode.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !unicode.IsSpace(line[i]) {
		i++
	}
	return i
}
