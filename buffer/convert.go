package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromOffset converts a rune offset into a (row, col) position.
func (b *Buffer) PosFromOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, len(b.text), mode)
	if !ok {
		return Pos{}, false
	}
	return posFromRunes(b.text, off), true
}

// OffsetFromPos converts a (row, col) position into a rune offset.
func (b *Buffer) OffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	rows := b.lineStarts()
	if mode == OffsetError {
		if pos.Row < 0 || pos.Row >= len(rows) {
			return 0, false
		}
		if pos.Col < 0 || pos.Col > b.rowLen(rows, pos.Row) {
			return 0, false
		}
	}
	row := clampInt(pos.Row, 0, len(rows)-1)
	col := clampInt(pos.Col, 0, b.rowLen(rows, row))
	return rows[row] + col, true
}

// ByteOffsetFromOffset converts a rune offset into a byte offset into Text().
func (b *Buffer) ByteOffsetFromOffset(off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, len(b.text), mode)
	if !ok {
		return 0, false
	}
	n := 0
	for _, r := range b.text[:off] {
		n += utf8.RuneLen(r)
	}
	return n, true
}

// LineCount returns the number of logical lines (at least 1).
func (b *Buffer) LineCount() int {
	return len(b.lineStarts())
}

// Line returns the text of the given row without its line break.
func (b *Buffer) Line(row int) (string, bool) {
	rows := b.lineStarts()
	if row < 0 || row >= len(rows) {
		return "", false
	}
	start := rows[row]
	return string(b.text[start : start+b.rowLen(rows, row)]), true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return ClampOffset(off, max), true
	default:
		return 0, false
	}
}

func posFromRunes(text []rune, off int) Pos {
	p := Pos{}
	for _, r := range text[:off] {
		if r == '\n' {
			p.Row++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}

func (b *Buffer) lineStarts() []int {
	starts := []int{0}
	for i, r := range b.text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (b *Buffer) rowLen(starts []int, row int) int {
	if row+1 < len(starts) {
		return starts[row+1] - 1 - starts[row]
	}
	return len(b.text) - starts[row]
}
