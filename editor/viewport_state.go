package editor

import "github.com/forem/mdtoolbar/buffer"

// ScrollPolicy controls how viewport scrolling is allowed to move relative to
// the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual allows mouse wheel scrolling even when the cursor
	// does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps viewport movement cursor-driven.
	ScrollFollowCursorOnly
)

// ViewportState is a host-facing snapshot of the editor's scroll position.
type ViewportState struct {
	// TopRow is the document row rendered at viewport row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      max(m.viewport.YOffset, 0),
		VisibleRows: m.visibleRowCount(),
	}
}

// DocToScreen maps a document offset to a viewport-local row and column,
// counted in runes. ok is false when the offset's row is scrolled out of
// view.
func (m Model) DocToScreen(off int) (col, row int, ok bool) {
	pos, ok := m.buf.PosFromOffset(off, buffer.OffsetError)
	if !ok {
		return 0, 0, false
	}
	vs := m.ViewportState()
	row = pos.Row - vs.TopRow
	if row < 0 || row >= vs.VisibleRows {
		return 0, 0, false
	}
	return pos.Col, row, true
}

func (m Model) visibleRowCount() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}
