package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/forem/mdtoolbar/buffer"
)

const tabWidth = 4

func (m *Model) renderContent() string {
	lines := strings.Split(m.buf.Text(), "\n")

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(lines))
	}
	cursorRow := -1
	if p, ok := m.buf.PosFromOffset(cursor, buffer.OffsetClamp); ok {
		cursorRow = p.Row
	}

	width := m.viewport.Width
	if width > 0 && m.cfg.ShowLineNums {
		width = max(width-digits-1, 1)
	}

	out := make([]string, 0, len(lines))
	lineStart := 0
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(renderLine(m.cfg.Style, line, lineStart, cursor, m.focused, sel, selOK, width))
		out = append(out, sb.String())
		lineStart += len([]rune(line)) + 1
	}
	return strings.Join(out, "\n")
}

// renderLine renders one logical line starting at document offset start.
// width bounds the output in terminal cells; zero means unbounded.
func renderLine(st Style, line string, start, cursor int, focused bool, sel buffer.Range, selOK bool, width int) string {
	var sb strings.Builder
	cells := 0
	off := start
	fits := func(w int) bool { return width <= 0 || cells+w <= width }

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		n := len(g.Runes())

		shown := cluster
		w := runewidth.StringWidth(cluster)
		if cluster == "\t" {
			w = tabWidth - cells%tabWidth
			shown = strings.Repeat(" ", w)
		}
		if !fits(w) {
			return sb.String()
		}

		switch {
		case focused && off == cursor:
			sb.WriteString(st.Cursor.Render(shown))
		case selOK && off >= sel.Start && off < sel.End:
			sb.WriteString(st.Selection.Render(shown))
		default:
			sb.WriteString(st.Text.Render(shown))
		}
		cells += w
		off += n
	}

	// Cursor at EOL is rendered as a one-cell placeholder.
	if focused && off == cursor && fits(1) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// gutterWidth is the number of cells the line number gutter takes.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func gutterDigits(lines int) int {
	d := 1
	for lines >= 10 {
		lines /= 10
		d++
	}
	return d
}

func joinRows(rows []string) string {
	return strings.Join(rows, "\n")
}
