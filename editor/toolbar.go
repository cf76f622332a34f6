package editor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/sahilm/fuzzy"

	"github.com/forem/mdtoolbar/format"
	"github.com/forem/mdtoolbar/internal/grapheme"
)

// MatchFormatters ranks formatters by how well their labels fuzzy-match
// query. An empty query keeps every formatter in order.
func MatchFormatters(query string, fs []format.Formatter) []format.Formatter {
	if query == "" {
		return fs
	}
	labels := make([]string, len(fs))
	for i, f := range fs {
		labels[i] = f.Label
	}
	matches := fuzzy.Find(query, labels)
	out := make([]format.Formatter, 0, len(matches))
	for _, match := range matches {
		out = append(out, fs[match.Index])
	}
	return out
}

// renderToolbar lays out as many formatter labels as fit in width, core
// group first, and summarizes the rest as "+N".
func (m Model) renderToolbar(width int) string {
	fs := m.Formatters()
	slices.SortStableFunc(fs, func(a, b format.Formatter) int { return int(a.Group) - int(b.Group) })
	level := format.HeadingLevel(m.buf.Text(), m.buf.Cursor())

	items := make([]string, 0, len(fs))
	for _, f := range fs {
		label, style := f.Label, m.cfg.Style.ToolbarItem
		if f.ID == format.IDHeading && level > 0 {
			label, style = fmt.Sprintf("H%d", level), m.cfg.Style.ToolbarActive
		}
		items = append(items, style.Render(label))
	}

	shown := len(items)
	if width > 0 {
		for shown > 0 && toolbarWidth(items[:shown], len(items)-shown, m.cfg.Style) > width {
			shown--
		}
	}
	row := strings.Join(items[:shown], "")
	if rest := len(items) - shown; rest > 0 {
		row += m.cfg.Style.ToolbarMore.Render(fmt.Sprintf("+%d", rest))
	}
	st := m.cfg.Style.Toolbar
	if width > 0 {
		st = st.Width(width).MaxWidth(width)
	}
	return st.Render(row)
}

func toolbarWidth(items []string, hidden int, st Style) int {
	w := 0
	for _, it := range items {
		w += lipgloss.Width(it)
	}
	if hidden > 0 {
		w += lipgloss.Width(st.ToolbarMore.Render(fmt.Sprintf("+%d", hidden)))
	}
	return w
}

func (m Model) renderOffer(width int) string {
	c, ok := m.offer.Live()
	if !ok {
		return ""
	}
	st := m.cfg.Style
	km := m.cfg.KeyMap
	actions := st.OfferAction.Render(km.Embed.Help().Key+" embed") + "  " +
		st.OfferAction.Render(km.DismissEmbed.Help().Key+" dismiss")

	url := c.URL
	if width > 0 {
		room := width - lipgloss.Width(actions) - st.Offer.GetHorizontalFrameSize() - len("Embed ? ")
		url = grapheme.Truncate(url, max(room, 1))
	}
	return st.Offer.Render("Embed " + url + "? " + actions)
}

type paletteState struct {
	open     bool
	query    string
	selected int
}

// PaletteOpen reports whether the formatter palette is open.
func (m Model) PaletteOpen() bool { return m.palette.open }

func (m Model) paletteMatches() []format.Formatter {
	return MatchFormatters(m.palette.query, m.Formatters())
}

func (m Model) updatePalette(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	matches := m.paletteMatches()

	switch {
	case msg.Type == tea.KeyEsc:
		m.palette = paletteState{}
	case key.Matches(msg, km.Enter):
		if m.palette.selected < len(matches) {
			id := matches[m.palette.selected].ID
			m.palette = paletteState{}
			m, _ = m.Format(id)
		}
	case key.Matches(msg, km.Up):
		if m.palette.selected > 0 {
			m.palette.selected--
		}
	case key.Matches(msg, km.Down):
		if m.palette.selected < len(matches)-1 {
			m.palette.selected++
		}
	case key.Matches(msg, km.Backspace):
		if q := []rune(m.palette.query); len(q) > 0 {
			m.palette.query = string(q[:len(q)-1])
			m.palette.selected = 0
		}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.palette.query += string(msg.Runes)
		m.palette.selected = 0
	}
	return m
}

// renderPalette renders the query row and as many matches as fit in rows,
// scrolled so the selected match stays visible.
func (m Model) renderPalette(rows int) string {
	st := m.cfg.Style
	matches := m.paletteMatches()
	room := max(rows-1-st.Palette.GetVerticalFrameSize(), 1)
	first := max(m.palette.selected-room+1, 0)

	out := []string{"> " + m.palette.query}
	for i := first; i < len(matches) && i < first+room; i++ {
		label := matches[i].Label
		if i == m.palette.selected {
			label = st.PaletteMatch.Render(label)
		}
		out = append(out, label)
	}
	return st.Palette.Render(strings.Join(out, "\n"))
}

// overlayPalette draws the palette over the viewport, just below the cursor
// and pulled back inside the viewport when it would spill over an edge.
func (m Model) overlayPalette(base string) string {
	vw, vh := m.viewport.Width, m.visibleRowCount()
	if vh <= 0 {
		return m.renderPalette(len(m.cfg.Formatters) + 1 + m.cfg.Style.Palette.GetVerticalFrameSize())
	}
	pal := m.renderPalette(vh)

	x, y := 0, 0
	if col, row, ok := m.DocToScreen(m.buf.Cursor()); ok {
		x, y = col+m.gutterWidth(), row+1
	}
	x = min(x, max(vw-lipgloss.Width(pal), 0))
	y = min(y, max(vh-lipgloss.Height(pal), 0))

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()
	return overlay.Composite(pal, base, overlay.Left, overlay.Top, leftFrame+x, topFrame+y)
}
