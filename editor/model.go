package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forem/mdtoolbar/buffer"
	"github.com/forem/mdtoolbar/format"
	"github.com/forem/mdtoolbar/paste"
	"github.com/forem/mdtoolbar/upload"
)

// Model is a Bubble Tea component that renders and edits a markdown buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	width    int
	height   int

	// Embed offer state. offerShown is the sequence number of the offer
	// currently on screen, zero when none is.
	offer      paste.Offer
	offerShown uint64

	uploads      map[string]upload.Pending
	nextUploadID int

	palette paletteState

	lastBufVersion uint64
	lastCursor     int
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
		uploads:  make(map[string]upload.Pending),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.layout()
	return m
}

// layout sizes the viewport to whatever the chrome leaves over.
func (m *Model) layout() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-m.chromeHeight(), 0)
	m.rebuildContent()
	m.followCursor()
}

// chromeHeight is the number of rows taken by the toolbar and the embed
// offer.
func (m Model) chromeHeight() int {
	h := 0
	if m.cfg.ShowToolbar {
		h++
	}
	if m.offerVisible() {
		h++
	}
	return h
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Format applies formatter id to the current selection as one undoable
// change. It reports false for unknown or disabled ids and in read-only mode.
func (m Model) Format(id format.ID) (Model, bool) {
	if m.cfg.ReadOnly || !m.enabled(id) {
		return m, false
	}
	e, ok := format.Run(id, m.buf.Text(), m.buf.SelectedRange())
	if !ok {
		return m, false
	}
	m.buf.Replace(e.TextEdit(), e.Selection, buffer.ChangeSourceFormat)
	m.cfg.Logger.Debug("format applied", "formatter", id, "range", e.Range, "delta", e.Delta())
	return m, true
}

func (m Model) enabled(id format.ID) bool {
	for _, f := range m.cfg.Formatters {
		if f == id {
			return true
		}
	}
	return false
}

// Formatters returns the enabled formatters in toolbar order.
func (m Model) Formatters() []format.Formatter {
	out := make([]format.Formatter, 0, len(m.cfg.Formatters))
	for _, id := range m.cfg.Formatters {
		if f, ok := format.Lookup(id); ok {
			out = append(out, f)
		}
	}
	return out
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		if m.cfg.ScrollPolicy == ScrollFollowCursorOnly {
			return m, nil
		}
		m.viewport, cmd = m.viewport.Update(msg)
		// Don't force-follow the cursor; allow manual scrolling.
		m.syncFromBuffer()
		return m, cmd
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case PasteMsg:
		m, cmd = m.handlePaste(msg.Text, msg.Files)
	case embedOfferMsg:
		m = m.showOffer(msg.seq)
	case UploadFinishedMsg:
		m = m.finishUpload(msg)
	}

	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, cmd
}

func (m Model) View() string {
	var parts []string
	if m.cfg.ShowToolbar {
		parts = append(parts, m.renderToolbar(m.width))
	}
	body := m.viewport.View()
	if m.palette.open {
		body = m.overlayPalette(body)
	}
	parts = append(parts, body)
	if m.offerVisible() {
		parts = append(parts, m.renderOffer(m.width))
	}
	return joinRows(parts)
}

// syncFromBuffer rebuilds the view and emits OnChange when the buffer moved
// on since the last update. It reports whether the cursor moved.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	pos, _ := m.buf.PosFromOffset(m.buf.Cursor(), buffer.OffsetClamp)
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if pos.Row < y {
		m.viewport.SetYOffset(pos.Row)
		return
	}
	if pos.Row >= y+h {
		m.viewport.SetYOffset(pos.Row - h + 1)
	}
}
