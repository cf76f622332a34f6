package editor

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forem/mdtoolbar/buffer"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != 2 {
		t.Fatalf("cursor after insert: got %d, want %d", got, 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.buf.Cursor(); got != 1 {
		t.Fatalf("cursor after backspace: got %d, want %d", got, 1)
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{
		Text:     "ab",
		ReadOnly: true,
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.buf.Cursor(); got != 1 {
		t.Fatalf("cursor after move: got %d, want %d", got, 1)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after insert in read-only: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace in read-only: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("https://a.io"), Paste: true})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after paste in read-only: got %q, want %q", got, "ab")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after typing: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.buf.Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_CopyCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{
		Text:      "hello",
		Clipboard: cb,
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := cb.s; got != "he" {
		t.Fatalf("clipboard after copy: got %q, want %q", got, "he")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.buf.Text(); got != "llo" {
		t.Fatalf("text after cut: got %q, want %q", got, "llo")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "llohe" {
		t.Fatalf("text after paste: got %q, want %q", got, "llohe")
	}
}

func TestUpdate_ClipboardErrorsAreSwallowed(t *testing.T) {
	cb := &memClipboard{err: errors.New("no display")}
	m := New(Config{Text: "hello", Clipboard: cb})
	m.buf.SetSelection(buffer.Range{Start: 0, End: 5})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.buf.Text(); got != "hello" {
		t.Fatalf("cut with failing clipboard deleted text: got %q", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "hello" {
		t.Fatalf("paste with failing clipboard: got %q", got)
	}
}

func TestUpdate_PasteNormalizesNewlines(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true})
	if got, want := m.buf.Text(), "a\nb\nc"; got != want {
		t.Fatalf("text after paste: got %q, want %q", got, want)
	}
}

func TestUpdate_PalettePicksFuzzyMatch(t *testing.T) {
	m := New(Config{Text: "hi"})
	m.buf.SetSelection(buffer.Range{Start: 0, End: 2})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if !m.PaletteOpen() {
		t.Fatalf("palette not open after ctrl+p")
	}
	for _, r := range "quo" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if got := m.buf.Text(); got != "hi" {
		t.Fatalf("palette typing reached the buffer: got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.PaletteOpen() {
		t.Fatalf("palette still open after enter")
	}
	if got, want := m.buf.Text(), "> hi"; got != want {
		t.Fatalf("text after palette quote: got %q, want %q", got, want)
	}
}

func TestUpdate_PaletteEscCloses(t *testing.T) {
	m := New(Config{Text: "hi"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.PaletteOpen() {
		t.Fatalf("palette still open after esc")
	}
	if got := m.buf.Text(); got != "hi" {
		t.Fatalf("text changed: got %q", got)
	}
}

func TestView_PaletteFloatsOverViewport(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd\ne\nf"})
	m = m.SetSize(20, 6)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	for _, r := range "ital" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	rows := strings.Split(stripANSI(m.View()), "\n")
	if len(rows) != 6 {
		t.Fatalf("view rows with palette open: got %d, want %d", len(rows), 6)
	}
	if !strings.HasPrefix(rows[0], "a") {
		t.Fatalf("cursor row covered by palette: got %q", rows[0])
	}
	if !strings.HasPrefix(rows[1], "> ital") {
		t.Fatalf("palette query row: got %q", rows[1])
	}
	if !strings.HasPrefix(rows[2], "Italic") {
		t.Fatalf("palette match row: got %q", rows[2])
	}
	if !strings.HasPrefix(rows[3], "d") {
		t.Fatalf("row below palette: got %q", rows[3])
	}
}
