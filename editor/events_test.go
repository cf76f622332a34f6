package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forem/mdtoolbar/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}
	if got := events[0].Cursor; got != 1 {
		t.Fatalf("event cursor after move: got %d, want %d", got, 1)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to EOL
	if len(events) != 2 {
		t.Fatalf("events after move to EOL: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	if got := events[2].Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if got := events[2].Source; got != buffer.ChangeSourceLocal {
		t.Fatalf("event source after insert: got %v, want %v", got, buffer.ChangeSourceLocal)
	}
}

func TestOnChange_ReportsFormatSelection(t *testing.T) {
	var last ChangeEvent
	m := New(Config{
		Text:     "hi",
		OnChange: func(ev ChangeEvent) { last = ev },
	})
	m.buf.SetSelection(buffer.Range{Start: 0, End: 2})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i"), Alt: true})

	if got, want := last.Text, "_hi_"; got != want {
		t.Fatalf("event text: got %q, want %q", got, want)
	}
	if got := last.Source; got != buffer.ChangeSourceFormat {
		t.Fatalf("event source: got %v, want %v", got, buffer.ChangeSourceFormat)
	}
	if !last.Selection.Active || last.Selection.Range != (buffer.Range{Start: 0, End: 4}) {
		t.Fatalf("event selection: got %+v, want active [0,4)", last.Selection)
	}
	if got := len(last.Change.AppliedEdits); got != 1 {
		t.Fatalf("applied edits: got %d, want %d", got, 1)
	}
}
