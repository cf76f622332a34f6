package editor

import "github.com/forem/mdtoolbar/buffer"

// ChangeEvent is delivered to Config.OnChange after an update that changed
// the buffer.
type ChangeEvent struct {
	Version   uint64
	Cursor    int
	Selection struct {
		Range  buffer.Range
		Active bool
	}
	Source buffer.ChangeSource

	// Change is the buffer's record of the last committed mutation.
	Change buffer.Change

	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if ch, ok := b.LastChange(); ok {
		ev.Change = ch
		ev.Source = ch.Source
	}
	return ev
}
