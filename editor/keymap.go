package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/forem/mdtoolbar/format"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	// Format maps formatter ids to their shortcuts.
	Format map[format.ID]key.Binding

	Palette      key.Binding
	Embed        key.Binding
	DismissEmbed key.Binding
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Format) == 0
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "doc start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "doc end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Format: map[format.ID]key.Binding{
			format.IDBold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
			format.IDItalic:        key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
			format.IDLink:          key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "link")),
			format.IDOrderedList:   key.NewBinding(key.WithKeys("alt+7"), key.WithHelp("alt+7", "ordered list")),
			format.IDUnorderedList: key.NewBinding(key.WithKeys("alt+8"), key.WithHelp("alt+8", "unordered list")),
			format.IDHeading:       key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "heading")),
			format.IDQuote:         key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "quote")),
			format.IDCode:          key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code")),
			format.IDCodeBlock:     key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "code block")),
			format.IDUnderline:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "underline")),
			format.IDStrikethrough: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strikethrough")),
			format.IDDivider:       key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "divider")),
			format.IDEmbed:         key.NewBinding(key.WithKeys("alt+m"), key.WithHelp("alt+m", "embed")),
		},

		Palette:      key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "formatters")),
		Embed:        key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "embed link")),
		DismissEmbed: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}

// SetFormatKeys replaces the shortcut of id. No keys unbinds it.
func (km *KeyMap) SetFormatKeys(id format.ID, keys ...string) {
	next := make(map[format.ID]key.Binding, len(km.Format)+1)
	for k, v := range km.Format {
		next[k] = v
	}
	if len(keys) == 0 {
		delete(next, id)
	} else {
		next[id] = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], string(id)))
	}
	km.Format = next
}
