package format

import (
	"fmt"
	"unicode/utf8"

	"github.com/forem/mdtoolbar/buffer"
)

// Context splits a document around a selection.
// Before+Selected+After always equals the document.
type Context struct {
	Before   string
	Selected string
	After    string
}

// Extract returns the selection context of sel in text.
//
// sel must be normalized and lie within [0, len(text)] in runes; anything
// else is a caller bug and panics.
func Extract(text string, sel buffer.Range) Context {
	rs := []rune(text)
	mustContain(len(rs), sel)
	return Context{
		Before:   string(rs[:sel.Start]),
		Selected: string(rs[sel.Start:sel.End]),
		After:    string(rs[sel.End:]),
	}
}

func mustContain(n int, r buffer.Range) {
	if r.Start < 0 || r.Start > r.End || r.End > n {
		panic(fmt.Sprintf("format: range [%d,%d) outside document of length %d", r.Start, r.End, n))
	}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
