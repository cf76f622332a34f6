// Package upload tracks an image upload that completes after the user has
// kept typing.
//
// Start splices a unique placeholder token into the document. When the
// upload resolves, Finish looks for that token in whatever the document has
// become and swaps in the final markdown, or does nothing if the token is
// gone.
package upload

import (
	"strconv"
	"strings"

	"github.com/forem/mdtoolbar/buffer"
	"github.com/forem/mdtoolbar/format"
)

// Token returns the placeholder marker for upload id.
func Token(id string) string {
	return "![Uploading image " + id + "...]()"
}

// FreeID returns the first upload id after n whose token does not already
// appear in text. Ids restart with every editor, so a document saved with a
// placeholder still in it would otherwise capture the next upload.
func FreeID(text string, n int) int {
	for {
		n++
		if !strings.Contains(text, Token(strconv.Itoa(n))) {
			return n
		}
	}
}

// Pending is the state carried between Start and Finish.
type Pending struct {
	ID    string
	Token string
}

// Start replaces sel with the placeholder for id and leaves the caret just
// after it.
func Start(text string, sel buffer.Range, id string) (Pending, format.Edit) {
	p := Pending{ID: id, Token: Token(id)}
	e := format.Edit{Range: sel, Text: p.Token}
	e.Selection = buffer.Caret(sel.Start + len([]rune(p.Token)))
	return p, e
}

// Finish replaces the placeholder of p in the current text with content.
//
// sel is the selection as it is now, not as it was at Start. Selection ends
// after the token shift by the change in length, ends inside it move to the
// end of content and ends before it stay put. It reports false when the
// token no longer exists.
func Finish(text string, sel buffer.Range, p Pending, content string) (format.Edit, bool) {
	i := strings.Index(text, p.Token)
	if p.Token == "" || i < 0 {
		return format.Edit{}, false
	}
	start := len([]rune(text[:i]))
	e := format.Edit{
		Range: buffer.Range{Start: start, End: start + len([]rune(p.Token))},
		Text:  content,
	}
	e.Selection = e.MapRange(sel)
	return e, true
}
