// Package paste offers to turn a pasted URL into a liquid embed tag.
//
// Detect decides whether a paste qualifies. Offer holds the single live
// candidate until the user picks Embed or Dismiss; a newer paste replaces an
// older one.
package paste

import (
	"strings"

	"github.com/forem/mdtoolbar/buffer"
	"github.com/forem/mdtoolbar/format"
)

const (
	embedOpen  = "{% embed "
	embedClose = " %}"
)

// Candidate is a pasted URL and the offset it was pasted at.
type Candidate struct {
	Offset int
	URL    string
}

// Detect reports whether pasting pasted over sel in text should offer an
// embed. text is the document before the paste lands.
//
// The paste must carry no files, be exactly one absolute URL, land on a line
// with nothing but whitespace before it, and not land inside an open embed
// tag.
func Detect(text string, sel buffer.Range, pasted string, hasFiles bool) (Candidate, bool) {
	if hasFiles {
		return Candidate{}, false
	}
	url := strings.TrimSpace(pasted)
	if !format.IsURL(url) {
		return Candidate{}, false
	}
	before := format.Extract(text, sel).Before
	line := before[strings.LastIndexByte(before, '\n')+1:]
	if strings.TrimSpace(line) != "" {
		return Candidate{}, false
	}
	if insideEmbed(before) {
		return Candidate{}, false
	}
	// The URL lands after any leading whitespace the paste carried.
	lead := len([]rune(pasted[:strings.Index(pasted, url)]))
	return Candidate{Offset: sel.Start + lead, URL: url}, true
}

func insideEmbed(before string) bool {
	open := strings.LastIndex(before, "{% embed")
	return open >= 0 && !strings.Contains(before[open:], "%}")
}

// Embed returns the edit that wraps c's URL in an embed tag.
//
// The URL is first looked for at c.Offset. If the document has moved on, the
// leftmost occurrence of the URL anywhere in text is used instead, which can
// pick an earlier copy of the same link. It reports false when the URL is
// nowhere in text.
func Embed(text string, c Candidate) (format.Edit, bool) {
	rs := []rune(text)
	n := len([]rune(c.URL))
	start := -1
	if c.Offset >= 0 && c.Offset+n <= len(rs) && string(rs[c.Offset:c.Offset+n]) == c.URL {
		start = c.Offset
	} else if i := strings.Index(text, c.URL); i >= 0 && c.URL != "" {
		start = len([]rune(text[:i]))
	}
	if start < 0 {
		return format.Edit{}, false
	}
	tag := embedOpen + c.URL + embedClose
	return format.Edit{
		Range:     buffer.Range{Start: start, End: start + n},
		Text:      tag,
		Selection: buffer.Caret(start + len([]rune(tag))),
	}, true
}
