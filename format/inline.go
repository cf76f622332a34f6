package format

import (
	"strings"

	"github.com/forem/mdtoolbar/buffer"
)

// Inline toggles a prefix/suffix pair such as "**" around the selection.
//
// The selection is unwrapped when it already starts with prefix and ends
// with suffix, or when prefix and suffix sit immediately outside it.
// Otherwise it is wrapped. A wrapped non-empty selection stays selected
// including the new syntax, so further formats stack on the same span; an
// empty selection leaves the caret between prefix and suffix.
func Inline(text string, sel buffer.Range, prefix, suffix string) Edit {
	c := Extract(text, sel)
	pl, sl := runeLen(prefix), runeLen(suffix)

	if isWrapped(c.Selected, prefix, suffix) {
		inner := c.Selected[len(prefix) : len(c.Selected)-len(suffix)]
		return Edit{
			Range:     sel,
			Text:      inner,
			Selection: buffer.Range{Start: sel.Start, End: sel.End - pl - sl},
		}
	}

	if isFlanked(c, prefix, suffix) {
		return Edit{
			Range:     buffer.Range{Start: sel.Start - pl, End: sel.End + sl},
			Text:      c.Selected,
			Selection: buffer.Range{Start: sel.Start - pl, End: sel.End - pl},
		}
	}

	next := buffer.Range{Start: sel.Start, End: sel.End + pl + sl}
	if sel.IsEmpty() {
		next = buffer.Caret(sel.Start + pl)
	}
	return Edit{
		Range:     sel,
		Text:      prefix + c.Selected + suffix,
		Selection: next,
	}
}

func isWrapped(s, prefix, suffix string) bool {
	return len(s) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(s, prefix) &&
		strings.HasSuffix(s, suffix)
}

func isFlanked(c Context, prefix, suffix string) bool {
	return strings.HasSuffix(c.Before, prefix) && strings.HasPrefix(c.After, suffix)
}
