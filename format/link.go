package format

import (
	"regexp"
	"strings"

	"github.com/forem/mdtoolbar/buffer"
)

// LinkPlaceholder stands in for a URL the user has not typed yet.
const LinkPlaceholder = "url"

var linkRE = regexp.MustCompile(`^\[([^\]]*)\]\(([^()\s]*)\)$`)

// Link inserts or removes markdown link syntax. Cases are checked in order:
//
//  1. caret inside the brackets of "[](...)": remove the construct, keeping
//     a real URL
//  2. any other caret: insert "[](url)" with the caret in the brackets
//  3. a URL selected inside "[text](...)": replace the link with its text,
//     or with the URL when the text is empty
//  4. a URL selected elsewhere: wrap it as "[](URL)"
//  5. a whole "[text](URL)" selected: replace it with text (or the URL)
//  6. anything else: wrap as "[text](url)" and select the placeholder
func Link(text string, sel buffer.Range) Edit {
	rs := []rune(text)
	c := Extract(text, sel)

	if sel.IsEmpty() {
		if strings.HasSuffix(c.Before, "[") && strings.HasPrefix(c.After, "](") {
			if closing := IndexForward(rs, sel.End, ')', " \n"); closing >= 0 {
				target := string(rs[sel.End+2 : closing])
				if target == LinkPlaceholder {
					target = ""
				}
				return replaceSelected(buffer.Range{Start: sel.Start - 1, End: closing + 1}, target)
			}
		}
		return Edit{
			Range:     sel,
			Text:      "[](" + LinkPlaceholder + ")",
			Selection: buffer.Caret(sel.Start + 1),
		}
	}

	if isLinkTarget(c.Selected) {
		if strings.HasSuffix(c.Before, "](") && strings.HasPrefix(c.After, ")") {
			if opening := IndexBackward(rs, sel.Start-3, '[', "\n"); opening >= 0 {
				desc := string(rs[opening+1 : sel.Start-2])
				return replaceSelected(buffer.Range{Start: opening, End: sel.End + 1}, linkText(desc, c.Selected))
			}
		}
		return Edit{
			Range:     sel,
			Text:      "[](" + c.Selected + ")",
			Selection: buffer.Caret(sel.Start + 1),
		}
	}

	if m := linkRE.FindStringSubmatch(c.Selected); m != nil && isLinkTarget(m[2]) {
		return replaceSelected(sel, linkText(m[1], m[2]))
	}

	target := sel.Start + runeLen(c.Selected) + len("[](")
	return Edit{
		Range:     sel,
		Text:      "[" + c.Selected + "](" + LinkPlaceholder + ")",
		Selection: buffer.Range{Start: target, End: target + runeLen(LinkPlaceholder)},
	}
}

func isLinkTarget(s string) bool {
	return s == LinkPlaceholder || IsURL(s)
}

// linkText is what a link collapses to when unlinked: its description, or
// its URL when there is no description and the URL is real.
func linkText(desc, target string) string {
	if desc == "" && target != LinkPlaceholder {
		return target
	}
	return desc
}

func replaceSelected(r buffer.Range, s string) Edit {
	return Edit{
		Range:     r,
		Text:      s,
		Selection: buffer.Range{Start: r.Start, End: r.Start + runeLen(s)},
	}
}
