package format

import (
	"strings"

	"github.com/forem/mdtoolbar/buffer"
)

// MaxHeadingLevel is the deepest heading before Heading cycles back to plain
// text.
const MaxHeadingLevel = 4

// Heading cycles the line holding the selection start through heading
// levels: plain, #, ##, ###, ####, plain.
//
// Only a '#' run at the very start of the line counts as a heading; a run
// preceded by whitespace is treated as plain text.
func Heading(text string, sel buffer.Range) Edit {
	rs := []rune(text)
	mustContain(len(rs), sel)

	lineStart := sel.Start
	for lineStart > 0 && rs[lineStart-1] != '\n' {
		lineStart--
	}
	level := 0
	for lineStart+level < len(rs) && rs[lineStart+level] == '#' {
		level++
	}

	switch {
	case level == 0:
		ins := Padding(string(rs[:lineStart])) + "# "
		return headingInsert(sel, lineStart, ins)
	case level < MaxHeadingLevel:
		return headingInsert(sel, lineStart, "#")
	default:
		n := level
		if lineStart+n < len(rs) && rs[lineStart+n] == ' ' {
			n++
		}
		e := Edit{Range: buffer.Range{Start: lineStart, End: lineStart + n}}
		e.Selection = e.MapRange(sel)
		return e
	}
}

// HeadingLevel reports the heading level of the line containing off.
func HeadingLevel(text string, off int) int {
	rs := []rune(text)
	mustContain(len(rs), buffer.Caret(off))
	start := off
	for start > 0 && rs[start-1] != '\n' {
		start--
	}
	line := string(rs[start:])
	return len(line) - len(strings.TrimLeft(line, "#"))
}

func headingInsert(sel buffer.Range, at int, ins string) Edit {
	n := runeLen(ins)
	return Edit{
		Range:     buffer.Caret(at),
		Text:      ins,
		Selection: buffer.Range{Start: sel.Start + n, End: sel.End + n},
	}
}
