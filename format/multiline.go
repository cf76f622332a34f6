package format

import (
	"strings"

	"github.com/forem/mdtoolbar/buffer"
)

// Padding returns the line breaks needed after before so that a block
// element starts its own paragraph. Nothing is needed at the start of the
// document.
func Padding(before string) string {
	if before == "" {
		return ""
	}
	n := 0
	for n < 2 && strings.HasSuffix(before[:len(before)-n], "\n") {
		n++
	}
	return strings.Repeat("\n", 2-n)
}

// lineSyntax describes a syntax applied independently to every selected line.
type lineSyntax struct {
	// bare is inserted (or removed again) for an empty selection.
	bare   string
	prefix func(i int) string
	match  func(line string) bool
	strip  func(line string) string
}

// LinePrefix toggles a per-line prefix such as "> " or "- " over every line
// of the selection.
func LinePrefix(text string, sel buffer.Range, prefix string) Edit {
	return toggleLines(text, sel, lineSyntax{
		bare:   prefix,
		prefix: func(int) string { return prefix },
		match:  func(line string) bool { return strings.HasPrefix(line, prefix) },
		strip:  func(line string) string { return strings.TrimPrefix(line, prefix) },
	})
}

func toggleLines(text string, sel buffer.Range, syn lineSyntax) Edit {
	c := Extract(text, sel)

	if sel.IsEmpty() {
		if head, ok := strings.CutSuffix(c.Before, syn.bare); ok && atLineStart(head) {
			start := sel.Start - runeLen(syn.bare)
			return Edit{
				Range:     buffer.Range{Start: start, End: sel.End},
				Selection: buffer.Caret(start),
			}
		}
		ins := Padding(c.Before) + syn.bare
		return Edit{
			Range:     sel,
			Text:      ins,
			Selection: buffer.Caret(sel.Start + runeLen(ins)),
		}
	}

	lines := strings.Split(c.Selected, "\n")
	if allMatch(lines, syn.match) {
		for i, line := range lines {
			if syn.match(line) {
				lines[i] = syn.strip(line)
			}
		}
		out := strings.Join(lines, "\n")
		return Edit{
			Range:     sel,
			Text:      out,
			Selection: buffer.Range{Start: sel.Start, End: sel.Start + runeLen(out)},
		}
	}

	for i, line := range lines {
		lines[i] = syn.prefix(i) + line
	}
	pad := Padding(c.Before)
	return Edit{
		Range:     sel,
		Text:      pad + strings.Join(lines, "\n"),
		Selection: buffer.Caret(sel.Start + runeLen(pad) + runeLen(syn.prefix(0))),
	}
}

// allMatch reports whether every non-empty line matches. Blank lines are
// ignored, but at least one line must carry content.
func allMatch(lines []string, match func(string) bool) bool {
	seen := false
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !match(line) {
			return false
		}
		seen = true
	}
	return seen
}

func atLineStart(before string) bool {
	return before == "" || strings.HasSuffix(before, "\n")
}

// Block toggles a block-level pair such as a code fence around the
// selection. Detection mirrors Inline. When wrapping, the block is moved into
// its own paragraph and the caret lands on its first content position.
func Block(text string, sel buffer.Range, prefix, suffix string) Edit {
	c := Extract(text, sel)
	pl, sl := runeLen(prefix), runeLen(suffix)

	if isWrapped(c.Selected, prefix, suffix) {
		inner := c.Selected[len(prefix) : len(c.Selected)-len(suffix)]
		return Edit{
			Range:     sel,
			Text:      inner,
			Selection: buffer.Range{Start: sel.Start, End: sel.Start + runeLen(inner)},
		}
	}

	if isFlanked(c, prefix, suffix) {
		return Edit{
			Range:     buffer.Range{Start: sel.Start - pl, End: sel.End + sl},
			Text:      c.Selected,
			Selection: buffer.Range{Start: sel.Start - pl, End: sel.End - pl},
		}
	}

	pad := Padding(c.Before)
	return Edit{
		Range:     sel,
		Text:      pad + prefix + c.Selected + suffix,
		Selection: buffer.Caret(sel.Start + runeLen(pad) + pl),
	}
}
