package format

import (
	"regexp"
	"strconv"

	"github.com/forem/mdtoolbar/buffer"
)

var (
	orderedItemRE   = regexp.MustCompile(`^\d+\.\s+`)
	orderedMarkerRE = regexp.MustCompile(`^\d+\.\s`)
)

// OrderedList toggles a numbered list over the selected lines. Wrapping
// numbers every line from 1 regardless of any existing numbers; unwrapping
// strips the "N. " marker from each item.
func OrderedList(text string, sel buffer.Range) Edit {
	return toggleLines(text, sel, lineSyntax{
		bare:   "1. ",
		prefix: func(i int) string { return strconv.Itoa(i+1) + ". " },
		match:  orderedItemRE.MatchString,
		strip: func(line string) string {
			loc := orderedMarkerRE.FindStringIndex(line)
			if loc == nil {
				return line
			}
			return line[loc[1]:]
		},
	})
}
