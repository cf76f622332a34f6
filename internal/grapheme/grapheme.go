package grapheme

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// FirstLen returns the length in runes of the first grapheme cluster of text.
func FirstLen(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	if !g.Next() {
		return 0
	}
	return utf8.RuneCountInString(g.Str())
}

// LastLen returns the length in runes of the last grapheme cluster of text.
func LastLen(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n = utf8.RuneCountInString(g.Str())
	}
	return n
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	if start >= idx {
		return ""
	}
	return sb.String()
}

// Truncate shortens text to at most max grapheme clusters, replacing the
// tail with an ellipsis when it does not fit.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if Count(text) <= max {
		return text
	}
	if max == 1 {
		return "…"
	}
	return Slice(text, 0, max-1) + "…"
}
