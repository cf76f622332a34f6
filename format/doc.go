// Package format implements the selection-aware markdown formatters behind
// an editor toolbar.
//
// Every formatter is a pure function of a document and a selection. It never
// mutates anything; it returns an Edit that describes one splice plus the
// selection to adopt afterwards. Hosts apply the Edit (see Apply and
// buffer.Buffer.Replace) and own all state.
//
// Offsets are rune offsets. Selections are half-open buffer.Range values.
//
// Formatters toggle: running one over text that already carries its syntax,
// either inside the selection or immediately around it, removes the syntax
// instead of adding it again.
package format
