package format

import "github.com/forem/mdtoolbar/buffer"

// Edit is the declarative result of a formatter: replace Range (pre-edit
// offsets) with Text, then select Selection (post-edit offsets).
type Edit struct {
	Range     buffer.Range
	Text      string
	Selection buffer.Range
}

// TextEdit returns the splice part of e for buffer.Buffer.Apply/Replace.
func (e Edit) TextEdit() buffer.TextEdit {
	return buffer.TextEdit{Range: e.Range, Text: e.Text}
}

// Delta is the change in document length caused by e, in runes.
func (e Edit) Delta() int {
	return runeLen(e.Text) - e.Range.Len()
}

// MapOffset maps a pre-edit offset to the post-edit document.
//
// Offsets at or before the start of the edited range are unchanged, offsets
// at or after its end shift by Delta, and offsets strictly inside it collapse
// to the end of the replacement.
func (e Edit) MapOffset(off int) int {
	switch {
	case off <= e.Range.Start:
		return off
	case off >= e.Range.End:
		return off + e.Delta()
	default:
		return e.Range.Start + runeLen(e.Text)
	}
}

// MapRange maps both ends of r with MapOffset.
func (e Edit) MapRange(r buffer.Range) buffer.Range {
	return buffer.Range{Start: e.MapOffset(r.Start), End: e.MapOffset(r.End)}
}

// Apply splices e into text and returns the new text together with the
// selection the caller should adopt.
func Apply(text string, e Edit) (string, buffer.Range) {
	rs := []rune(text)
	mustContain(len(rs), e.Range)

	out := make([]rune, 0, len(rs)+e.Delta())
	out = append(out, rs[:e.Range.Start]...)
	out = append(out, []rune(e.Text)...)
	out = append(out, rs[e.Range.End:]...)
	return string(out), e.Selection
}
