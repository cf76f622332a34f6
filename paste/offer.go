package paste

import "github.com/forem/mdtoolbar/format"

// Offer is the embed affordance state owned by the host. The zero value has
// nothing live.
type Offer struct {
	seq       uint64
	live      bool
	candidate Candidate
}

// Show makes c the live candidate, superseding any earlier one, and returns
// its sequence number. Hosts that display the offer after a delay pass the
// number back to Current to learn whether it is still wanted.
func (o *Offer) Show(c Candidate) uint64 {
	o.seq++
	o.live = true
	o.candidate = c
	return o.seq
}

// Live returns the live candidate, if any.
func (o *Offer) Live() (Candidate, bool) {
	return o.candidate, o.live
}

// Current reports whether seq is the live offer.
func (o *Offer) Current(seq uint64) bool {
	return o.live && o.seq == seq
}

// Dismiss drops the live candidate without touching the document.
func (o *Offer) Dismiss() {
	o.live = false
	o.candidate = Candidate{}
}

// Embed resolves the live candidate against the current text. The offer is
// dismissed whether or not an edit is produced.
func (o *Offer) Embed(text string) (format.Edit, bool) {
	c, ok := o.Live()
	o.Dismiss()
	if !ok {
		return format.Edit{}, false
	}
	return Embed(text, c)
}
