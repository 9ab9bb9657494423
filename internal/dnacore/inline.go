package dnacore

import "github.com/bebop/poly/transform"

// MaterializeInline builds a DNA slice directly from a literal sequence
// given in the source, reverse-complementing it when the PPP is
// reversed, per §4.5.
func MaterializeInline(part InlineDNA, ppp PPP, dnaSource string) DNASlice {
	seq := part.Literal
	desc := part.Literal
	if !ppp.Forward {
		seq = transform.ReverseComplement(seq)
		desc = "!" + desc
	}

	return DNASlice{
		DNA:         seq,
		SourceChr:   "inline",
		SourceFrom:  0,
		SourceTo:    len(part.Literal) - 1,
		SourceFwd:   true,
		DestFwd:     ppp.Forward,
		Template:    &seq,
		Amplified:   false,
		SliceType:   SliceInline,
		Breed:       BInline,
		Description: desc,
		Pragmas:     ppp.Pragmas,
		DNASource:   dnaSource,
	}
}
