package dnacore

import "github.com/bebop/poly/transform"

// MaterializeLibraryGene builds a DNA slice for a gene part that
// resolved to the sequence library, per §4.5. Library genes reject any
// approximate slice bound: they have no surrounding genomic context to
// widen into.
func MaterializeLibraryGene(part GenePart, ppp PPP, librarySeq string, dnaSource string) (DNASlice, error) {
	// Approximate bounds are rejected before the ordering check, so a
	// dot-modified slice (built with no flank) reports the approximation.
	dot, err := ValidateModifiers(part.Modifiers, true, part.Loc)
	if err != nil {
		return DNASlice{}, err
	}
	kind := map[string]Kind{"": KindGene, "up": KindUpstream, "down": KindDownstream, "mrna": KindMRNA}[dot]
	if err := ValidateLibraryApprox(ApplySliceModifiers(CanonicalSlice(kind, 0), part.Modifiers), part.Loc); err != nil {
		return DNASlice{}, err
	}

	_, final, err := ResolveFinalSlice(KindGene, part.Modifiers, true, 0, part.Loc)
	if err != nil {
		return DNASlice{}, err
	}
	if err := ValidateLibraryApprox(final, part.Loc); err != nil {
		return DNASlice{}, err
	}

	length := len(librarySeq)
	x := projectLibraryOffset(final.Left, length)
	y := projectLibraryOffset(final.Right, length)

	// 1-based inclusive to 0-based inclusive.
	x0, y0 := x-1, y-1
	if !(1 <= x && x <= y && y <= length) {
		return DNASlice{}, &Error{
			Kind: ErrInvalidSlice,
			Msg:  "library slice index out of range",
			Loc:  part.Loc,
		}
	}

	seq := librarySeq[x0 : y0+1]
	desc := StripPrefix(part.Name)
	if !ppp.Forward {
		seq = transform.ReverseComplement(seq)
		desc = "!" + desc
	}

	return DNASlice{
		DNA:         seq,
		SourceChr:   "library",
		SourceFrom:  x0,
		SourceTo:    y0,
		SourceFwd:   true,
		DestFwd:     ppp.Forward,
		Template:    &seq,
		Amplified:   false,
		SliceType:   SliceRegular,
		Breed:       BX,
		Description: desc,
		Pragmas:     ppp.Pragmas,
		DNASource:   dnaSource,
	}, nil
}

// projectLibraryOffset converts a relative position into a 1-based
// library-sequence offset: 5' offsets are used directly, 3' offsets are
// measured back from length+1, per §4.5.
func projectLibraryOffset(pos RelPosition, length int) int {
	if pos.End == FivePrime {
		return pos.Offset
	}
	return length + 1 + pos.Offset
}
