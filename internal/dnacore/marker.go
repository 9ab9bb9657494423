package dnacore

// MaterializeMarker fetches the configured marker gene (default URA3)
// from the sequence library and emits a MARKER slice, per §4.5. A
// missing library entry is fatal (ErrMissingMarker).
func MaterializeMarker(library SequenceLibrary, markerGeneName string, ppp PPP, dnaSource string) (DNASlice, error) {
	seq, ok := library.Get(markerGeneName)
	if !ok {
		return DNASlice{}, &Error{Kind: ErrMissingMarker, Msg: "library lacks marker gene " + markerGeneName}
	}

	return DNASlice{
		DNA:        seq,
		SourceChr:  "library",
		SourceFrom: 0,
		SourceTo:   len(seq) - 1,
		SourceFwd:  true,
		DestFwd:    ppp.Forward,
		Template:   &seq,
		Amplified:  false,
		SliceType:  SliceMarker,
		Breed:      BMarker,
		Description: markerGeneName + " marker",
		Pragmas:     ppp.Pragmas,
		DNASource:   dnaSource,
	}, nil
}
