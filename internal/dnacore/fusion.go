package dnacore

// MaterializeFusion emits the sentinel FUSION slice for an explicit
// FusionMarker part or a `fuse` pragma trailing another part, per §4.5.
// pragmas are the Open-Question-(c) choice: the pragmas of whichever
// part triggered the junction.
func MaterializeFusion(pragmas Pragmas, dnaSource string) DNASlice {
	return DNASlice{
		DNA:         "",
		SourceChr:   "",
		DestFwd:     true,
		Template:    nil,
		Amplified:   false,
		SliceType:   SliceFusion,
		Breed:       BVirtual,
		Description: "::",
		Pragmas:     pragmas,
		DNASource:   dnaSource,
	}
}
