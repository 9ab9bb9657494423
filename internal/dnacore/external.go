package dnacore

// MaterializeExternal delegates to resolver to build a ready-made slice
// for an EXTERNAL_ID part, per §4.5. Open Question (a): the resolver is
// called with its §6 signature verbatim; the assembly's chosen
// dna_source is not threaded through (see DESIGN.md).
func MaterializeExternal(resolver ExternalPartResolver, library SequenceLibrary, ppp PPP, part ExternalID) (DNASlice, error) {
	return resolver.FetchSequence(library, ppp, part.PartID)
}
