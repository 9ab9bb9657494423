package dnacore

import "strings"

// DefaultApproxMargin is used when an Expander is built with no
// per-genome margin lookup.
const DefaultApproxMargin = 100

// Expander implements C6: walking an assembly's part list, dispatching
// each PPP to its materializer, expanding nested multi-parts, injecting
// fusion-junction slices, and recomputing destination offsets.
type Expander struct {
	Resolver         *Resolver
	Library          SequenceLibrary
	MarkerGeneName   string
	ExternalResolver ExternalPartResolver
	CandidateProxy   CandidateProxy
	CandidateURL     string
	LinkerChecker    LinkerChecker

	// FlankFor and MarginFor return the genome-scoped defaults for a
	// named reference genome. Both may be nil, in which case FlankFor
	// falls back to the genome's own Flank() and MarginFor falls back
	// to DefaultApproxMargin.
	FlankFor  func(genomeName string) int
	MarginFor func(genomeName string) int
}

// Expand materializes asm into an ordered list of DNA slices, per §4.6,
// then recomputes their destination offsets.
func (x *Expander) Expand(asm Assembly) ([]DNASlice, error) {
	var out []DNASlice
	for _, ppp := range asm.Parts {
		if err := x.expandPPP(ppp, asm, &out); err != nil {
			return nil, err
		}
	}
	recomputeDestOffsets(out)
	return out, nil
}

// expandPPP dispatches a single PPP to its materializer and appends the
// result(s) to out, recursing for MULTI_PART children.
func (x *Expander) expandPPP(ppp PPP, asm Assembly, out *[]DNASlice) error {
	switch p := ppp.Part.(type) {
	case ExpandedPart:
		*out = append(*out, p.Slice)
		return nil

	case ErrorPart:
		return &Error{Kind: ErrPropagatedParse, Msg: p.Msg, Loc: &p.Loc}

	case InlineProtein:
		return &Error{Kind: ErrUnexpandedSpecial, Msg: "inline protein reached the DNA-materialization stage"}

	case HeterologyBlock:
		return &Error{Kind: ErrUnexpandedSpecial, Msg: "heterology block reached the DNA-materialization stage"}

	case MarkerPart:
		dnaSource := x.Resolver.DNASource(ppp, asm.Pragmas)
		slice, err := MaterializeMarker(x.Library, x.markerName(), ppp, dnaSource)
		if err != nil {
			return err
		}
		*out = append(*out, slice)

	case InlineDNA:
		dnaSource := x.Resolver.DNASource(ppp, asm.Pragmas)
		*out = append(*out, MaterializeInline(p, ppp, dnaSource))

	case ExternalID:
		slice, err := MaterializeExternal(x.ExternalResolver, x.Library, ppp, p)
		if err != nil {
			return err
		}
		*out = append(*out, slice)

	case FusionMarker:
		dnaSource := x.Resolver.DNASource(ppp, asm.Pragmas)
		*out = append(*out, MaterializeFusion(ppp.Pragmas, dnaSource))
		return nil

	case GenePart:
		slice, err := x.expandGenePart(p, ppp, asm)
		if err != nil {
			return err
		}
		*out = append(*out, slice)

	case MultiPart:
		for _, child := range normalizeMultiPart(p.Children, ppp) {
			if err := x.expandPPP(child, asm, out); err != nil {
				return err
			}
		}
		return nil

	default:
		return &Error{Kind: ErrUnexpandedSpecial, Msg: "unrecognized part kind at DNA-materialization stage"}
	}

	if ppp.Pragmas != nil && ppp.Pragmas.Contains("fuse") {
		dnaSource := x.Resolver.DNASource(ppp, asm.Pragmas)
		*out = append(*out, MaterializeFusion(ppp.Pragmas, dnaSource))
	}
	return nil
}

// expandGenePart resolves a gene part's source (C4) and dispatches to
// the library or genomic materializer (C5).
func (x *Expander) expandGenePart(p GenePart, ppp PPP, asm Assembly) (DNASlice, error) {
	if p.Name == "" {
		return DNASlice{}, &Error{Kind: ErrUnknownPrefix, Msg: "empty gene part name", Loc: p.Loc}
	}
	if _, _, err := InitialClassification(p.Name[0]); err != nil {
		if de, ok := err.(*Error); ok {
			de.Loc = p.Loc
		}
		return DNASlice{}, err
	}

	stripped := StripPrefix(p.Name)
	genomeName := x.Resolver.ChooseGenomeName(ppp, asm.Pragmas)

	var genome ReferenceGenome
	if genomeName != "" {
		g, err := x.Resolver.ChooseGenome(genomeName)
		if err != nil {
			return DNASlice{}, err
		}
		genome = g
	}

	source, err := x.Resolver.Dispatch(genome, stripped)
	if err != nil {
		return DNASlice{}, err
	}

	if err := ValidateLinker(x.LinkerChecker, p); err != nil {
		return DNASlice{}, err
	}

	dnaSource := x.Resolver.DNASource(ppp, asm.Pragmas)

	switch source {
	case SourceLibrary:
		seq, _ := x.Library.Get(strings.ToUpper(stripped))
		return MaterializeLibraryGene(p, ppp, seq, dnaSource)

	default: // SourceGenomic
		feature, err := genome.Get(stripped)
		if err != nil {
			return DNASlice{}, err
		}
		flank := genome.Flank()
		if x.FlankFor != nil {
			flank = x.FlankFor(genomeName)
		}
		margin := DefaultApproxMargin
		if x.MarginFor != nil {
			margin = x.MarginFor(genomeName)
		}

		slice, err := MaterializeGenomicGene(p, ppp, stripped, feature, genome, flank, margin, dnaSource)
		if err != nil {
			return DNASlice{}, err
		}
		slice.ExternalCandidates = AttachCandidates(x.CandidateProxy, x.CandidateURL, slice, stripped)
		return slice, nil
	}
}

func (x *Expander) markerName() string {
	if x.MarkerGeneName != "" {
		return x.MarkerGeneName
	}
	return "URA3"
}

// normalizeMultiPart distributes a MULTI_PART's parent pragmas and
// direction over its children. Current policy (§9) is identity: the
// children are returned unchanged, direction and pragmas are not pushed
// down. The parent ppp parameter is the hook for a future policy that
// reverses child order/direction when the parent is reversed, or fills
// in pragmas children lack.
func normalizeMultiPart(children []PPP, parent PPP) []PPP {
	return children
}

// recomputeDestOffsets assigns dest_from/dest_to so that slice i begins
// where slice i-1 ended, per §4.6's post-traversal pass. Fusion slices
// (len 0) produce dest_to = dest_from - 1, advancing nothing.
func recomputeDestOffsets(slices []DNASlice) {
	offset := 0
	for i := range slices {
		length := len(slices[i].DNA)
		slices[i].DestFrom = offset
		slices[i].DestTo = offset + length - 1
		offset += length
	}
}
