package dnacore

// Kind is the canonical gene-part shape a part is materialized against,
// before any breed refinement.
type Kind string

const (
	KindPromoter   Kind = "PROMOTER"
	KindUpstream   Kind = "UPSTREAM"
	KindTerminator Kind = "TERMINATOR"
	KindDownstream Kind = "DOWNSTREAM"
	KindFusableORF Kind = "FUSABLE_ORF"
	KindORF        Kind = "ORF"
	KindGene       Kind = "GENE"
	KindMRNA       Kind = "MRNA"
)

// CanonicalSlice returns the initial symbolic slice for kind, per the
// table in spec §4.2. flank is the genome-configurable window used by
// UPSTREAM/DOWNSTREAM.
func CanonicalSlice(kind Kind, flank int) SymSlice {
	switch kind {
	case KindPromoter:
		return SymSlice{
			Left:    RelPosition{Offset: -500, End: FivePrime},
			Right:   RelPosition{Offset: -1, End: FivePrime},
			LApprox: true,
		}
	case KindUpstream:
		return SymSlice{
			Left:    RelPosition{Offset: -flank, End: FivePrime},
			Right:   RelPosition{Offset: -1, End: FivePrime},
			LApprox: true,
		}
	case KindTerminator:
		return SymSlice{
			Left:    RelPosition{Offset: 1, End: ThreePrime},
			Right:   RelPosition{Offset: 500, End: ThreePrime},
			RApprox: true,
		}
	case KindDownstream:
		return SymSlice{
			Left:    RelPosition{Offset: 1, End: ThreePrime},
			Right:   RelPosition{Offset: flank, End: ThreePrime},
			RApprox: true,
		}
	case KindFusableORF:
		return SymSlice{
			Left:  RelPosition{Offset: 1, End: FivePrime},
			Right: RelPosition{Offset: -4, End: ThreePrime},
		}
	case KindORF, KindGene:
		return SymSlice{
			Left:  RelPosition{Offset: 1, End: FivePrime},
			Right: RelPosition{Offset: -1, End: ThreePrime},
		}
	case KindMRNA:
		return SymSlice{
			Left:    RelPosition{Offset: 1, End: FivePrime},
			Right:   RelPosition{Offset: 200, End: ThreePrime},
			RApprox: true,
		}
	}
	return SymSlice{}
}

// ApplySliceModifiers folds the non-dot modifiers in mods over initial in
// order, each one replacing whichever side(s) it sets. Dot modifiers are
// handled separately by the gene-part materializer, since they change
// Kind rather than the slice bounds.
func ApplySliceModifiers(initial SymSlice, mods []Modifier) SymSlice {
	cur := initial
	for _, m := range mods {
		if m.IsDot() {
			continue
		}
		if m.HasLeft {
			cur.Left = m.Left
			cur.LApprox = m.LApprox
		}
		if m.HasRight {
			cur.Right = m.Right
			cur.RApprox = m.RApprox
		}
	}
	return cur
}

// ResolveFinalSlice validates mods, resolves any dot-modifier into a
// Kind override (only legal when isGeneKind, i.e. the part's prefix was
// "g"), and folds the remaining slice modifiers over the resulting
// canonical slice. It returns the effective Kind (possibly overridden by
// a dot-modifier) and the final symbolic slice.
func ResolveFinalSlice(initialKind Kind, mods []Modifier, isGeneKind bool, flank int, loc *SourceLocation) (Kind, SymSlice, error) {
	dot, err := ValidateModifiers(mods, isGeneKind, loc)
	if err != nil {
		return "", SymSlice{}, err
	}

	kind := initialKind
	switch dot {
	case "up":
		kind = KindUpstream
	case "down":
		kind = KindDownstream
	case "mrna":
		kind = KindMRNA
	}

	canonical := CanonicalSlice(kind, flank)
	final := ApplySliceModifiers(canonical, mods)
	if err := ValidateSliceOrdering(final, loc); err != nil {
		return "", SymSlice{}, err
	}
	return kind, final, nil
}

// WidenApprox returns a copy of s with each approximate endpoint moved
// margin bases outward, away from the feature body. Endpoints that are
// not approximate are left unchanged.
func WidenApprox(s SymSlice, margin int) SymSlice {
	out := s
	if s.LApprox {
		out.Left = RelPosition{Offset: s.Left.Offset - margin, End: s.Left.End}
	}
	if s.RApprox {
		out.Right = RelPosition{Offset: s.Right.Offset + margin, End: s.Right.End}
	}
	return out
}
