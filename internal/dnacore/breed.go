package dnacore

// InitialClassification maps a gene-part prefix character to the
// canonical Kind and starting Breed, per the table in spec §4.3.
//
// X is returned for the "g" prefix: its breed is only known after
// materialization, once RefineGenomic has had a chance to look at the
// final slice geometry.
func InitialClassification(prefix byte) (Kind, Breed, error) {
	switch prefix {
	case 'p':
		return KindPromoter, BPromoter, nil
	case 't':
		return KindTerminator, BTerminator, nil
	case 'u':
		return KindUpstream, BUpstream, nil
	case 'd':
		return KindDownstream, BDownstream, nil
	case 'o':
		return KindORF, BGS, nil
	case 'f':
		return KindFusableORF, BFusableORF, nil
	case 'g':
		return KindGene, BX, nil
	case 'm':
		return KindMRNA, BGST, nil
	}
	return "", "", &Error{Kind: ErrUnknownPrefix, Msg: "unrecognized part prefix: " + string(prefix)}
}

// near reports whether a and b share an endpoint and their offsets are
// within tol of each other.
func near(a, b RelPosition, tol int) bool {
	if a.End != b.End {
		return false
	}
	d := a.Offset - b.Offset
	if d < 0 {
		d = -d
	}
	return d < tol
}

// RefineGenomic re-classifies a genomic gene part (initial breed BX) by
// the geometry of its final, approximate-aware slice, per spec §4.3. Any
// other initial breed is returned unchanged.
func RefineGenomic(initial Breed, final SymSlice) Breed {
	if initial != BX {
		return initial
	}

	threePrimeOne := RelPosition{Offset: 1, End: ThreePrime}
	threePrime150 := RelPosition{Offset: 150, End: ThreePrime}
	fivePrime300 := RelPosition{Offset: -300, End: FivePrime}
	fivePrimeOne := RelPosition{Offset: -1, End: FivePrime}

	switch {
	case near(final.Left, threePrimeOne, 1) && near(final.Right, threePrime150, 100):
		return BTerminator
	case near(final.Left, fivePrime300, 400) && near(final.Right, fivePrimeOne, 40):
		return BPromoter
	case final.Left == RelPosition{Offset: 1, End: FivePrime} && near(final.Right, threePrime150, 100):
		return BGST
	}
	return BX
}
