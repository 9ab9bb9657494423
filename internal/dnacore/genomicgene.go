package dnacore

import "github.com/bebop/poly/transform"

// MaterializeGenomicGene builds a DNA slice for a gene part that
// resolved to a feature in the reference genome, per §4.5. strippedName
// is the gene's bare name (its prefix already removed), used as the
// fetch tag and as the slice description.
func MaterializeGenomicGene(part GenePart, ppp PPP, strippedName string, feature Feature, genome ReferenceGenome, flank, margin int, dnaSource string) (DNASlice, error) {
	kind, initialBreed, err := InitialClassification(part.Name[0])
	if err != nil {
		if de, ok := err.(*Error); ok {
			de.Loc = part.Loc
		}
		return DNASlice{}, err
	}
	isGeneKind := kind == KindGene

	_, final, err := ResolveFinalSlice(kind, part.Modifiers, isGeneKind, flank, part.Loc)
	if err != nil {
		return DNASlice{}, err
	}

	approx := WidenApprox(final, margin)
	leftProj := AdjustToPhysical(feature, approx.Left)
	rightProj := AdjustToPhysical(feature, approx.Right)

	var physLeft, physRight int
	var fromApprox, toApprox bool
	if feature.Forward {
		physLeft, physRight = leftProj, rightProj
		fromApprox, toApprox = final.LApprox, final.RApprox
	} else {
		physLeft, physRight = rightProj, leftProj
		fromApprox, toApprox = final.RApprox, final.LApprox
	}
	if physLeft > physRight {
		return DNASlice{}, &Error{
			Kind: ErrNegativeLength,
			Msg:  "negatively lengthed DNA: projected slice bounds are inconsistent with feature strand",
			Loc:  part.Loc,
		}
	}

	dna, err := genome.DNA(strippedName, feature.Chromosome, physLeft, physRight)
	if err != nil {
		return DNASlice{}, err
	}

	if !feature.Forward {
		dna = transform.ReverseComplement(dna)
	}
	if !ppp.Forward {
		dna = transform.ReverseComplement(dna)
		fromApprox, toApprox = toApprox, fromApprox
	}

	desc := strippedName
	if !ppp.Forward {
		desc = "!" + desc
	}

	breed := RefineGenomic(initialBreed, final)

	return DNASlice{
		DNA:              dna,
		SourceChr:        feature.Chromosome,
		SourceFrom:       physLeft,
		SourceTo:         physRight,
		SourceFwd:        feature.Forward,
		SourceFromApprox: fromApprox,
		SourceToApprox:   toApprox,
		DestFwd:          ppp.Forward,
		Template:         &dna,
		Amplified:        true,
		SliceType:        SliceRegular,
		Breed:            breed,
		Description:      desc,
		Pragmas:          ppp.Pragmas,
		DNASource:        dnaSource,
	}, nil
}
