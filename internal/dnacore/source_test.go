package dnacore

import "testing"

func TestResolver_ChooseGenomeName(t *testing.T) {
	r := NewResolver(newFixtureGenomes(), newFixtureLibrary(), "yeast")

	pppOwn := PPP{Pragmas: PragmaMap{"refgenome": {"custom"}}}
	if got := r.ChooseGenomeName(pppOwn, nil); got != "custom" {
		t.Errorf("PPP pragma should win, got %q", got)
	}

	pppNone := PPP{Pragmas: PragmaMap{}}
	asmPragmas := PragmaMap{"refgenome": {"asm-genome"}}
	if got := r.ChooseGenomeName(pppNone, asmPragmas); got != "asm-genome" {
		t.Errorf("assembly pragma should win when PPP has none, got %q", got)
	}

	if got := r.ChooseGenomeName(pppNone, nil); got != "yeast" {
		t.Errorf("system default should win when nothing else is set, got %q", got)
	}
}

func TestResolver_ChooseGenome(t *testing.T) {
	r := NewResolver(newFixtureGenomes(), newFixtureLibrary(), "yeast")

	if _, err := r.ChooseGenome("yeast"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := r.ChooseGenome("nonexistent")
	assertErrKind(t, err, ErrMissingRefGenome)
}

func TestResolver_DNASource(t *testing.T) {
	r := NewResolver(newFixtureGenomes(), newFixtureLibrary(), "yeast")

	ppp := PPP{Pragmas: PragmaMap{"dnasrc": {"addgene"}, "refgenome": {"yeast"}}}
	if got := r.DNASource(ppp, nil); got != "addgene" {
		t.Errorf("dnasrc pragma should win, got %q", got)
	}

	ppp2 := PPP{Pragmas: PragmaMap{"refgenome": {"yeast"}}}
	if got := r.DNASource(ppp2, nil); got != "yeast" {
		t.Errorf("PPP refgenome should be used when no dnasrc, got %q", got)
	}

	ppp3 := PPP{Pragmas: PragmaMap{}}
	if got := r.DNASource(ppp3, PragmaMap{"refgenome": {"asm-genome"}}); got != "asm-genome" {
		t.Errorf("assembly refgenome should be used as last resort, got %q", got)
	}

	if got := r.DNASource(ppp3, nil); got != "" {
		t.Errorf("dna_source should default to empty, got %q", got)
	}
}

func TestResolver_Dispatch(t *testing.T) {
	genomes := newFixtureGenomes()
	r := NewResolver(genomes, newFixtureLibrary(), "yeast")
	genome, _ := genomes.Lookup("yeast")

	src, err := r.Dispatch(genome, "ADH1")
	if err != nil || src != SourceGenomic {
		t.Errorf("Dispatch(ADH1) = (%v, %v), want (SourceGenomic, nil)", src, err)
	}

	src, err = r.Dispatch(genome, "MYGENE")
	if err != nil || src != SourceLibrary {
		t.Errorf("Dispatch(MYGENE) = (%v, %v), want (SourceLibrary, nil)", src, err)
	}

	_, err = r.Dispatch(genome, "NOSUCHGENE")
	assertErrKind(t, err, ErrUnknownGene)
}

func TestStripPrefix(t *testing.T) {
	if got := StripPrefix("gADH1"); got != "ADH1" {
		t.Errorf("StripPrefix(gADH1) = %q, want ADH1", got)
	}
	if got := StripPrefix(""); got != "" {
		t.Errorf("StripPrefix(\"\") = %q, want \"\"", got)
	}
}
