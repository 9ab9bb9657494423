package dnacore

import "strings"

// fakeGenome is an in-memory ReferenceGenome used only by this
// package's own tests; production genomes are loaded by an out-of-scope
// collaborator (see model.go's ReferenceGenome doc comment).
type fakeGenome struct {
	name     string
	flank    int
	features map[string]Feature
	seqs     map[string]string // chr -> full plus-strand sequence
}

func (g *fakeGenome) Flank() int { return g.flank }

func (g *fakeGenome) IsValid(gene string) bool {
	_, ok := g.features[strings.ToUpper(gene)]
	return ok
}

func (g *fakeGenome) Get(gene string) (Feature, error) {
	f, ok := g.features[strings.ToUpper(gene)]
	if !ok {
		return Feature{}, &Error{Kind: ErrUnknownGene, Msg: "unknown gene: " + gene}
	}
	return f, nil
}

func (g *fakeGenome) DNA(tag, chr string, left, right int) (string, error) {
	full, ok := g.seqs[chr]
	if !ok || left < 0 || right >= len(full) || left > right {
		return "", &Error{Kind: ErrInvalidSlice, Msg: "fixture out of range for " + tag}
	}
	return full[left : right+1], nil
}

// fakeGenomeSet is an in-memory ReferenceGenomeSet.
type fakeGenomeSet map[string]*fakeGenome

func (s fakeGenomeSet) Lookup(name string) (ReferenceGenome, bool) {
	g, ok := s[name]
	return g, ok
}

func (s fakeGenomeSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	return names
}

// fakeLibrary is an in-memory SequenceLibrary.
type fakeLibrary map[string]string

func (l fakeLibrary) Get(name string) (string, bool) {
	s, ok := l[strings.ToUpper(name)]
	return s, ok
}

// repeatSeq builds a deterministic n-base sequence by repeating pattern,
// used so fixture chromosomes are long enough to hold the spans this
// package's tests project onto them.
func repeatSeq(pattern string, n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(pattern)
	}
	return b.String()[:n]
}

// newFixtureGenomes returns the minimal genome set used across this
// package's tests: a Watson-strand ADH1 at chr1:1000..1500 and a
// crick-strand ERG10 at chr1:5000..5600, mirroring spec.md §8's
// end-to-end scenarios.
func newFixtureGenomes() fakeGenomeSet {
	chr1 := repeatSeq("ACGT", 10000)
	return fakeGenomeSet{
		"yeast": &fakeGenome{
			name:  "yeast",
			flank: 500,
			features: map[string]Feature{
				"ADH1":  {Name: "ADH1", Chromosome: "chr1", Left: 1000, Right: 1500, Forward: true},
				"ERG10": {Name: "ERG10", Chromosome: "chr1", Left: 5000, Right: 5600, Forward: false},
			},
			seqs: map[string]string{"chr1": chr1},
		},
	}
}

// newFixtureLibrary returns a minimal sequence library: the 40-base
// MYGENE entry mirroring spec.md §8, plus a 60-base URA3 marker entry.
func newFixtureLibrary() fakeLibrary {
	return fakeLibrary{
		"MYGENE": repeatSeq("AAAA", 40),
		"URA3":   repeatSeq("GCTA", 60),
	}
}
