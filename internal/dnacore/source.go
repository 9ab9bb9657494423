package dnacore

import "strings"

// GeneSource distinguishes where a stripped gene name resolved to.
type GeneSource int

const (
	// SourceGenomic means the name is a feature in the chosen reference genome.
	SourceGenomic GeneSource = iota
	// SourceLibrary means the name is an entry in the sequence library.
	SourceLibrary
)

// Resolver implements C4: choosing a reference genome, choosing a
// dna_source label, and dispatching a stripped gene name to its source.
type Resolver struct {
	Genomes ReferenceGenomeSet
	Library SequenceLibrary
	Conf    *resolverConfig
}

// resolverConfig is the minimal slice of config.Config this package
// needs, kept as an interface-shaped struct so dnacore doesn't import
// the config package (which would be a dependency cycle risk once
// config grows CLI-facing fields).
type resolverConfig struct {
	DefaultRefGenome string
}

// NewResolver returns a Resolver over the given genome set and library,
// defaulting to defaultRefGenome when no pragma names one.
func NewResolver(genomes ReferenceGenomeSet, library SequenceLibrary, defaultRefGenome string) *Resolver {
	return &Resolver{
		Genomes: genomes,
		Library: library,
		Conf:    &resolverConfig{DefaultRefGenome: defaultRefGenome},
	}
}

// ChooseGenomeName resolves the effective reference-genome name for ppp,
// per §4.4: the PPP's own `refgenome` pragma, then the assembly's, then
// the system default.
func (r *Resolver) ChooseGenomeName(ppp PPP, assemblyPragmas Pragmas) string {
	if ppp.Pragmas != nil {
		if v, ok := ppp.Pragmas.GetOne("refgenome"); ok {
			return v
		}
	}
	if assemblyPragmas != nil {
		if v, ok := assemblyPragmas.GetOne("refgenome"); ok {
			return v
		}
	}
	return r.Conf.DefaultRefGenome
}

// ChooseGenome looks up the named reference genome, returning an
// ErrMissingRefGenome error enumerating the available names on failure.
func (r *Resolver) ChooseGenome(name string) (ReferenceGenome, error) {
	g, ok := r.Genomes.Lookup(name)
	if !ok {
		return nil, &Error{
			Kind: ErrMissingRefGenome,
			Msg:  "no reference genome named " + name + "; available: " + strings.Join(r.Genomes.Names(), ", "),
		}
	}
	return g, nil
}

// DNASource resolves the dna_source label recorded on the emitted slice,
// per §4.4: PPP's `dnasrc`, then PPP's `refgenome`, then the assembly's
// `refgenome`, else empty.
func (r *Resolver) DNASource(ppp PPP, assemblyPragmas Pragmas) string {
	if ppp.Pragmas != nil {
		if v, ok := ppp.Pragmas.GetOne("dnasrc"); ok {
			return v
		}
		if v, ok := ppp.Pragmas.GetOne("refgenome"); ok {
			return v
		}
	}
	if assemblyPragmas != nil {
		if v, ok := assemblyPragmas.GetOne("refgenome"); ok {
			return v
		}
	}
	return ""
}

// Dispatch decides whether strippedName (a gene name whose prefix the
// caller has already removed, see StripPrefix) resolves via the
// reference genome or the sequence library.
// An unrecognized remainder in neither is ErrUnknownGene.
func (r *Resolver) Dispatch(genome ReferenceGenome, strippedName string) (GeneSource, error) {
	if genome != nil && genome.IsValid(strippedName) {
		return SourceGenomic, nil
	}
	if _, ok := r.Library.Get(strings.ToUpper(strippedName)); ok {
		return SourceLibrary, nil
	}
	return 0, &Error{Kind: ErrUnknownGene, Msg: "unknown gene: " + strippedName}
}

// StripPrefix removes the leading single-character part-kind prefix from
// a gene part's surface name, returning the bare gene name.
func StripPrefix(name string) string {
	if name == "" {
		return name
	}
	return name[1:]
}
