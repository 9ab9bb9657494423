// Package dnacore turns a parsed assembly of genetic parts into a linear
// list of materialized DNA slices: realized base sequence, genomic
// source coordinates, orientation, approximation flags, slice kind,
// breed, and per-part pragmas. It owns the coordinate arithmetic, the
// slice algebra, the gene-part classifier, source resolution, the part
// materializers, and the assembly expander that ties them together.
package dnacore

// Endpoint is the reference end a RelPosition's offset is measured from.
type Endpoint int

const (
	// FivePrime anchors an offset to a feature's 5' end.
	FivePrime Endpoint = iota
	// ThreePrime anchors an offset to a feature's 3' end.
	ThreePrime
)

func (e Endpoint) String() string {
	if e == FivePrime {
		return "5'"
	}
	return "3'"
}

// RelPosition is a signed, 1-based, no-zero offset relative to one end of
// a feature. Legal Offset values are ..., -2, -1, +1, +2, ...; zero is
// never a legal offset.
type RelPosition struct {
	Offset int
	End    Endpoint
}

// SymSlice is a symbolic slice: two relative positions and their
// approximation flags. If Left.End == Right.End then Left.Offset <=
// Right.Offset is required (enforced by ValidateSliceOrdering, not by
// this type itself, since intermediate values may briefly violate it).
type SymSlice struct {
	Left, Right      RelPosition
	LApprox, RApprox bool
}

// Feature is a reference-genome record. Left/Right are 0-based genomic
// coordinates with Left <= Right regardless of strand.
type Feature struct {
	Name       string
	Chromosome string
	Left       int
	Right      int
	Forward    bool
}

// SourceLocation is a location in the original source text, attached to
// errors when the collaborator that raised them has one available.
type SourceLocation struct {
	Line, Col int
}

// Pragmas is a per-part or per-assembly key/value multimap. It is an
// external collaborator contract: this package never constructs the
// production implementation, only consumes it.
type Pragmas interface {
	// GetOne returns the first value for key, if any.
	GetOne(key string) (string, bool)
	// Contains reports whether key was set at all.
	Contains(key string) bool
}

// PragmaMap is a minimal, in-memory Pragmas implementation used by this
// package's own tests and available to any caller that doesn't otherwise
// have a pragma collection at hand.
type PragmaMap map[string][]string

// GetOne implements Pragmas.
func (m PragmaMap) GetOne(key string) (string, bool) {
	vs, ok := m[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Contains implements Pragmas.
func (m PragmaMap) Contains(key string) bool {
	_, ok := m[key]
	return ok
}

// Linker is a short joining sequence attached to a gene part. Its
// well-formedness is an external concern (LinkerChecker); this package
// only carries the value through to that check.
type Linker struct {
	Name string
	Seq  string
}

// Modifier is a single slice-modifier or dot-modifier record folded over
// a part's canonical slice by ApplySliceModifiers. A Modifier is either a
// SLICE modifier (HasLeft and/or HasRight set) or a DOT_MOD (Dot set);
// never both.
type Modifier struct {
	Dot string

	HasLeft bool
	Left    RelPosition
	LApprox bool

	HasRight bool
	Right    RelPosition
	RApprox bool
}

// IsDot reports whether m is a DOT_MOD rather than a slice modifier.
func (m Modifier) IsDot() bool { return m.Dot != "" }

// Part is the sealed set of input part descriptors. Concrete types below
// each implement it with a marker method.
type Part interface {
	isPart()
}

// GenePart references a gene by prefixed name (e.g. "gADH1", "pERG10")
// together with any slice/dot modifiers and an optional linker.
type GenePart struct {
	Name      string
	Modifiers []Modifier
	Linker    *Linker
	Loc       *SourceLocation
}

func (GenePart) isPart() {}

// MarkerPart is a selection-marker part (e.g. "###" in the surface
// syntax), always resolved to the configured marker gene.
type MarkerPart struct{}

func (MarkerPart) isPart() {}

// InlineDNA is a literal DNA sequence given directly in the source
// (e.g. "/GATCGA/").
type InlineDNA struct {
	Literal string
}

func (InlineDNA) isPart() {}

// InlineProtein is a literal protein sequence. It must be expanded to
// DNA by an earlier pass; seeing one here is fatal (ErrUnexpandedSpecial).
type InlineProtein struct {
	Literal string
}

func (InlineProtein) isPart() {}

// ExternalID references a part by external identifier, resolved via an
// ExternalPartResolver.
type ExternalID struct {
	PartID string
}

func (ExternalID) isPart() {}

// MultiPart is a nested list of child parts, expanded in place.
type MultiPart struct {
	Children []PPP
}

func (MultiPart) isPart() {}

// HeterologyBlock marks a heterology-block placeholder. Resolving it is
// out of scope for this pass; seeing one here is fatal
// (ErrUnexpandedSpecial).
type HeterologyBlock struct{}

func (HeterologyBlock) isPart() {}

// FusionMarker is an explicit fusion-junction part ("::" in the surface
// syntax), as opposed to one implied by a `fuse` pragma on another part.
type FusionMarker struct{}

func (FusionMarker) isPart() {}

// ErrorPart carries a parse-time error forward so it can surface with
// its original source location when the assembly is expanded.
type ErrorPart struct {
	Msg string
	Loc SourceLocation
}

func (ErrorPart) isPart() {}

// ExpandedPart wraps a slice materialized by an earlier pass. The
// expander appends it to the output unchanged.
type ExpandedPart struct {
	Slice DNASlice
}

func (ExpandedPart) isPart() {}

// PPP is a Positioned Part with Pragmas: the input unit to the expander.
type PPP struct {
	Part    Part
	Forward bool
	Pragmas Pragmas
}

// Assembly is an ordered, directional list of parts that together
// describe one construct, plus the pragmas set at the assembly level
// (consulted by C4 when a PPP carries no refgenome pragma of its own).
type Assembly struct {
	Parts   []PPP
	Pragmas Pragmas
}

// SliceType is the coarse output category consumed by downstream passes.
type SliceType string

const (
	SliceRegular SliceType = "REGULAR"
	SliceMarker  SliceType = "MARKER"
	SliceLinker  SliceType = "LINKER"
	SliceInline  SliceType = "INLINE"
	SliceFusion  SliceType = "FUSION"
)

// Breed is the finer classification of a part's biological role, used
// for candidate lookup and labelling.
type Breed string

const (
	BPromoter   Breed = "PROMOTER"
	BUpstream   Breed = "UPSTREAM"
	BTerminator Breed = "TERMINATOR"
	BDownstream Breed = "DOWNSTREAM"
	BFusableORF Breed = "FUSABLE_ORF"
	BGS         Breed = "GS"
	BGST        Breed = "GST"
	BX          Breed = "X"
	BMarker     Breed = "MARKER"
	BInline     Breed = "INLINE"
	BVirtual    Breed = "VIRTUAL"
)

// Candidate is a prior part that could substitute for a slice, returned
// by the external-part candidate proxy.
type Candidate struct {
	PartID string
	Seq    string
	Source string
}

// DNASlice is one materialized piece of the output assembly.
type DNASlice struct {
	DNA string

	SourceChr  string
	SourceFrom int
	SourceTo   int
	SourceFwd  bool

	SourceFromApprox bool
	SourceToApprox   bool

	DestFrom int
	DestTo   int
	DestFwd  bool

	// Template is the sequence to amplify from. Nil means "absent"
	// (fusion junctions only); non-nil usually equals DNA.
	Template *string

	Amplified bool
	SliceType SliceType
	Breed     Breed

	Description string
	Pragmas     Pragmas
	DNASource   string

	ExternalCandidates []Candidate
}

// ReferenceGenome is a single loaded reference genome. It is an external
// collaborator contract; this package never implements the production
// version, only consumes it (see fixtures_test.go for the in-memory
// stand-in used by this package's own tests).
type ReferenceGenome interface {
	// Flank is this genome's default upstream/downstream widening window.
	Flank() int
	// IsValid reports whether gene names a feature in this genome.
	IsValid(gene string) bool
	// Get returns the feature named gene.
	Get(gene string) (Feature, error)
	// DNA returns the sequence on chromosome chr between the 0-based,
	// inclusive coordinates left and right. tag is a caller-supplied
	// label (e.g. the feature name) usable for logging/caching.
	DNA(tag, chr string, left, right int) (string, error)
}

// ReferenceGenomeSet is the collection of loaded reference genomes,
// looked up by name.
type ReferenceGenomeSet interface {
	Lookup(name string) (ReferenceGenome, bool)
	Names() []string
}

// SequenceLibrary maps an uppercase gene name to its sequence buffer.
type SequenceLibrary interface {
	Get(name string) (string, bool)
}

// ExternalPartResolver resolves an EXTERNAL_ID part into a ready-made
// DNA slice.
type ExternalPartResolver interface {
	FetchSequence(library SequenceLibrary, ppp PPP, partID string) (DNASlice, error)
}

// CandidateProxy queries the external-part candidate service. On
// network/lookup failure it degrades to an empty list rather than
// returning an error.
type CandidateProxy interface {
	FetchCandidates(url, name, breedCode string) []Candidate
}

// LinkerChecker delegates linker well-formedness checks to an external
// collaborator.
type LinkerChecker interface {
	CheckWellFormed(linker Linker, part GenePart) error
}
