package dnacore

import "testing"

func TestValidateSliceOrdering(t *testing.T) {
	ok := SymSlice{Left: RelPosition{1, FivePrime}, Right: RelPosition{10, FivePrime}}
	if err := ValidateSliceOrdering(ok, nil); err != nil {
		t.Errorf("unexpected error for well-ordered slice: %v", err)
	}

	crossEndpoint := SymSlice{Left: RelPosition{1, FivePrime}, Right: RelPosition{-1, ThreePrime}}
	if err := ValidateSliceOrdering(crossEndpoint, nil); err != nil {
		t.Errorf("cross-endpoint slices are never ordering-invalid, got: %v", err)
	}

	bad := SymSlice{Left: RelPosition{10, FivePrime}, Right: RelPosition{1, FivePrime}}
	assertErrKind(t, ValidateSliceOrdering(bad, nil), ErrInvalidSlice)
}

func TestValidateLibraryApprox(t *testing.T) {
	if err := ValidateLibraryApprox(SymSlice{}, nil); err != nil {
		t.Errorf("unexpected error for non-approximate slice: %v", err)
	}
	assertErrKind(t, ValidateLibraryApprox(SymSlice{LApprox: true}, nil), ErrUnsupportedApprox)
	assertErrKind(t, ValidateLibraryApprox(SymSlice{RApprox: true}, nil), ErrUnsupportedApprox)
}

func TestValidateModifiers(t *testing.T) {
	dot, err := ValidateModifiers([]Modifier{{Dot: "up"}}, true, nil)
	if err != nil || dot != "up" {
		t.Errorf("ValidateModifiers(.up, isGeneKind) = (%q, %v), want (\"up\", nil)", dot, err)
	}

	_, err = ValidateModifiers([]Modifier{{Dot: "up"}}, false, nil)
	assertErrKind(t, err, ErrIllegalModifier)

	_, err = ValidateModifiers([]Modifier{{Dot: "up"}, {Dot: "mrna"}}, true, nil)
	assertErrKind(t, err, ErrIllegalModifier)

	_, err = ValidateModifiers([]Modifier{{Dot: "nonsense"}}, true, nil)
	assertErrKind(t, err, ErrIllegalModifier)

	dot, err = ValidateModifiers([]Modifier{{HasLeft: true, Left: RelPosition{1, FivePrime}}}, true, nil)
	if err != nil || dot != "" {
		t.Errorf("a plain slice modifier should not set dot, got (%q, %v)", dot, err)
	}
}

type stubLinkerChecker struct{ err error }

func (s stubLinkerChecker) CheckWellFormed(Linker, GenePart) error { return s.err }

func TestValidateLinker(t *testing.T) {
	if err := ValidateLinker(nil, GenePart{Linker: &Linker{Name: "L1"}}); err != nil {
		t.Errorf("nil checker should be a no-op, got: %v", err)
	}
	if err := ValidateLinker(stubLinkerChecker{}, GenePart{}); err != nil {
		t.Errorf("a part with no linker should not be checked, got: %v", err)
	}

	wantErr := &Error{Kind: ErrIllegalModifier, Msg: "bad linker"}
	got := ValidateLinker(stubLinkerChecker{err: wantErr}, GenePart{Linker: &Linker{Name: "L1"}})
	if got != wantErr {
		t.Errorf("ValidateLinker should propagate the checker's error, got %v", got)
	}
}
