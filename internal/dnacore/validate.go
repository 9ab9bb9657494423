package dnacore

// ValidateSliceOrdering checks the §4.7 ordering rule for a single
// modifier or canonical slice: if both endpoints share a reference
// endpoint, left.offset must not exceed right.offset.
func ValidateSliceOrdering(s SymSlice, loc *SourceLocation) error {
	if s.Left.End == s.Right.End && s.Left.Offset > s.Right.Offset {
		return &Error{
			Kind: ErrInvalidSlice,
			Msg:  "slice left offset exceeds right offset on the same endpoint",
			Loc:  loc,
		}
	}
	return nil
}

// ValidateLibraryApprox rejects any approximate bound on a library gene:
// library genes have no surrounding context to approximate into.
func ValidateLibraryApprox(s SymSlice, loc *SourceLocation) error {
	if s.LApprox || s.RApprox {
		return &Error{
			Kind: ErrUnsupportedApprox,
			Msg:  "library genes cannot have an approximate slice bound",
			Loc:  loc,
		}
	}
	return nil
}

// ValidateModifiers enforces §4.2's dot-modifier rules: at most one
// DOT_MOD per part, and DOT_MODs are only legal on GENE-kind parts.
func ValidateModifiers(mods []Modifier, isGeneKind bool, loc *SourceLocation) (dot string, err error) {
	seen := 0
	for _, m := range mods {
		if !m.IsDot() {
			continue
		}
		seen++
		if seen > 1 {
			return "", &Error{Kind: ErrIllegalModifier, Msg: "at most one dot-modifier is allowed per part", Loc: loc}
		}
		if !isGeneKind {
			return "", &Error{Kind: ErrIllegalModifier, Msg: "dot-modifier ." + m.Dot + " is only legal on gene parts", Loc: loc}
		}
		switch m.Dot {
		case "up", "down", "mrna":
			dot = m.Dot
		default:
			return "", &Error{Kind: ErrIllegalModifier, Msg: "unknown dot-modifier: ." + m.Dot, Loc: loc}
		}
	}
	return dot, nil
}

// ValidateLinker delegates to an external linker-well-formedness
// checker for a gene part that carries one.
func ValidateLinker(checker LinkerChecker, part GenePart) error {
	if part.Linker == nil || checker == nil {
		return nil
	}
	return checker.CheckWellFormed(*part.Linker, part)
}
