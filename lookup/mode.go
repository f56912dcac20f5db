package lookup

// Mode states how a resolution call was reached. The anti-recursion
// invariant lives here: terminal modes never make further recursive
// calls, so recursion depth stays bounded no matter what the dictionary
// contains.
type Mode int

const (
	// ModeInitial is the outermost call: input is sanitized and every
	// fallback strategy is available.
	ModeInitial Mode = iota
	// ModeSegment resolves one separator-split segment of a larger
	// expression: already sanitized, decomposition still allowed.
	ModeSegment
	// ModeNormalized resolves a katakana-normalized form or a literal
	// reading. Terminal: no decomposition.
	ModeNormalized
	// ModeMorphResult resolves a headword produced by the morphological
	// analyzer. Terminal: a reduced form must never trigger another
	// morphological pass.
	ModeMorphResult
)

func (m Mode) String() string {
	switch m {
	case ModeInitial:
		return "initial"
	case ModeSegment:
		return "segment"
	case ModeNormalized:
		return "normalized"
	case ModeMorphResult:
		return "morph-result"
	}
	return "unknown"
}

// sanitize reports whether markup is stripped on entry. Only the outermost
// call pays for it.
func (m Mode) sanitize() bool {
	return m == ModeInitial
}

// recurse reports whether decomposition strategies (separator split,
// morphological fallback) may run.
func (m Mode) recurse() bool {
	return m == ModeInitial || m == ModeSegment
}
