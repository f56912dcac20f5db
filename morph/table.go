package morph

// TableAnalyzer is a deterministic Analyzer backed by a fixed table,
// used in tests and wherever a real dictionary is unwanted.
type TableAnalyzer struct {
	Tokens map[string][]ParsedToken
	// Calls records every translated expression in order.
	Calls []string
}

var _ Analyzer = (*TableAnalyzer)(nil)

func (a *TableAnalyzer) Translate(expr string) []ParsedToken {
	a.Calls = append(a.Calls, expr)
	return a.Tokens[expr]
}
