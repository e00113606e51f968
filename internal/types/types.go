package types

// Position is a location within a JavaScript source file. Offset is the
// byte offset the parser reports; Line and Column are 1-based and derived
// from the file's line starts.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Issue represents a lint issue found in the code base.
//
// Suggestion, when non-empty, is replacement source text for the span
// [Start.Offset, End.Offset). The span always covers a full expression or
// statement, so applying the edit keeps the file syntactically
// self-contained. Confidence tells the fixer how safe the edit is; zero
// means the issue carries no automatic fix.
type Issue struct {
	Rule       string   `json:"rule"`
	Category   string   `json:"category,omitempty"`
	Filename   string   `json:"filename"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Note       string   `json:"note,omitempty"`
	Start      Position `json:"start"`
	End        Position `json:"end"`
	Severity   Severity `json:"severity"`
	Confidence float64  `json:"confidence"`
}

// ConfigRule is the per-rule entry of the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}
