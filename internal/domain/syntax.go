package domain

// SyntaxStatus is the outcome of an external syntax check
type SyntaxStatus string

const (
	SyntaxPassed      SyntaxStatus = "passed"
	SyntaxFailed      SyntaxStatus = "failed"
	SyntaxToolMissing SyntaxStatus = "tool-missing"
	SyntaxTimedOut    SyntaxStatus = "timed-out"
	SyntaxSkipped     SyntaxStatus = "skipped"
	SyntaxCanceled    SyntaxStatus = "canceled"
)

// SyntaxResult represents the result of running the syntax checker on one file
type SyntaxResult struct {
	Path        string
	Status      SyntaxStatus
	Output      string // Captured stderr of the tool
	Diagnostics []Diagnostic
	Error       error
}

// Diagnostic is a single compiler message parsed from tool output
type Diagnostic struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"` // error, warning or note
	Message  string `json:"message"`
}
