package domain

import "fmt"

// Severity indicates whether a finding fails the run.
type Severity string

const (
	// SeverityError fails the run.
	SeverityError Severity = "error"
	// SeverityWarning is informational only.
	SeverityWarning Severity = "warning"
)

// Check identifies which validation step produced a finding.
type Check string

const (
	CheckDiscovery  Check = "discovery"
	CheckSyntax     Check = "syntax"
	CheckStructure  Check = "structure"
	CheckUIPatterns Check = "ui-patterns"
)

// Finding represents a single error or warning produced during validation
type Finding struct {
	Severity Severity `json:"severity"`
	Check    Check    `json:"check"`
	File     string   `json:"file,omitempty"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
	Line     int      `json:"line,omitempty"`
	Resolved bool     `json:"resolved,omitempty"` // Toggled from the findings viewer
}

// String returns the human-readable form printed in the summary.
func (f Finding) String() string {
	if f.Detail != "" {
		return fmt.Sprintf("%s: %s", f.Message, f.Detail)
	}
	return f.Message
}

// IsError reports whether the finding has error severity.
func (f Finding) IsError() bool {
	return f.Severity == SeverityError
}
