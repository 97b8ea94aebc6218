package domain

import "time"

// Report is the outcome of a single validation run.
// Findings are kept in insertion order and never mutated once added.
type Report struct {
	Directory string
	Files     []FileOutcome
	Findings  []Finding
	Duration  time.Duration

	// Interrupted is set when the run was cancelled before every file was checked.
	// Files and findings then only cover the files completed before cancellation.
	Interrupted bool
}

// Add appends a finding.
func (r *Report) Add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// Errors returns error messages in the order they were recorded.
func (r *Report) Errors() []string {
	return r.messages(SeverityError)
}

// Warnings returns warning messages in the order they were recorded.
func (r *Report) Warnings() []string {
	return r.messages(SeverityWarning)
}

func (r *Report) messages(sev Severity) []string {
	var out []string
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f.String())
		}
	}
	return out
}

// HasWarning reports whether a warning with the exact message was already recorded.
func (r *Report) HasWarning(message string) bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning && f.Message == message {
			return true
		}
	}
	return false
}

// Success is true iff no errors were recorded.
func (r *Report) Success() bool {
	for _, f := range r.Findings {
		if f.IsError() {
			return false
		}
	}
	return true
}

// ReportMeta contains metadata about a validation run
type ReportMeta struct {
	Directory       string  `json:"directory"`
	TotalFiles      int     `json:"total_files"`
	ValidFiles      int     `json:"valid_files"`
	InvalidFiles    int     `json:"invalid_files"`
	Errors          int     `json:"errors"`
	Warnings        int     `json:"warnings"`
	Success         bool    `json:"success"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// ReportOutput is the complete structure written by --json
type ReportOutput struct {
	Meta    ReportMeta    `json:"meta"`
	Files   []FileOutcome `json:"files"`
	Details []Finding     `json:"details"`
}
