package parser

import (
	"regexp"
	"strconv"
	"strings"

	"uitv/internal/domain"
)

// diagnosticPattern matches "path/File.swift:12:5: error: expected '}' in class"
var diagnosticPattern = regexp.MustCompile(`(?m)^(.+?):(\d+):(\d+):\s+(error|warning|note):\s+(.*)$`)

// SwiftcParser parses swiftc -parse output
type SwiftcParser struct{}

// NewSwiftcParser creates a new SwiftcParser
func NewSwiftcParser() *SwiftcParser {
	return &SwiftcParser{}
}

// ParseDiagnostics extracts compiler diagnostics in output order.
// Source excerpt and caret lines that follow a diagnostic are ignored.
func (p *SwiftcParser) ParseDiagnostics(output string) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, m := range diagnosticPattern.FindAllStringSubmatch(output, -1) {
		line, _ := strconv.Atoi(m[2])
		col, _ := strconv.Atoi(m[3])
		diags = append(diags, domain.Diagnostic{
			File:     m[1],
			Line:     line,
			Column:   col,
			Severity: m[4],
			Message:  strings.TrimSpace(m[5]),
		})
	}
	return diags
}

// FirstError returns the first error diagnostic, if any.
func FirstError(diags []domain.Diagnostic) (domain.Diagnostic, bool) {
	for _, d := range diags {
		if d.Severity == "error" {
			return d, true
		}
	}
	return domain.Diagnostic{}, false
}

// CountErrors returns the number of error diagnostics.
func CountErrors(diags []domain.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Severity == "error" {
			n++
		}
	}
	return n
}
