package parser

import "uitv/internal/domain"

// Parser turns raw syntax tool output into diagnostics
type Parser interface {
	ParseDiagnostics(output string) []domain.Diagnostic
}
