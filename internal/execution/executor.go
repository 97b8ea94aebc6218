package execution

import (
	"context"

	"uitv/internal/domain"
)

// SyntaxChecker checks the syntax of a single source file
type SyntaxChecker interface {
	Check(ctx context.Context, path string) domain.SyntaxResult
}

// CheckerFunc adapts a plain function to SyntaxChecker
type CheckerFunc func(ctx context.Context, path string) domain.SyntaxResult

// Check calls f(ctx, path)
func (f CheckerFunc) Check(ctx context.Context, path string) domain.SyntaxResult {
	return f(ctx, path)
}

// Disabled is a SyntaxChecker that skips every file without running anything
var Disabled = CheckerFunc(func(_ context.Context, path string) domain.SyntaxResult {
	return domain.SyntaxResult{Path: path, Status: domain.SyntaxSkipped}
})
