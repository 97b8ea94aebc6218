package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"uitv/internal/config"
	"uitv/internal/domain"
	"uitv/internal/parser"
)

// waitDelay bounds how long Wait blocks on pipes held open by grandchildren after a kill
const waitDelay = 2 * time.Second

// Runner runs "<tool> -parse <file>" for a single file
type Runner struct {
	tool    string
	timeout time.Duration
	parser  parser.Parser
	logger  *zap.Logger
}

// NewRunner creates a new Runner from the config's syntax tool settings
func NewRunner(cfg *config.Config, p parser.Parser, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		tool:    cfg.SyntaxTool,
		timeout: cfg.SyntaxTimeout,
		parser:  p,
		logger:  logger,
	}
}

// Check parses a single file with the syntax tool, bounded by the configured timeout
func (r *Runner) Check(ctx context.Context, path string) domain.SyntaxResult {
	result := domain.SyntaxResult{Path: path}

	if err := ctx.Err(); err != nil {
		result.Status = domain.SyntaxCanceled
		result.Error = err
		return result
	}

	if _, err := exec.LookPath(r.tool); err != nil {
		r.logger.Debug("syntax tool not available", zap.String("tool", r.tool), zap.Error(err))
		result.Status = domain.SyntaxToolMissing
		result.Error = err
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.tool, "-parse", path)
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.logger.Debug("syntax check finished",
		zap.String("tool", r.tool),
		zap.String("file", path),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err),
	)

	result.Output = stderr.String()
	if r.parser != nil {
		result.Diagnostics = r.parser.ParseDiagnostics(result.Output)
	}

	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		result.Status = domain.SyntaxCanceled
		result.Error = ctx.Err()
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Status = domain.SyntaxTimedOut
		result.Error = fmt.Errorf("%s exceeded %s", r.tool, r.timeout)
	case errors.Is(err, exec.ErrNotFound):
		result.Status = domain.SyntaxToolMissing
		result.Error = err
	case err != nil:
		result.Status = domain.SyntaxFailed
		result.Error = err
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) && result.Output == "" {
			result.Output = err.Error()
		}
	default:
		result.Status = domain.SyntaxPassed
	}

	return result
}
