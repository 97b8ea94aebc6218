package validation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"uitv/internal/config"
	"uitv/internal/discovery"
	"uitv/internal/domain"
	"uitv/internal/execution"
	"uitv/internal/parser"
)

// ErrInvalidUTF8 is reported for test files whose content is not UTF-8 text
var ErrInvalidUTF8 = errors.New("invalid UTF-8 content")

// Validator runs discovery and the per-file checks over a test directory.
// A Validator is not safe for concurrent use; each Run builds a fresh report.
type Validator struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	parser    *discovery.Parser
	checker   execution.SyntaxChecker
	structure *StructureChecker
	patterns  *PatternChecker
	observer  Observer
	logger    *zap.Logger

	readFile func(name string) ([]byte, error)
}

// NewValidator creates a new Validator
func NewValidator(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	testParser *discovery.Parser,
	checker execution.SyntaxChecker,
	logger *zap.Logger,
) (*Validator, error) {
	patterns, err := NewPatternChecker(cfg.UIPatterns)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if checker == nil {
		checker = execution.Disabled
	}

	return &Validator{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		parser:    testParser,
		checker:   checker,
		structure: NewStructureChecker(cfg),
		patterns:  patterns,
		observer:  nopObserver{},
		logger:    logger,
		readFile:  os.ReadFile,
	}, nil
}

// SetObserver sets the observer notified as files are processed
func (v *Validator) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	v.observer = o
}

// Run validates every test file in dir. Per-file failures are recorded in the
// report and never stop the loop.
func (v *Validator) Run(ctx context.Context, dir string) *domain.Report {
	start := time.Now()
	report := &domain.Report{Directory: dir}
	defer func() { report.Duration = time.Since(start) }()

	files := v.discover(report, dir)
	if len(files) == 0 {
		report.Add(domain.Finding{
			Severity: domain.SeverityError,
			Check:    domain.CheckDiscovery,
			Message:  "No test files found",
		})
		return report
	}

	v.observer.Discovered(files)
	for _, file := range files {
		if ctx.Err() != nil {
			report.Interrupted = true
			break
		}
		outcome, ok := v.validateFile(ctx, report, file)
		if !ok {
			report.Interrupted = true
			break
		}
		report.Files = append(report.Files, outcome)
		v.observer.FileFinished(outcome)
	}

	v.logger.Debug("validation finished",
		zap.String("dir", dir),
		zap.Int("files", len(files)),
		zap.Int("errors", len(report.Errors())),
		zap.Int("warnings", len(report.Warnings())),
		zap.Bool("interrupted", report.Interrupted),
	)
	return report
}

func (v *Validator) discover(report *domain.Report, dir string) []domain.TestFile {
	files, err := v.scanner.Scan(dir)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, discovery.ErrDirNotFound):
			msg = fmt.Sprintf("Test directory not found: %s", dir)
		case errors.Is(err, discovery.ErrNotDirectory):
			msg = fmt.Sprintf("Test path is not a directory: %s", dir)
		default:
			msg = fmt.Sprintf("Error reading test directory %s: %v", dir, err)
		}
		report.Add(domain.Finding{
			Severity: domain.SeverityError,
			Check:    domain.CheckDiscovery,
			Message:  msg,
		})
		return nil
	}
	return v.filter.FilterByName(files, v.config.Flags.NameFilter)
}

// validateFile returns false only when the run was cancelled during the syntax check.
func (v *Validator) validateFile(ctx context.Context, report *domain.Report, file domain.TestFile) (domain.FileOutcome, bool) {
	v.observer.FileStarted(file)
	outcome := domain.FileOutcome{Name: file.Name}

	result := v.checker.Check(ctx, file.Path)
	if result.Status == domain.SyntaxCanceled {
		return outcome, false
	}

	// A failed or timed out syntax check skips the remaining checks for the file
	if !v.validateSyntax(report, file, result, &outcome) {
		return outcome, true
	}

	if v.validateStructure(report, file, &outcome) {
		v.observer.StructureValid(file)
	}

	v.validateUIPatterns(report, file, &outcome)
	v.observer.PatternsChecked(file)

	return outcome, true
}

func (v *Validator) validateSyntax(report *domain.Report, file domain.TestFile, result domain.SyntaxResult, outcome *domain.FileOutcome) bool {
	switch result.Status {
	case domain.SyntaxFailed:
		finding := domain.Finding{
			Severity: domain.SeverityError,
			Check:    domain.CheckSyntax,
			File:     file.Name,
			Message:  fmt.Sprintf("Syntax error in %s", file.Name),
			Detail:   strings.TrimSpace(result.Output),
		}
		if finding.Detail == "" {
			// Keep the separator when the tool printed nothing
			finding.Message += ": "
		}
		if d, ok := parser.FirstError(result.Diagnostics); ok {
			finding.Line = d.Line
		}
		v.logger.Debug("syntax check failed",
			zap.String("file", file.Name),
			zap.Int("diagnostic_errors", parser.CountErrors(result.Diagnostics)),
		)
		report.Add(finding)
		outcome.SyntaxChecked = true
		return false

	case domain.SyntaxTimedOut:
		report.Add(domain.Finding{
			Severity: domain.SeverityError,
			Check:    domain.CheckSyntax,
			File:     file.Name,
			Message:  fmt.Sprintf("Timeout parsing %s", file.Name),
		})
		outcome.SyntaxChecked = true
		return false

	case domain.SyntaxToolMissing:
		msg := fmt.Sprintf("%s not found - skipping syntax validation", v.config.SyntaxTool)
		if !report.HasWarning(msg) {
			report.Add(domain.Finding{
				Severity: domain.SeverityWarning,
				Check:    domain.CheckSyntax,
				Message:  msg,
			})
		}

	case domain.SyntaxPassed:
		outcome.SyntaxChecked = true
	}

	outcome.SyntaxValid = true
	v.observer.SyntaxChecked(file, result.Status)
	return true
}

func (v *Validator) validateStructure(report *domain.Report, file domain.TestFile, outcome *domain.FileOutcome) bool {
	content, err := v.readSource(file.Path)
	if err != nil {
		report.Add(domain.Finding{
			Severity: domain.SeverityError,
			Check:    domain.CheckStructure,
			File:     file.Name,
			Message:  fmt.Sprintf("Error reading %s: %v", file.Name, err),
		})
		return false
	}

	if !v.structure.HasTestClass(content) {
		report.Add(domain.Finding{
			Severity: domain.SeverityError,
			Check:    domain.CheckStructure,
			File:     file.Name,
			Message:  fmt.Sprintf("No %s class found in %s", v.structure.BaseClass(), file.Name),
		})
		return false
	}

	outcome.TestMethods = len(v.parser.FindTestMethods(string(content)))
	if outcome.TestMethods == 0 {
		v.warn(report, domain.CheckStructure, file, "No test methods found in %s")
	}
	if !v.structure.HasSetUp(content) {
		v.warn(report, domain.CheckStructure, file, "No setUpWithError method in %s")
	}
	if !v.structure.HasTearDown(content) {
		v.warn(report, domain.CheckStructure, file, "No tearDownWithError method in %s")
	}

	outcome.StructureValid = true
	return true
}

// validateUIPatterns is advisory: read failures here are warnings, unlike in validateStructure.
func (v *Validator) validateUIPatterns(report *domain.Report, file domain.TestFile, outcome *domain.FileOutcome) {
	content, err := v.readSource(file.Path)
	if err != nil {
		report.Add(domain.Finding{
			Severity: domain.SeverityWarning,
			Check:    domain.CheckUIPatterns,
			File:     file.Name,
			Message:  fmt.Sprintf("Error validating XCUI elements in %s: %v", file.Name, err),
		})
		return
	}

	found := v.patterns.Matches(content)
	if len(found) == 0 {
		v.warn(report, domain.CheckUIPatterns, file, "No XCUI patterns found in %s")
		return
	}
	outcome.UIPatterns = true
}

// readSource reads a test file as UTF-8 text
func (v *Validator) readSource(path string) ([]byte, error) {
	content, err := v.readFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, ErrInvalidUTF8
	}
	return content, nil
}

func (v *Validator) warn(report *domain.Report, check domain.Check, file domain.TestFile, format string) {
	report.Add(domain.Finding{
		Severity: domain.SeverityWarning,
		Check:    check,
		File:     file.Name,
		Message:  fmt.Sprintf(format, file.Name),
	})
}
