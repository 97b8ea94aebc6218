package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uitv/internal/config"
	"uitv/internal/discovery"
	"uitv/internal/domain"
)

func newTestFormatter(t *testing.T) (*Formatter, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	return NewFormatter(config.New(), discovery.NewParser(), &buf), &buf
}

func TestFormatter_NoFiles(t *testing.T) {
	f, buf := newTestFormatter(t)
	report := &domain.Report{Directory: "Missing"}
	report.Add(domain.Finding{Severity: domain.SeverityError, Check: domain.CheckDiscovery, Message: "Test directory not found: Missing"})
	report.Add(domain.Finding{Severity: domain.SeverityError, Check: domain.CheckDiscovery, Message: "No test files found"})

	f.PrintHeader()
	f.PrintSummary(report)

	out := buf.String()
	assert.Contains(t, out, "🔍 TabBarComponent UI Tests Validator")
	assert.Contains(t, out, "❌ No test files found")
	assert.Contains(t, out, "   - Test directory not found: Missing")
	assert.NotContains(t, out, "VALIDATION RESULTS")
	assert.NotContains(t, out, "Validating test files")
}

func TestFormatter_FullRun(t *testing.T) {
	f, buf := newTestFormatter(t)
	file := domain.TestFile{Path: "/tests/TabBarStyleUITests.swift", Name: "TabBarStyleUITests.swift"}

	f.Discovered([]domain.TestFile{file})
	f.FileStarted(file)
	f.SyntaxChecked(file, domain.SyntaxPassed)
	f.StructureValid(file)
	f.PatternsChecked(file)

	report := &domain.Report{Files: []domain.FileOutcome{{Name: file.Name, SyntaxValid: true, StructureValid: true}}}
	report.Add(domain.Finding{Severity: domain.SeverityWarning, Message: "No test methods found in TabBarStyleUITests.swift"})
	f.PrintSummary(report)

	out := buf.String()
	expectedOrder := []string{
		"📁 Found 1 test files:",
		"   - TabBarStyleUITests.swift",
		"🧪 Validating test files...",
		"📄 Validating TabBarStyleUITests.swift...",
		"   ✅ Syntax valid",
		"   ✅ Structure valid",
		"   ✅ XCUI patterns checked",
		"📊 VALIDATION RESULTS",
		"⚠️  WARNINGS (1):",
		"   - No test methods found in TabBarStyleUITests.swift",
		"✅ All test files are valid!",
		"🚀 Ready to run UI tests in Xcode",
	}
	pos := 0
	for _, want := range expectedOrder {
		idx := strings.Index(out[pos:], want)
		require.GreaterOrEqual(t, idx, 0, "missing %q after offset %d in:\n%s", want, pos, out)
		pos += idx + len(want)
	}
	assert.NotContains(t, out, "ERRORS")
}

func TestFormatter_Errors(t *testing.T) {
	f, buf := newTestFormatter(t)
	report := &domain.Report{Files: []domain.FileOutcome{{Name: "TabBarPreview.swift"}}}
	report.Add(domain.Finding{Severity: domain.SeverityError, Message: "No XCTestCase class found in TabBarPreview.swift"})

	f.PrintSummary(report)

	out := buf.String()
	assert.Contains(t, out, "❌ ERRORS (1):")
	assert.Contains(t, out, "❌ 1 validation errors found")
	assert.NotContains(t, out, "All test files are valid")
}

func TestFormatter_SkippedSyntax(t *testing.T) {
	f, buf := newTestFormatter(t)
	f.SyntaxChecked(domain.TestFile{Name: "A.swift"}, domain.SyntaxSkipped)
	assert.Contains(t, buf.String(), "Syntax check skipped")
}

func TestFormatter_ProgressSuppressesMarkers(t *testing.T) {
	f, buf := newTestFormatter(t)
	var progressOut bytes.Buffer
	f.SetProgress(NewProgressBar(&progressOut))
	file := domain.TestFile{Name: "TabBarStyleUITests.swift"}

	f.Discovered([]domain.TestFile{file})
	f.FileStarted(file)
	f.SyntaxChecked(file, domain.SyntaxPassed)
	f.StructureValid(file)
	f.PatternsChecked(file)
	f.FileFinished(domain.FileOutcome{Name: file.Name, SyntaxValid: true, StructureValid: true})
	f.PrintSummary(&domain.Report{Files: []domain.FileOutcome{{Name: file.Name}}})

	assert.NotContains(t, buf.String(), "📄 Validating")
	assert.NotContains(t, buf.String(), "✅ Syntax valid")
	assert.Contains(t, buf.String(), "📊 VALIDATION RESULTS")
	assert.NotEmpty(t, progressOut.String())
}

func TestFormatter_PrintTestList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "TabBarActionUITests.swift")
	source := "class TabBarActionUITests: XCTestCase {\n    func testTap() {}\n    func testLongPress() {}\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))
	files := []domain.TestFile{{Path: path, Name: "TabBarActionUITests.swift"}}

	t.Run("files only", func(t *testing.T) {
		f, buf := newTestFormatter(t)
		require.NoError(t, f.PrintTestList(files, false))
		assert.Contains(t, buf.String(), "└── TabBarActionUITests.swift")
		assert.NotContains(t, buf.String(), "testTap")
	})

	t.Run("with test cases", func(t *testing.T) {
		f, buf := newTestFormatter(t)
		require.NoError(t, f.PrintTestList(files, true))
		assert.Contains(t, buf.String(), "    ├── testTap")
		assert.Contains(t, buf.String(), "    └── testLongPress")
	})
}
