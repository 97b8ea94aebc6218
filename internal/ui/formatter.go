package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"uitv/internal/config"
	"uitv/internal/discovery"
	"uitv/internal/domain"
)

const ruleWidth = 50

// Formatter prints the validation report and per-file progress markers.
// It implements validation.Observer.
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
	out    io.Writer

	progress *ProgressBar
	valid    int
	invalid  int

	cyan   *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	bold   *color.Color
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(cfg *config.Config, parser *discovery.Parser, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
		out:    out,
		cyan:   color.New(color.FgCyan),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		bold:   color.New(color.Bold),
	}
}

// SetProgress replaces per-file markers with a progress bar
func (f *Formatter) SetProgress(progress *ProgressBar) {
	f.progress = progress
}

func (f *Formatter) rule() {
	fmt.Fprintln(f.out, strings.Repeat("=", ruleWidth))
}

// PrintHeader prints the report title
func (f *Formatter) PrintHeader() {
	f.bold.Fprintf(f.out, "🔍 %s\n", f.config.Title)
	f.rule()
}

// Discovered prints the discovered file names
func (f *Formatter) Discovered(files []domain.TestFile) {
	f.cyan.Fprintf(f.out, "📁 Found %d test files:\n", len(files))
	for _, file := range files {
		fmt.Fprintf(f.out, "   - %s\n", file.Name)
	}
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "🧪 Validating test files...")
	if f.progress != nil {
		f.progress.Start(len(files))
	}
}

// FileStarted prints the per-file heading
func (f *Formatter) FileStarted(file domain.TestFile) {
	if f.progress != nil {
		return
	}
	fmt.Fprintf(f.out, "\n📄 Validating %s...\n", file.Name)
}

// SyntaxChecked prints the syntax marker
func (f *Formatter) SyntaxChecked(_ domain.TestFile, status domain.SyntaxStatus) {
	if f.progress != nil {
		return
	}
	if status == domain.SyntaxSkipped {
		f.yellow.Fprintln(f.out, "   ⏭️  Syntax check skipped")
		return
	}
	f.green.Fprintln(f.out, "   ✅ Syntax valid")
}

// StructureValid prints the structure marker
func (f *Formatter) StructureValid(domain.TestFile) {
	if f.progress != nil {
		return
	}
	f.green.Fprintln(f.out, "   ✅ Structure valid")
}

// PatternsChecked prints the UI pattern marker
func (f *Formatter) PatternsChecked(domain.TestFile) {
	if f.progress != nil {
		return
	}
	f.green.Fprintln(f.out, "   ✅ XCUI patterns checked")
}

// FileFinished advances the progress bar, if any
func (f *Formatter) FileFinished(outcome domain.FileOutcome) {
	if f.progress == nil {
		return
	}
	if outcome.Valid() {
		f.valid++
	} else {
		f.invalid++
	}
	f.progress.Update(f.valid, f.invalid)
}

// PrintSummary prints accumulated errors and warnings and the final banner.
// A run without files only prints the no-files line and its cause.
func (f *Formatter) PrintSummary(report *domain.Report) {
	if f.progress != nil {
		f.progress.Finish()
	}

	if len(report.Files) == 0 {
		f.red.Fprintln(f.out, "❌ No test files found")
		for _, finding := range report.Findings {
			if finding.IsError() && finding.Check == domain.CheckDiscovery && finding.Message != "No test files found" {
				fmt.Fprintf(f.out, "   - %s\n", finding)
			}
		}
		return
	}

	errs := report.Errors()
	warnings := report.Warnings()

	fmt.Fprintln(f.out)
	f.rule()
	f.bold.Fprintln(f.out, "📊 VALIDATION RESULTS")
	f.rule()

	if len(errs) > 0 {
		f.red.Fprintf(f.out, "\n❌ ERRORS (%d):\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(f.out, "   - %s\n", e)
		}
	}

	if len(warnings) > 0 {
		f.yellow.Fprintf(f.out, "\n⚠️  WARNINGS (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(f.out, "   - %s\n", w)
		}
	}

	if len(errs) == 0 {
		f.green.Fprintln(f.out, "\n✅ All test files are valid!")
		fmt.Fprintln(f.out, "🚀 Ready to run UI tests in Xcode")
	} else {
		f.red.Fprintf(f.out, "\n❌ %d validation errors found\n", len(errs))
	}
}

// PrintTestList prints discovered files, optionally with their test methods
func (f *Formatter) PrintTestList(files []domain.TestFile, showTestCases bool) error {
	if !showTestCases {
		f.green.Fprintf(f.out, "Found %d test file(s):\n\n", len(files))
		for i, file := range files {
			connector := "├── "
			if i == len(files)-1 {
				connector = "└── "
			}
			f.cyan.Fprintf(f.out, "%s%s\n", connector, file.Name)
		}
		return nil
	}

	f.green.Fprintf(f.out, "Found %d test file(s) with test cases:\n\n", len(files))
	for i, file := range files {
		testCases, err := f.parser.FindTestCases(file.Path)
		if err != nil {
			f.red.Fprintf(f.out, "Error reading test file %s: %v\n", file.Name, err)
			continue
		}

		isLastFile := i == len(files)-1
		filePrefix, childPrefix := "├── ", "│   "
		if isLastFile {
			filePrefix, childPrefix = "└── ", "    "
		}
		f.cyan.Fprintf(f.out, "%s%s\n", filePrefix, file.Name)

		if len(testCases) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", childPrefix, f.red.Sprint("(no test cases found)"))
		}
		for j, testCase := range testCases {
			connector := "├── "
			if j == len(testCases)-1 {
				connector = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", childPrefix, connector, f.yellow.Sprint(testCase))
		}

		if !isLastFile {
			fmt.Fprintln(f.out)
		}
	}
	return nil
}
