package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uitv/internal/cli"
	"uitv/internal/config"
	"uitv/internal/domain"
	"uitv/internal/storage"
)

const validUITest = `import XCTest

class TabBarComponentUITests: XCTestCase {
    var app: XCUIApplication!

    override func setUpWithError() throws {
        app = XCUIApplication()
        app.launch()
    }

    override func tearDownWithError() throws {
        app = nil
    }

    func testTabBarIsVisible() throws {
        XCTAssertTrue(app.tabBars.firstMatch.exists)
    }
}
`

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })

	rootCmd := &cobra.Command{Use: "uitv [dir]", SilenceUsage: true, SilenceErrors: true}
	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	return rootCmd, &out
}

func testDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestRoot_ValidDirectory(t *testing.T) {
	dir := testDir(t, map[string]string{"TabBarComponentUITests.swift": validUITest})
	rootCmd, out := newRoot(t)
	rootCmd.SetArgs([]string{dir, "--no-syntax", "--no-color"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "✅ All test files are valid!")
}

func TestValidate_EmptyDirectoryFails(t *testing.T) {
	rootCmd, out := newRoot(t)
	rootCmd.SetArgs([]string{"validate", t.TempDir(), "--no-syntax", "--no-color"})

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, out.String(), "No test files found")
	assert.NotContains(t, out.String(), "📄 Validating")
}

func TestValidate_MissingToolIsWarning(t *testing.T) {
	dir := testDir(t, map[string]string{"TabBarComponentUITests.swift": validUITest})
	rootCmd, out := newRoot(t)
	rootCmd.SetArgs([]string{"validate", dir, "--syntax-tool", "no-such-swiftc-binary", "--no-color"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "no-such-swiftc-binary not found - skipping syntax validation")
	assert.Contains(t, out.String(), "✅ Structure valid")
}

func TestValidate_WritesJSONReport(t *testing.T) {
	dir := testDir(t, map[string]string{
		"TabBarComponentUITests.swift": validUITest,
		"TabBarPreview.swift":          "struct TabBarPreview {}\n",
	})
	reportPath := filepath.Join(t.TempDir(), "report.json")
	rootCmd, _ := newRoot(t)
	rootCmd.SetArgs([]string{"validate", dir, "--no-syntax", "--no-color", "--json", reportPath})

	assert.ErrorIs(t, rootCmd.Execute(), ErrValidationFailed)

	cfg := config.New()
	cfg.Flags.JSONOutput = reportPath
	output, err := storage.NewJSONStorage(cfg).Load()
	require.NoError(t, err)
	assert.False(t, output.Meta.Success)
	assert.Equal(t, 2, output.Meta.TotalFiles)
	assert.Equal(t, 1, output.Meta.Errors)
	require.NotEmpty(t, output.Details)
	assert.Equal(t, domain.SeverityError, output.Details[0].Severity)
}

func TestList(t *testing.T) {
	dir := testDir(t, map[string]string{
		"TabBarComponentUITests.swift":            validUITest,
		"TabBarComponentUITestsLaunchTests.swift": validUITest,
	})

	t.Run("test cases", func(t *testing.T) {
		rootCmd, out := newRoot(t)
		rootCmd.SetArgs([]string{"list", dir, "-c", "--no-color"})

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "Found 1 test file(s) with test cases:")
		assert.Contains(t, out.String(), "testTabBarIsVisible")
		assert.NotContains(t, out.String(), "LaunchTests")
	})

	t.Run("missing directory", func(t *testing.T) {
		rootCmd, _ := newRoot(t)
		rootCmd.SetArgs([]string{"list", filepath.Join(dir, "missing")})
		assert.Error(t, rootCmd.Execute())
	})
}

func TestView_MissingReport(t *testing.T) {
	rootCmd, _ := newRoot(t)
	rootCmd.SetArgs([]string{"view", filepath.Join(t.TempDir(), "none.json")})
	assert.Error(t, rootCmd.Execute())
}

func TestValidate_InterruptedSkipsSummary(t *testing.T) {
	dir := testDir(t, map[string]string{"TabBarComponentUITests.swift": validUITest})
	rootCmd, out := newRoot(t)
	rootCmd.SetArgs([]string{"validate", dir, "--no-color"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rootCmd.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrValidationFailed)
	assert.NotContains(t, out.String(), "Syntax error")
	assert.NotContains(t, out.String(), "VALIDATION RESULTS")
}

func TestView_EmptyReport(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.json")
	cfg := config.New()
	cfg.Flags.JSONOutput = reportPath
	require.NoError(t, storage.NewJSONStorage(cfg).SaveOutput(&domain.ReportOutput{}))

	rootCmd, out := newRoot(t)
	rootCmd.SetArgs([]string{"view", reportPath, "--no-color"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "No findings in report!")
}
