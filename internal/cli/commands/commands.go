package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"uitv/internal/cli"
	"uitv/internal/config"
	"uitv/internal/discovery"
	"uitv/internal/execution"
	"uitv/internal/logger"
	"uitv/internal/parser"
	"uitv/internal/validation"
)

// ErrValidationFailed is returned when the report contains errors.
// The report itself has already been printed.
var ErrValidationFailed = errors.New("validation failed")

// Env holds dependencies shared by all commands, resolved once flags are parsed
type Env struct {
	Config *config.Config
	Logger *zap.Logger
}

// Commands holds all CLI commands
type Commands struct {
	env      *Env
	Validate *ValidateCommand
	List     *ListCommand
	View     *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	env := &Env{Config: cfg, Logger: zap.NewNop()}
	return &Commands{
		env:      env,
		Validate: NewValidateCommand(env),
		List:     NewListCommand(env),
		View:     NewViewCommand(env),
	}
}

// NewScanner builds a scanner from the resolved config
func (e *Env) NewScanner() *discovery.Scanner {
	return discovery.NewScanner(e.Config.Extension, e.Config.ExcludedFiles, e.Logger)
}

// NewValidator wires the validator with the syntax checker selected by flags
func (e *Env) NewValidator() (*validation.Validator, error) {
	var checker execution.SyntaxChecker = execution.Disabled
	if !e.Config.Flags.NoSyntax {
		checker = execution.NewRunner(e.Config, parser.NewSwiftcParser(), e.Logger)
	}
	return validation.NewValidator(
		e.Config,
		e.NewScanner(),
		discovery.NewFilter(),
		discovery.NewParser(),
		checker,
		e.Logger,
	)
}

// Register registers all commands with cobra. The root command validates
// like "validate" so "uitv [dir]" works on its own.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		if err := cfg.Apply(flags.ToConfigFlags()); err != nil {
			return err
		}
		if flags.NoColor {
			color.NoColor = true
		}
		log, err := logger.New(flags.Verbose)
		if err != nil {
			return err
		}
		c.env.Logger = log
		return nil
	}

	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = c.Validate.Execute
	addValidateFlags(rootCmd, flags)

	// Validate command
	validateCmd := &cobra.Command{
		Use:   "validate [dir]",
		Short: "Validate UI test sources",
		Long:  "Check syntax, structure and XCUI usage of the UI test files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Validate.Execute,
	}
	addValidateFlags(validateCmd, flags)
	rootCmd.AddCommand(validateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List discovered UI test files",
		Long:  "Scan and list UI test files without validating them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter files by name pattern (supports wildcards, e.g., '*Accessibility*')")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test methods under each file")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view <report.json>",
		Short: "View findings interactively",
		Long:  "Display findings from a report written with --json in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}

func addValidateFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter files by name pattern (supports wildcards, e.g., '*Accessibility*')")
	cmd.Flags().BoolVar(&flags.NoSyntax, "no-syntax", false, "Skip the external syntax check")
	cmd.Flags().StringVar(&flags.SyntaxTool, "syntax-tool", "", "Syntax checker invoked as '<tool> -parse <file>' (default swiftc)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Timeout for a single syntax check (default 30s)")
	cmd.Flags().StringVar(&flags.JSONOutput, "json", "", "Also write the report as JSON to this path")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Show a progress bar instead of per-file markers")
}
