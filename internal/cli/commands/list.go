package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"uitv/internal/discovery"
	"uitv/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	env *Env
}

// NewListCommand creates a new ListCommand
func NewListCommand(env *Env) *ListCommand {
	return &ListCommand{env: env}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.env.Config
	files, err := lc.env.NewScanner().Scan(cfg.GetTestPath(args))
	if err != nil {
		return err
	}

	files = discovery.NewFilter().FilterByName(files, cfg.Flags.NameFilter)

	if len(files) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No test files found")
		return nil
	}

	formatter := ui.NewFormatter(cfg, discovery.NewParser(), cmd.OutOrStdout())
	return formatter.PrintTestList(files, cfg.Flags.TestCases)
}
