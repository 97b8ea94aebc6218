package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"uitv/internal/discovery"
	"uitv/internal/storage"
	"uitv/internal/ui"
)

// ValidateCommand handles the validate command
type ValidateCommand struct {
	env *Env
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(env *Env) *ValidateCommand {
	return &ValidateCommand{env: env}
}

// Execute runs the command
func (vc *ValidateCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := vc.env.Config
	dir := cfg.GetTestPath(args)

	validator, err := vc.env.NewValidator()
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cfg, discovery.NewParser(), cmd.OutOrStdout())
	if cfg.Flags.Quiet {
		formatter.SetProgress(ui.NewProgressBar(cmd.ErrOrStderr()))
	}
	validator.SetObserver(formatter)

	formatter.PrintHeader()
	report := validator.Run(cmd.Context(), dir)
	if report.Interrupted {
		return fmt.Errorf("validation interrupted: %w", context.Cause(cmd.Context()))
	}
	formatter.PrintSummary(report)

	if cfg.Flags.JSONOutput != "" {
		if err := storage.NewJSONStorage(cfg).Save(report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		vc.env.Logger.Debug("report written", zap.String("path", cfg.GetOutputPath()))
	}

	if !report.Success() {
		return ErrValidationFailed
	}
	return nil
}
