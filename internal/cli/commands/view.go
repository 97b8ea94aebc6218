package commands

import (
	"github.com/spf13/cobra"

	"uitv/internal/storage"
	"uitv/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	env *Env
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(env *Env) *ViewCommand {
	return &ViewCommand{env: env}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	vc.env.Config.Flags.JSONOutput = args[0]
	st := storage.NewJSONStorage(vc.env.Config)

	report, err := st.Load()
	if err != nil {
		return err
	}

	var viewer ui.Viewer = ui.NewFindingsViewer(st, cmd.OutOrStdout())
	return viewer.View(report)
}
