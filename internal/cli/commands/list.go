package commands

import (
	"github.com/spf13/cobra"
	"ftgen/internal/config"
	"ftgen/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	source *source
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, src *source) *ListCommand {
	return &ListCommand{
		config: cfg,
		source: src,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	set, err := lc.source.modules(cmd)
	if err != nil {
		return err
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintModuleTree(set)
	return nil
}
