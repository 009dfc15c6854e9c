package commands

import (
	"ftgen/internal/config"
	"ftgen/internal/execution"
	"ftgen/internal/storage"
	"ftgen/internal/ui"

	"github.com/spf13/cobra"
)

// GenerateCommand writes one maven invocation per module to the output script
type GenerateCommand struct {
	config  *config.Config
	source  *source
	builder *execution.CommandBuilder
	storage storage.Storage
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(
	cfg *config.Config,
	src *source,
	builder *execution.CommandBuilder,
	st storage.Storage,
) *GenerateCommand {
	return &GenerateCommand{
		config:  cfg,
		source:  src,
		builder: builder,
		storage: st,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	set, err := gc.source.modules(cmd)
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cmd.OutOrStdout())
	formatter.PrintCreating(gc.storage.Path())

	// The script exists afterwards even if no module was found
	if err := gc.storage.Create(gc.config.Flags.Fresh); err != nil {
		return err
	}

	for _, module := range set.Modules() {
		if err := gc.storage.Append(gc.builder.Build(module)); err != nil {
			return err
		}
	}

	formatter.PrintCreated(gc.storage.Path())
	return nil
}
