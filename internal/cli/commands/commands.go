package commands

import (
	"ftgen/internal/cli"
	"ftgen/internal/config"
	"ftgen/internal/discovery"
	"ftgen/internal/execution"
	"ftgen/internal/storage"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	filter := discovery.NewFilter()
	scheduler := execution.NewRoundRobinScheduler()
	builder := execution.NewCommandBuilder()
	scriptStorage := storage.NewScriptStorage(cfg)
	source := newSource(cfg, filter, scheduler)

	return &Commands{
		Generate: NewGenerateCommand(cfg, source, builder, scriptStorage),
		List:     NewListCommand(cfg, source),
	}
}

// Register wires the generate command into rootCmd and adds the subcommands
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Shared flags are applied to the config before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg.Apply(flags.ToConfigFlags())
		return cfg.Validate()
	}
	rootCmd.PersistentFlags().StringVar(&flags.Tag, "tag", "", "Tag value to look for (default \"functional\", or $FTGEN_TAG)")
	rootCmd.PersistentFlags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test classes by name pattern (supports wildcards, e.g., '*ApiTest' or '*Payment*')")
	rootCmd.PersistentFlags().StringVarP(&flags.ScanDir, "scan-dir", "s", "", "Scan this source tree for tagged tests instead of reading stdin")
	rootCmd.PersistentFlags().IntVar(&flags.Total, "total", config.DefaultShards, "Number of CI shards to split modules across")
	rootCmd.PersistentFlags().IntVar(&flags.Index, "index", 0, "Shard to emit, from 0 to total-1")

	// Generate is the root command itself
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = c.Generate.Execute
	rootCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Script to append commands to (default \"functional_tests_run.sh\", or $FTGEN_OUTPUT)")
	rootCmd.Flags().BoolVar(&flags.Fresh, "fresh", false, "Truncate the script before writing instead of appending")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered functional tests",
		Long:  "Group tagged test classes by module and print them without writing a script",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)
}
