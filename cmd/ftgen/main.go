package main

import (
	"fmt"
	"os"

	"ftgen/internal/cli"
	"ftgen/internal/cli/commands"
	"ftgen/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "ftgen",
		Short: "Functional test script generator",
		Long: `Reads "<module>/src/test/<lang>/<class>.<ext>:@Tag("functional")" lines from stdin,
as printed by grep, groups the tagged test classes by maven module and appends
one "mvn test" invocation per module to functional_tests_run.sh.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config from defaults, .env and the environment; flags are applied before each command runs
	cfg := config.Load(config.Flags{})

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
