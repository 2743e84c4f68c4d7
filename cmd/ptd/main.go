package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ptd/internal/cli"
	"ptd/internal/cli/commands"
	"ptd/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "ptd",
		Short:   "PHP test discovery and reporting",
		Long:    `A discovery and reporting tool for PHP test suites. Scan a project for test files, group their test methods into suites, filter them by name and print a formatted pass/fail report.`,
		Version: version,
	}

	// Create initial config with defaults, then apply the project file
	cfg := config.New()
	if err := cfg.LoadFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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
