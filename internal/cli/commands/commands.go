package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ptd/internal/cli"
	"ptd/internal/config"
	"ptd/internal/discovery"
	"ptd/internal/report"
	"ptd/internal/storage"
	"ptd/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.SkipDirs, cfg.ExcludeGlobs, cfg.MaxFileSize)
	resolver := discovery.NewResolver(cfg.NamespacePrefix)
	extractor := discovery.NewExtractor()
	builder := discovery.NewBuilder(scanner, resolver, extractor)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	reporter := report.NewReporter(color.Output, config.ReportWidth)
	listFormatter := ui.NewListFormatter(color.Output)
	failureViewer := ui.NewFailureViewer()

	return &Commands{
		Run:      NewRunCommand(cfg, builder, filter, reporter, jsonStorage),
		List:     NewListCommand(cfg, builder, filter, listFormatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
		History:  NewHistoryCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Discover tests and report results",
		Long:    "Scan for test files, build the suite catalog and print a pass/fail report",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Keep only suites whose identifier or method names contain this substring (case-sensitive)")
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	runCmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Seed for the stubbed result source (0 = time-based)")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered tests",
		Long:    "Scan and list all test suites without executing them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Keep only suites whose identifier or method names contain this substring (case-sensitive)")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	listCmd.Flags().BoolVarP(&flags.Methods, "methods", "m", false, "List test methods under each suite")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View test failures interactively",
		Long:    "Display test failures from the last run in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "Show past run summaries",
		Long:    "List recent run summaries recorded in the history database",
		RunE:    c.History.Execute,
		PreRunE: applyFlags,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 10, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
