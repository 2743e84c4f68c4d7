package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ptd/internal/config"
	"ptd/internal/discovery"
	"ptd/internal/domain"
	"ptd/internal/execution"
	"ptd/internal/history"
	"ptd/internal/report"
	"ptd/internal/storage"
	"ptd/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	builder  *discovery.Builder
	filter   *discovery.Filter
	reporter *report.Reporter
	storage  storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	builder *discovery.Builder,
	filter *discovery.Filter,
	reporter *report.Reporter,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		builder:  builder,
		filter:   filter,
		reporter: reporter,
		storage:  st,
	}
}

// Execute runs the command. Failed test results do not make the command
// itself fail; only discovery or persistence errors do.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	catalog, err := rc.builder.Build(rc.config.GetTestPath())
	if err != nil {
		return err
	}

	catalog = rc.filter.Apply(catalog, rc.config.Flags.Filter)

	if catalog.Len() == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	// The stub source fabricates results; swap in a real ResultSource to
	// report actual execution outcomes.
	source := execution.NewStubSource(rc.config.Flags.Seed)
	runner := execution.NewRunner(source)
	runner.SetProgress(ui.NewProgressBar(catalog.CountMethods()))

	results := runner.Run(catalog)

	rc.reporter.Print(catalog, results)

	output := &domain.RunOutput{
		Meta:    domain.NewRunMeta(results),
		Details: domain.CollectFailures(results, report.FailureMessage),
	}
	if err := rc.storage.Save(output); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	rc.recordHistory(output.Meta)

	return nil
}

// recordHistory appends the run to the history database when one is
// configured. History problems never fail the run.
func (rc *RunCommand) recordHistory(meta domain.RunMeta) {
	recorder, err := history.NewRecorderFromEnv(rc.config.ProjectPath)
	if err != nil {
		color.Yellow("History not recorded: %v", err)
		return
	}
	defer recorder.Close()

	if err := recorder.Record(meta); err != nil {
		color.Yellow("History not recorded: %v", err)
	}
}
