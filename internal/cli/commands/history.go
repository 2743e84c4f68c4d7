package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ptd/internal/config"
	"ptd/internal/history"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config *config.Config
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config) *HistoryCommand {
	return &HistoryCommand{config: cfg}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	recorder, err := history.NewRecorderFromEnv(hc.config.ProjectPath)
	if err != nil {
		return err
	}
	defer recorder.Close()

	if _, ok := recorder.(history.NopRecorder); ok {
		color.Yellow("No history database configured (set DB_DATABASE to enable)")
		return nil
	}

	metas, err := recorder.Recent(hc.config.Flags.Limit)
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		color.Yellow("No recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RECORDED\tSUITES\tMETHODS\tPASSED\tFAILED\tASSERTIONS\tDURATION")
	for _, meta := range metas {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%.2fs\n",
			meta.Timestamp, meta.TotalSuites, meta.TotalMethods,
			meta.PassedMethods, meta.FailedMethods, meta.TotalAssertions,
			meta.DurationSeconds,
		)
	}
	return w.Flush()
}
