package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ptd/internal/config"
	"ptd/internal/discovery"
	"ptd/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	builder   *discovery.Builder
	filter    *discovery.Filter
	formatter *ui.ListFormatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	builder *discovery.Builder,
	filter *discovery.Filter,
	formatter *ui.ListFormatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		builder:   builder,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	catalog, err := lc.builder.Build(lc.config.GetTestPath())
	if err != nil {
		return err
	}

	catalog = lc.filter.Apply(catalog, lc.config.Flags.Filter)

	if catalog.Len() == 0 {
		color.Yellow("No tests found")
		return nil
	}

	lc.formatter.PrintCatalog(catalog, lc.config.Flags.Methods)
	return nil
}
