// Package cli is the cobra command tree exposing the optimizer core as a
// terminal program, grounded on the teacher's own cobra root + subcommand
// layout but narrowed to this domain's single use case.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shiftopt/dayplan/internal/app"
)

// NewRootCommand builds the "dayplan" command tree against the given
// use case. Callers inject app.OptimizeScheduleUseCase rather than cli
// constructing its own service, keeping the command tree testable without
// a real Oracle or solver budget.
func NewRootCommand(useCase app.OptimizeScheduleUseCase) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayplan",
		Short: "Optimize a single nurse's daily schedule",
		Long:  "dayplan builds a conflict-free, priority-weighted schedule for one worker's one working day from a JSON request describing shift constraints and work items.",
	}

	root.AddCommand(newOptimizeCommand(useCase))
	root.AddCommand(newWizardCommand(useCase))
	return root
}
