package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/cli/formatter"
)

func newOptimizeCommand(useCase app.OptimizeScheduleUseCase) *cobra.Command {
	var asJSON bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "optimize <request.json>",
		Short: "Optimize a schedule from a request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading request file: %w", err)
			}

			var req app.OptimizeRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("parsing request file: %w", err)
			}

			resp, err := useCase.OptimizeSchedule(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			rendered := formatter.RenderSchedule(resp)
			if watch && isatty.IsTerminal(os.Stdout.Fd()) {
				return runScheduleView(rendered)
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw Result Envelope as JSON instead of a table")
	cmd.Flags().BoolVar(&watch, "watch", false, "open the schedule in a scrollable interactive viewer")
	return cmd
}
