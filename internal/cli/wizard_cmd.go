package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/cli/formatter"
)

// newWizardCommand builds an interactive shift-and-tasks form with huh,
// gated on the terminal actually being interactive (spec §2's ambient CLI
// stack, grounded on the teacher's draft_wizard.go use of go-isatty before
// ever starting a form).
func newWizardCommand(useCase app.OptimizeScheduleUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Build and run a schedule request interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("wizard requires an interactive terminal; use `dayplan optimize <request.json>` instead")
			}

			var (
				nurseID, date                   string
				shiftStart, shiftEnd             string = "09:00:00", "17:00:00"
				lunchStart                       string = "12:00:00"
				lunchDuration                    string = "30"
				taskTitle                        string
				taskDuration                     string = "30"
				taskPriority                     string = "5"
				addAnotherTask                   bool
			)

			shiftForm := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title("Nurse ID").Value(&nurseID).Validate(requireNonEmpty),
					huh.NewInput().Title("Schedule date (YYYY-MM-DD)").Value(&date).Validate(requireNonEmpty),
					huh.NewInput().Title("Shift start (HH:MM:SS)").Value(&shiftStart).Validate(requireNonEmpty),
					huh.NewInput().Title("Shift end (HH:MM:SS)").Value(&shiftEnd).Validate(requireNonEmpty),
					huh.NewInput().Title("Lunch preferred start (HH:MM:SS)").Value(&lunchStart),
					huh.NewInput().Title("Lunch duration (minutes)").Value(&lunchDuration).Validate(validatePositiveInt),
				),
			).WithTheme(dayplanHuhTheme())
			if err := shiftForm.Run(); err != nil {
				return err
			}

			req := app.OptimizeRequest{
				NurseID:      nurseID,
				ScheduleDate: date,
				NurseConstraints: app.NurseConstraintsInput{
					ShiftStartTime:               shiftStart,
					ShiftEndTime:                 shiftEnd,
					LunchBreakPreferredStartTime: lunchStart,
				},
			}
			if d, err := strconv.Atoi(lunchDuration); err == nil {
				req.NurseConstraints.LunchBreakDuration = d
			}

			for {
				taskTitle, taskDuration, taskPriority = "", "30", "5"
				taskForm := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().Title("Task title").Value(&taskTitle).Validate(requireNonEmpty),
						huh.NewInput().Title("Duration (minutes)").Value(&taskDuration).Validate(validatePositiveInt),
						huh.NewInput().Title("Priority (1-10)").Value(&taskPriority).Validate(validatePositiveInt),
					),
				).WithTheme(dayplanHuhTheme())
				if err := taskForm.Run(); err != nil {
					return err
				}

				duration, _ := strconv.Atoi(taskDuration)
				priority, _ := strconv.Atoi(taskPriority)
				req.WorkItems.Tasks = append(req.WorkItems.Tasks, app.TaskItem{
					TaskID:               fmt.Sprintf("T%d", len(req.WorkItems.Tasks)+1),
					Title:                taskTitle,
					EstimatedDuration:    &duration,
					InitialPriorityScore: &priority,
				})

				addAnotherTask = false
				confirmForm := huh.NewForm(
					huh.NewGroup(huh.NewConfirm().Title("Add another task?").Value(&addAnotherTask)),
				).WithTheme(dayplanHuhTheme())
				if err := confirmForm.Run(); err != nil {
					return err
				}
				if !addAnotherTask {
					break
				}
			}

			resp, err := useCase.OptimizeSchedule(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderSchedule(resp))
			return nil
		},
	}
}

func requireNonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
