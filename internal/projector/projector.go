// Package projector is the Solution Projector (spec §4.6): it turns a
// solver.Solution plus the model it was computed against into the
// wire-shaped app.OptimizeResponse, including the lunch and blocked-time
// entries and the warnings a caller should see even on a fully feasible
// result.
package projector

import (
	"fmt"
	"sort"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/cpmodel"
	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/shiftopt/dayplan/internal/solver"
	"github.com/shiftopt/dayplan/internal/timecode"
)

// lunchDeviationWarnMinutes and deadlineCloseWarnMinutes are the thresholds
// spec §4.6 names for soft warnings on an otherwise-successful schedule.
const (
	lunchDeviationWarnMinutes = 15
	deadlineCloseWarnMinutes  = 5
)

// Project builds the Result Envelope for one solve, given everything the
// Normalizer already ruled unachievable plus the Solver Driver's outcome.
func Project(nurseID, scheduleDate string, m *cpmodel.Model, sol solver.Solution, preSolveRejected []app.UnachievableItem) app.OptimizeResponse {
	resp := app.OptimizeResponse{
		NurseID:      nurseID,
		ScheduleDate: scheduleDate,
	}

	byID := make(map[string]cpmodel.ActivityVar, len(m.Activities))
	for _, v := range m.Activities {
		byID[v.Activity.ID] = v
	}

	entries := make([]app.ScheduleEntry, 0, len(sol.Result.Present)+len(m.Blocks)+1)

	for id, present := range sol.Result.Present {
		if !present {
			continue
		}
		v := byID[id]
		start := sol.Result.Start[id]
		end := start + v.Activity.Duration
		entries = append(entries, app.ScheduleEntry{
			SlotStartTime: timecode.Format(start),
			SlotEndTime:   timecode.Format(end),
			ActivityType:  activityTypeLabel(v.Activity.Kind),
			Title:         v.Activity.Title,
			Details:       v.Activity.Details,
			RelatedItemID: v.Activity.ID,
		})
	}

	if m.HasLunch {
		if start, ok := sol.Result.Start["__lunch__"]; ok {
			end := start + m.Lunch.Duration
			entries = append(entries, app.ScheduleEntry{
				SlotStartTime: timecode.Format(start),
				SlotEndTime:   timecode.Format(end),
				ActivityType:  "Break",
				Title:         "Lunch",
				RelatedItemID: "LUNCH",
			})
		}
	}

	for i, b := range m.Blocks {
		entries = append(entries, app.ScheduleEntry{
			SlotStartTime: timecode.Format(b.Start),
			SlotEndTime:   timecode.Format(b.End),
			ActivityType:  "Blocked",
			Title:         b.Reason,
			RelatedItemID: fmt.Sprintf("BLOCK_%d", i),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].SlotStartTime < entries[j].SlotStartTime })
	resp.OptimizedSchedule = entries

	unachievable := make([]app.UnachievableItem, 0, len(preSolveRejected)+len(sol.Dropped))
	unachievable = append(unachievable, preSolveRejected...)
	for _, id := range sol.Dropped {
		v := byID[id]
		reason := domain.ReasonInfeasible
		if sol.TimedOut {
			reason = domain.ReasonTimeoutNoSolution
		}
		unachievable = append(unachievable, app.NewUnachievableItem(id, string(v.Activity.Kind), reason))
	}
	resp.UnachievableItems = unachievable

	resp.OptimizationScore = sol.Score
	resp.Warnings = buildWarnings(m, sol, byID)

	return resp
}

func activityTypeLabel(kind domain.ActivityKind) string {
	switch kind {
	case domain.KindAppointment:
		return "Appointment"
	case domain.KindMeeting:
		return "Meeting"
	case domain.KindTask:
		return "Task"
	case domain.KindAlert:
		return "Alert"
	case domain.KindVitalAlert:
		return "VitalAlert"
	case domain.KindFollowUp:
		return "FollowUp"
	case domain.KindCarePlan:
		return "CarePlan"
	case domain.KindIntervention:
		return "Intervention"
	default:
		return string(kind)
	}
}

func buildWarnings(m *cpmodel.Model, sol solver.Solution, byID map[string]cpmodel.ActivityVar) []string {
	var warnings []string

	if m.HasLunch {
		if start, ok := sol.Result.Start["__lunch__"]; ok {
			diff := start - m.Lunch.PreferredStart
			if diff < 0 {
				diff = -diff
			}
			if diff > lunchDeviationWarnMinutes {
				warnings = append(warnings, fmt.Sprintf(
					"lunch break shifted %d minutes from its preferred start", int(diff)))
			}
		}
	}

	for id, present := range sol.Result.Present {
		if !present {
			continue
		}
		v := byID[id]
		if !v.Activity.HasDeadline() {
			continue
		}
		start := sol.Result.Start[id]
		finish := start + v.Activity.Duration
		margin := *v.Activity.Deadline - finish
		if margin >= 0 && margin <= deadlineCloseWarnMinutes {
			warnings = append(warnings, fmt.Sprintf(
				"%s finishes within %d minutes of its deadline", v.Activity.ID, int(margin)))
		}
	}

	if sol.Status == domain.StatusFeasible && sol.TimedOut {
		warnings = append(warnings, "solver reached its time budget before confirming optimality")
	}

	sort.Strings(warnings)
	return warnings
}
