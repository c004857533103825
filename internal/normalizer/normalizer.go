// Package normalizer turns the heterogeneous, category-shaped work items of
// an app.OptimizeRequest into the uniform []domain.Activity the Model
// Builder consumes (spec §4.3), resolving identifiers, defaulting missing
// durations/priorities from the Parameter Oracle, and separating items that
// can never be scheduled (malformed, unidentifiable, or pre-solve
// detectable conflicts) from the ones passed on to the solver.
package normalizer

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/shiftopt/dayplan/internal/paramoracle"
	"github.com/shiftopt/dayplan/internal/timecode"
)

// Result is everything the Model Builder needs, plus the items the
// Normalizer has already ruled unachievable before any solving starts.
type Result struct {
	Activities    []domain.Activity
	Rejected      []app.UnachievableItem
	Shift         domain.ShiftWindow
	Lunch         domain.LunchConfig
	Blocks        []domain.BlockedInterval
	Travel        domain.TravelMatrix
	RelaxOptional bool
}

// Normalize validates the global (shift/lunch/blocks) fields, normalizes
// every work item category, resolves duplicate identifiers, and resolves
// fixed-time/fixed-time and fixed-time/block clashes before the solver ever
// runs (spec §3 invariant 3). A non-nil error means the request's global
// fields are malformed; per-item problems never surface as an error, only
// as entries in Result.Rejected.
func Normalize(req app.OptimizeRequest, oracle paramoracle.Oracle) (*Result, error) {
	shift, lunch, blocks, travel, err := normalizeGlobals(req.NurseConstraints)
	if err != nil {
		return nil, err
	}

	ids := newIDTracker()
	var activities []domain.Activity
	var rejected []app.UnachievableItem

	add := func(a *domain.Activity, rej *app.UnachievableItem) {
		if rej != nil {
			rejected = append(rejected, *rej)
			return
		}
		a.ID = ids.resolve(a.ID, a.Kind)
		activities = append(activities, *a)
	}

	for i := range req.WorkItems.Appointments {
		add(normalizeAppointment(&req.WorkItems.Appointments[i], domain.KindAppointment, oracle))
	}
	for i := range req.WorkItems.CalendarEvents {
		add(normalizeAppointment(&req.WorkItems.CalendarEvents[i], domain.KindMeeting, oracle))
	}
	for i := range req.WorkItems.Tasks {
		add(normalizeTask(&req.WorkItems.Tasks[i], oracle))
	}
	for i := range req.WorkItems.CriticalAlerts {
		add(normalizeAlert(&req.WorkItems.CriticalAlerts[i], domain.KindAlert, oracle))
	}
	for i := range req.WorkItems.PatientVitalAlerts {
		add(normalizeAlert(&req.WorkItems.PatientVitalAlerts[i], domain.KindVitalAlert, oracle))
	}
	for i := range req.WorkItems.FollowUps {
		add(normalizeFollowUp(&req.WorkItems.FollowUps[i]))
	}
	for i := range req.WorkItems.CarePlans {
		add(normalizeCarePlan(&req.WorkItems.CarePlans[i], domain.KindCarePlan))
	}
	for i := range req.WorkItems.Interventions {
		add(normalizeCarePlan(&req.WorkItems.Interventions[i], domain.KindIntervention))
	}

	activities, preResolved := resolvePreSolveConflicts(activities, shift, blocks)
	rejected = append(rejected, preResolved...)

	return &Result{
		Activities:    activities,
		Rejected:      rejected,
		Shift:         shift,
		Lunch:         lunch,
		Blocks:        blocks,
		Travel:        travel,
		RelaxOptional: req.RelaxOptional,
	}, nil
}

// normalizeGlobals parses the shift window, lunch preference, and blocked
// intervals, aggregating every parse failure via multierror so a caller
// sees every malformed field at once instead of one at a time (spec §2.3
// ambient error-handling convention, also used by the teacher for
// multi-field validation).
func normalizeGlobals(c app.NurseConstraintsInput) (domain.ShiftWindow, domain.LunchConfig, []domain.BlockedInterval, domain.TravelMatrix, error) {
	var errs *multierror.Error

	shiftStart, err := timecode.Parse(c.ShiftStartTime)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("shiftStartTime: %w", err))
	}
	shiftEnd, err := timecode.Parse(c.ShiftEndTime)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("shiftEndTime: %w", err))
	}

	var lunch domain.LunchConfig
	if c.LunchBreakPreferredStartTime != "" {
		lunchStart, err := timecode.Parse(c.LunchBreakPreferredStartTime)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("lunchBreakPreferredStartTime: %w", err))
		}
		lunch = domain.LunchConfig{PreferredStart: lunchStart, Duration: domain.Minute(c.LunchBreakDuration)}
	}

	blocks := make([]domain.BlockedInterval, 0, len(c.BlockedOutTimes))
	for i, b := range c.BlockedOutTimes {
		start, err := timecode.Parse(b.Start)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("blockedOutTimes[%d].start: %w", i, err))
			continue
		}
		end, err := timecode.Parse(b.End)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("blockedOutTimes[%d].end: %w", i, err))
			continue
		}
		if end == start {
			continue // zero-length blocks occupy no time
		}
		blocks = append(blocks, domain.BlockedInterval{Start: start, End: end, Reason: b.Reason})
	}

	if err := errs.ErrorOrNil(); err != nil {
		return domain.ShiftWindow{}, domain.LunchConfig{}, nil, nil, fmt.Errorf("%w: %v", domain.ErrBadTimeFormat, err)
	}

	shift := domain.ShiftWindow{Start: shiftStart, End: shiftEnd}
	if !shift.Valid() {
		return domain.ShiftWindow{}, domain.LunchConfig{}, nil, nil, fmt.Errorf("%w: shiftEndTime must be after shiftStartTime", domain.ErrBadTimeFormat)
	}

	var travel domain.TravelMatrix
	if len(c.TravelMatrix) > 0 {
		travel = make(domain.TravelMatrix, len(c.TravelMatrix))
		for from, tos := range c.TravelMatrix {
			for to, minutes := range tos {
				travel[domain.LocationPair{From: from, To: to}] = domain.Minute(minutes)
			}
		}
	}

	return shift, lunch, blocks, travel, nil
}

// idTracker resolves spec §4.3's duplicate-id rule: the first item to claim
// an id keeps it verbatim; every later item with the same raw id gets its
// kind appended, so collisions stay distinguishable in relatedItemId without
// ever silently dropping an item for an id clash alone.
type idTracker struct{ seen map[string]int }

func newIDTracker() *idTracker { return &idTracker{seen: make(map[string]int)} }

func (t *idTracker) resolve(id string, kind domain.ActivityKind) string {
	n := t.seen[id]
	t.seen[id] = n + 1
	if n == 0 {
		return id
	}
	return fmt.Sprintf("%s_%s", id, kind)
}
