package normalizer

import (
	"sort"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/domain"
)

// resolvePreSolveConflicts removes activities that can never be placed
// regardless of what the solver does: fixed-start items outside the shift,
// fixed-start items clashing with a blocked interval, fixed-start items
// clashing with each other, and items whose deadline falls at or before
// the shift's start. Doing this before the Model
// Builder runs keeps "mandatory, conflicting, fixed" from turning into a
// whole-problem infeasible result — spec §3 invariant 3 only promises that
// *a* conflicting fixed item becomes unachievable, not that the caller's
// entire schedule fails alongside it.
func resolvePreSolveConflicts(activities []domain.Activity, shift domain.ShiftWindow, blocks []domain.BlockedInterval) ([]domain.Activity, []app.UnachievableItem) {
	var rejected []app.UnachievableItem
	kept := make([]domain.Activity, 0, len(activities))

	for _, a := range activities {
		if a.HasDeadline() && *a.Deadline <= shift.Start {
			rejected = append(rejected, app.NewUnachievableItem(a.ID, string(a.Kind), domain.ReasonDeadlinePast))
			continue
		}
		if !a.IsFixed() {
			kept = append(kept, a)
			continue
		}

		end := *a.FixedStart + a.Duration
		if *a.FixedStart < shift.Start || end > shift.End {
			rejected = append(rejected, app.NewUnachievableItem(a.ID, string(a.Kind), domain.ReasonFixedTimeOutsideShift))
			continue
		}
		if overlapsAnyBlock(*a.FixedStart, end, blocks) {
			rejected = append(rejected, app.NewUnachievableItem(a.ID, string(a.Kind), domain.ReasonFixedTimeClashesBlock))
			continue
		}
		kept = append(kept, a)
	}

	kept, clashRejected := resolveFixedFixedClashes(kept)
	rejected = append(rejected, clashRejected...)

	return kept, rejected
}

func overlapsAnyBlock(start, end domain.Minute, blocks []domain.BlockedInterval) bool {
	for _, b := range blocks {
		if start < b.End && b.Start < end {
			return true
		}
	}
	return false
}

// resolveFixedFixedClashes clusters mutually-overlapping fixed-start
// activities and keeps only the highest-priority member of each cluster
// (ties broken by id for determinism), dropping the rest with reason
// Infeasible — the spec explicitly allows either Infeasible or
// FixedTimeClashesBlock for a fixed/fixed collision; Infeasible names the
// cause (resource contention between two hard commitments) precisely.
func resolveFixedFixedClashes(activities []domain.Activity) ([]domain.Activity, []app.UnachievableItem) {
	fixed := make([]int, 0)
	for i, a := range activities {
		if a.IsFixed() {
			fixed = append(fixed, i)
		}
	}
	sort.Slice(fixed, func(i, j int) bool {
		return *activities[fixed[i]].FixedStart < *activities[fixed[j]].FixedStart
	})

	dropped := make(map[int]bool)
	clusterStart := 0
	for clusterStart < len(fixed) {
		clusterEnd := clusterStart + 1
		frontier := *activities[fixed[clusterStart]].FixedStart + activities[fixed[clusterStart]].Duration
		for clusterEnd < len(fixed) && *activities[fixed[clusterEnd]].FixedStart < frontier {
			if end := *activities[fixed[clusterEnd]].FixedStart + activities[fixed[clusterEnd]].Duration; end > frontier {
				frontier = end
			}
			clusterEnd++
		}

		if clusterEnd-clusterStart > 1 {
			winner := fixed[clusterStart]
			for _, idx := range fixed[clusterStart:clusterEnd] {
				if betterFixedCandidate(activities[idx], activities[winner]) {
					winner = idx
				}
			}
			for _, idx := range fixed[clusterStart:clusterEnd] {
				if idx != winner {
					dropped[idx] = true
				}
			}
		}
		clusterStart = clusterEnd
	}

	var rejected []app.UnachievableItem
	kept := make([]domain.Activity, 0, len(activities))
	for i, a := range activities {
		if dropped[i] {
			rejected = append(rejected, app.NewUnachievableItem(a.ID, string(a.Kind), domain.ReasonInfeasible))
			continue
		}
		kept = append(kept, a)
	}
	return kept, rejected
}

func betterFixedCandidate(candidate, current domain.Activity) bool {
	if candidate.Priority != current.Priority {
		return candidate.Priority > current.Priority
	}
	return candidate.ID < current.ID
}
