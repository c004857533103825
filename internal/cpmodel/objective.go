package cpmodel

import "github.com/shiftopt/dayplan/internal/paramoracle"

// Score computes the weighted objective (spec §4.4) for a feasible
// candidate: higher is better. The caller is expected to have already
// confirmed Feasible(c); Score does not re-check hard constraints.
//
//   - prioritySum: sum of Priority over every present activity, rewarding
//     placement of important work.
//   - latenessPenalty: excess minutes any present activity finishes past
//     its deadline. Deadlines are enforced as hard constraints elsewhere,
//     so this is ordinarily zero; it is kept as a defensive term so a
//     future relaxation of the hard deadline rule degrades gracefully
//     instead of silently losing the signal.
//   - lunchDeviation: absolute minutes the placed lunch break drifts from
//     its preferred start.
//   - earlyStartBonus: rewards starting high-priority activities sooner,
//     scaled by how much of the shift remains unused at their start.
func (m *Model) Score(c Candidate) float64 {
	w := m.Weights
	var prioritySum, lateness, earlyBonus float64

	for _, v := range m.Activities {
		if !c.Present[v.Activity.ID] {
			continue
		}
		start := c.Start[v.Activity.ID]
		prioritySum += float64(v.Activity.Priority)

		if v.Activity.HasDeadline() {
			if excess := start + v.Activity.Duration - *v.Activity.Deadline; excess > 0 {
				lateness += float64(excess)
			}
		}

		if v.Activity.Priority >= paramoracle.HighPriorityThreshold {
			slack := float64(m.Shift.End - m.Shift.Start)
			if slack > 0 {
				fractionUsed := float64(start-m.Shift.Start) / slack
				earlyBonus += (1 - fractionUsed)
			}
		}
	}

	var lunchDeviation float64
	if m.HasLunch {
		start := c.Start["__lunch__"]
		diff := start - m.Lunch.PreferredStart
		if diff < 0 {
			diff = -diff
		}
		lunchDeviation = float64(diff)
	}

	return w.PrioritySum*prioritySum -
		w.LatenessPenalty*lateness -
		w.LunchDeviation*lunchDeviation +
		w.EarlyStartBonus*earlyBonus
}
