package solver

import (
	"sort"

	"github.com/shiftopt/dayplan/internal/cpmodel"
	"github.com/shiftopt/dayplan/internal/domain"
)

// repairAttempts bounds how many nudges the repair pass will try before
// giving up on a candidate. Travel-buffer violations are local (one
// activity needs to move a little later), so a handful of passes over the
// present activities is enough in practice for a single day's activity
// count.
const repairAttempts = 20

// repair resolves travel-buffer violations the block-based greedy placer
// can't see (it only reasons about occupied time, not location): it walks
// present activities in start order and pushes any activity that violates
// the travel gap from its predecessor forward by exactly the missing
// minutes, as long as that keeps it inside its own domain, deadline, and
// clear of the next placement. An activity that can't be nudged into
// compliance is dropped if optional, otherwise the whole candidate fails.
func repair(m *cpmodel.Model, cand cpmodel.Candidate) (cpmodel.Candidate, bool) {
	byID := make(map[string]cpmodel.ActivityVar, len(m.Activities))
	for _, v := range m.Activities {
		byID[v.Activity.ID] = v
	}

	for pass := 0; pass < repairAttempts; pass++ {
		if m.Feasible(cand) {
			return cand, true
		}

		ids := presentIDsSortedByStart(m, cand)
		progressed := false

		for i := 1; i < len(ids); i++ {
			prevID, curID := ids[i-1], ids[i]
			prevEnd, prevLoc := intervalEnd(m, cand, prevID), intervalLoc(m, cand, prevID)
			curStart, curLoc := cand.Start[curID], intervalLoc(m, cand, curID)

			if prevLoc == "" || curLoc == "" || prevLoc == curLoc {
				continue
			}
			need := m.Travel.Lookup(prevLoc, curLoc)
			if curStart-prevEnd >= need {
				continue
			}

			v, isActivity := byID[curID]
			if !isActivity {
				continue // lunch and blocks never move during repair
			}
			newStart := prevEnd + need
			var nextStart domain.Minute
			hasNext := false
			if i+1 < len(ids) {
				nextStart, hasNext = cand.Start[ids[i+1]], true
			}
			if ok := tryMove(v, newStart, nextStart, hasNext); ok {
				cand.Start[curID] = newStart
				progressed = true
				break
			}
			if v.Optional {
				cand.Present[curID] = false
				delete(cand.Start, curID)
				progressed = true
				break
			}
			return cand, false
		}

		if !progressed {
			return cand, false
		}
	}
	return cand, m.Feasible(cand)
}

func tryMove(v cpmodel.ActivityVar, newStart domain.Minute, nextStart domain.Minute, hasNext bool) bool {
	if newStart > v.DomainEnd {
		return false
	}
	if v.Activity.HasDeadline() && newStart+v.Activity.Duration > *v.Activity.Deadline {
		return false
	}
	if hasNext && newStart+v.Activity.Duration > nextStart {
		return false
	}
	return true
}

func presentIDsSortedByStart(m *cpmodel.Model, cand cpmodel.Candidate) []string {
	type entry struct {
		id    string
		start domain.Minute
	}
	var entries []entry
	for _, v := range m.Activities {
		if cand.Present[v.Activity.ID] {
			entries = append(entries, entry{id: v.Activity.ID, start: cand.Start[v.Activity.ID]})
		}
	}
	if m.HasLunch {
		entries = append(entries, entry{id: "__lunch__", start: cand.Start["__lunch__"]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].start < entries[j].start })
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}

func intervalEnd(m *cpmodel.Model, cand cpmodel.Candidate, id string) domain.Minute {
	if id == "__lunch__" {
		return cand.Start[id] + m.Lunch.Duration
	}
	for _, v := range m.Activities {
		if v.Activity.ID == id {
			return cand.Start[id] + v.Activity.Duration
		}
	}
	return 0
}

func intervalLoc(m *cpmodel.Model, cand cpmodel.Candidate, id string) string {
	if id == "__lunch__" {
		return ""
	}
	for _, v := range m.Activities {
		if v.Activity.ID == id {
			return v.Activity.Location
		}
	}
	return ""
}
