package cpmodel

import (
	"sort"
	"strconv"

	"github.com/shiftopt/dayplan/internal/domain"
)

// Candidate is one full assignment: a start time for every present
// activity, plus the presence decision for every optional one. Fixed and
// mandatory activities are always present and their starts fixed or
// implied, but are still carried here so Feasible can check them uniformly.
type Candidate struct {
	Start   map[string]domain.Minute
	Present map[string]bool
}

// interval is an internal (start, end, location) view used by the overlap
// and travel checks below.
type interval struct {
	id       string
	start    domain.Minute
	end      domain.Minute
	location string
}

func (m *Model) presentIntervals(c Candidate) []interval {
	out := make([]interval, 0, len(m.Activities)+len(m.Blocks)+1)
	for _, v := range m.Activities {
		if !c.Present[v.Activity.ID] {
			continue
		}
		start := c.Start[v.Activity.ID]
		out = append(out, interval{id: v.Activity.ID, start: start, end: v.End(start), location: v.Activity.Location})
	}
	if m.HasLunch {
		start := c.Start["__lunch__"]
		out = append(out, interval{id: "__lunch__", start: start, end: start + m.Lunch.Duration})
	}
	for i, b := range m.Blocks {
		out = append(out, interval{id: blockID(i), start: b.Start, end: b.End})
	}
	return out
}

func blockID(i int) string { return "__block_" + strconv.Itoa(i) + "__" }

// Feasible reports whether the candidate satisfies every hard constraint:
// domain bounds, no pairwise overlap (including lunch and blocked
// intervals), deadlines, and location travel buffers. The Solver Driver
// calls this after every repair move instead of re-deriving the rules.
func (m *Model) Feasible(c Candidate) bool {
	for _, v := range m.Activities {
		if v.Fixed || !v.Optional {
			if !c.Present[v.Activity.ID] {
				return false
			}
		}
		if !c.Present[v.Activity.ID] {
			continue
		}
		start, ok := c.Start[v.Activity.ID]
		if !ok || start < v.DomainStart || start > v.DomainEnd {
			return false
		}
		if v.Activity.HasDeadline() && start+v.Activity.Duration > *v.Activity.Deadline {
			return false
		}
	}

	if m.HasLunch {
		start, ok := c.Start["__lunch__"]
		if !ok || start < m.Shift.Start || start+m.Lunch.Duration > m.Shift.End {
			return false
		}
	}

	ivs := m.presentIntervals(c)
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].start < ivs[j].start })
	for i := 1; i < len(ivs); i++ {
		if ivs[i].start < ivs[i-1].end {
			return false
		}
	}

	return m.travelSatisfied(ivs)
}

// travelSatisfied checks that consecutive located activities (in start-time
// order) leave enough gap for the travel time between their locations.
// Co-located or unlocated activities impose no buffer.
func (m *Model) travelSatisfied(sortedIntervals []interval) bool {
	if len(m.Travel) == 0 {
		return true
	}
	var prev *interval
	for i := range sortedIntervals {
		iv := sortedIntervals[i]
		if iv.location == "" {
			continue
		}
		if prev != nil && prev.location != iv.location {
			need := m.Travel.Lookup(prev.location, iv.location)
			if iv.start-prev.end < need {
				return false
			}
		}
		prev = &sortedIntervals[i]
	}
	return true
}
