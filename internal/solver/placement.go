package solver

import (
	"context"
	"sort"

	"github.com/shiftopt/dayplan/internal/cpmodel"
	"github.com/shiftopt/dayplan/internal/domain"
)

// freeBlock is an unoccupied span of the shift, the daylit-style unit the
// greedy placer carves up as it commits placements.
type freeBlock struct {
	start, end domain.Minute
}

// runAttempt builds one candidate assignment: fixed activities and blocked
// intervals first, then the lunch break near its preference, then flexible
// activities greedily into the remaining free blocks by descending priority
// (earlier deadline next, then the attempt's shuffled rank from order as the
// final tie-break), finally repairing any travel-buffer violations the
// block-based placement can't see on its own.
func runAttempt(ctx context.Context, m *cpmodel.Model, order []int) (cpmodel.Candidate, bool) {
	cand := cpmodel.Candidate{Start: map[string]domain.Minute{}, Present: map[string]bool{}}

	blocks := []freeBlock{{start: m.Shift.Start, end: m.Shift.End}}
	for _, b := range m.Blocks {
		blocks = subtract(blocks, b.Start, b.End)
	}

	for _, v := range m.Activities {
		if v.Fixed {
			cand.Present[v.Activity.ID] = true
			cand.Start[v.Activity.ID] = v.DomainStart
			blocks = subtract(blocks, v.DomainStart, v.End(v.DomainStart))
		}
	}

	if m.HasLunch {
		if start, ok := placeNearest(blocks, m.Lunch.PreferredStart, m.Lunch.Duration, m.Shift); ok {
			cand.Start["__lunch__"] = start
			blocks = subtract(blocks, start, start+m.Lunch.Duration)
		} else {
			return cand, false
		}
	}

	rankOf := make([]int, len(order))
	for rank, idx := range order {
		rankOf[idx] = rank
	}

	flexible := make([]int, 0, len(m.Activities))
	for i, v := range m.Activities {
		if !v.Fixed {
			flexible = append(flexible, i)
		}
	}
	sort.Slice(flexible, func(i, j int) bool {
		a, b := m.Activities[flexible[i]], m.Activities[flexible[j]]
		if a.Activity.Priority != b.Activity.Priority {
			return a.Activity.Priority > b.Activity.Priority
		}
		aHasDL, bHasDL := a.Activity.HasDeadline(), b.Activity.HasDeadline()
		if aHasDL != bHasDL {
			return aHasDL
		}
		if aHasDL && bHasDL && *a.Activity.Deadline != *b.Activity.Deadline {
			return *a.Activity.Deadline < *b.Activity.Deadline
		}
		return rankOf[flexible[i]] < rankOf[flexible[j]]
	})

	for _, idx := range flexible {
		if ctx.Err() != nil {
			return cand, false
		}
		v := m.Activities[idx]
		start, blockIdx, ok := placeEarliest(blocks, v)
		if !ok {
			if v.Optional {
				cand.Present[v.Activity.ID] = false
				continue
			}
			return cand, false
		}
		cand.Present[v.Activity.ID] = true
		cand.Start[v.Activity.ID] = start
		blocks = subtractAt(blocks, blockIdx, start, start+v.Activity.Duration)
	}

	if m.Feasible(cand) {
		return cand, true
	}
	return repair(m, cand)
}

// placeEarliest finds the first free block that can host v within its own
// domain and deadline, and returns the earliest feasible start inside it.
func placeEarliest(blocks []freeBlock, v cpmodel.ActivityVar) (domain.Minute, int, bool) {
	for i, b := range blocks {
		start := b.start
		if v.DomainStart > start {
			start = v.DomainStart
		}
		end := start + v.Activity.Duration
		if start > v.DomainEnd || end > b.end {
			continue
		}
		if v.Activity.HasDeadline() && end > *v.Activity.Deadline {
			continue
		}
		return start, i, true
	}
	return 0, 0, false
}

// placeNearest finds the free block that lets duration start closest to
// preferred, used for lunch placement.
func placeNearest(blocks []freeBlock, preferred, duration domain.Minute, shift domain.ShiftWindow) (domain.Minute, bool) {
	best := domain.Minute(0)
	bestDist := domain.Minute(-1)
	found := false
	for _, b := range blocks {
		lo, hi := b.start, b.end-duration
		if hi < lo {
			continue
		}
		candidate := preferred
		if candidate < lo {
			candidate = lo
		}
		if candidate > hi {
			candidate = hi
		}
		dist := candidate - preferred
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist {
			best, bestDist, found = candidate, dist, true
		}
	}
	return best, found
}

// subtract removes [start, end) from every block in blocks, splitting a
// block in two when the removed span falls in its interior.
func subtract(blocks []freeBlock, start, end domain.Minute) []freeBlock {
	out := make([]freeBlock, 0, len(blocks)+1)
	for _, b := range blocks {
		if end <= b.start || start >= b.end {
			out = append(out, b)
			continue
		}
		if start > b.start {
			out = append(out, freeBlock{start: b.start, end: start})
		}
		if end < b.end {
			out = append(out, freeBlock{start: end, end: b.end})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

// subtractAt removes [start, end) specifically from blocks[idx], which the
// caller already knows contains it; behaves like subtract but avoids
// rescanning every block.
func subtractAt(blocks []freeBlock, idx int, start, end domain.Minute) []freeBlock {
	b := blocks[idx]
	var replacement []freeBlock
	if start > b.start {
		replacement = append(replacement, freeBlock{start: b.start, end: start})
	}
	if end < b.end {
		replacement = append(replacement, freeBlock{start: end, end: b.end})
	}
	out := make([]freeBlock, 0, len(blocks)+1)
	out = append(out, blocks[:idx]...)
	out = append(out, replacement...)
	out = append(out, blocks[idx+1:]...)
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}
