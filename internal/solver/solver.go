// Package solver is the Solver Driver (spec §4.5): given a cpmodel.Model it
// searches for a feasible, high-scoring assignment within a wall-clock
// budget.
//
// The search itself has two grounding sources: the initial placement is the
// free-block bin-packing pass from daylit's scheduler (place fixed/blocked
// intervals first, then greedily slot flexible work into the remaining
// gaps, splitting gaps around each placement), and the concurrency shape —
// several independent search attempts racing against a shared deadline,
// the best feasible one wins — uses golang.org/x/sync/errgroup the way the
// teacher's own concurrent use cases are structured. Attempts are ordered
// deterministically by hashing the request content with
// mitchellh/hashstructure/v2 instead of seeding math/rand from wall-clock
// time, so identical input always produces the same search trace and the
// same answer (spec §8 property 7, idempotence).
package solver

import (
	"context"
	"sort"
	"time"

	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/sync/errgroup"

	"github.com/shiftopt/dayplan/internal/cpmodel"
	"github.com/shiftopt/dayplan/internal/domain"
)

// DefaultBudget and MaxBudget bound the solver's wall-clock time (spec §5).
const (
	DefaultBudget = 15 * time.Second
	MaxBudget     = 60 * time.Second
)

// attemptCount is how many differently-ordered greedy+repair attempts race
// against the deadline. More attempts cost more CPU for a better chance at
// an improved score; this is a fixed, modest fan-out rather than something
// scaled by problem size, since a single day's activity count is small.
const attemptCount = 8

// Solution is the Solver Driver's output: the chosen assignment, its
// classification, and which activities the search left out.
type Solution struct {
	Status   domain.SolveStatus
	Score    float64
	Result   cpmodel.Candidate
	Dropped  []string // activity IDs present in the model but absent from Result; empty when no attempt produced a feasible Result (StatusInfeasible/StatusUnknown)
	TimedOut bool
}

// Solve runs the budgeted multi-start search. A non-positive budget means
// DefaultBudget, and a budget above MaxBudget is clamped to MaxBudget; seed,
// if nil, is derived deterministically from the model's own content.
func Solve(ctx context.Context, m *cpmodel.Model, budget time.Duration, seed *int64) (Solution, error) {
	if budget <= 0 {
		budget = DefaultBudget
	}
	if budget > MaxBudget {
		budget = MaxBudget
	}

	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	baseSeed := resolveSeed(m, seed)
	orders := attemptOrders(m, baseSeed, attemptCount)

	type attemptResult struct {
		candidate cpmodel.Candidate
		score     float64
		feasible  bool
	}
	results := make([]attemptResult, len(orders))

	g, gctx := errgroup.WithContext(ctx)
	for i, order := range orders {
		i, order := i, order
		g.Go(func() error {
			cand, feasible := runAttempt(gctx, m, order)
			if feasible {
				results[i] = attemptResult{candidate: cand, score: m.Score(cand), feasible: true}
			}
			return nil
		})
	}
	// Every attempt goroutine returns nil (runAttempt has no error to
	// report), so Wait only blocks until all attempts have finished.
	_ = g.Wait()

	best := -1
	for i, r := range results {
		if !r.feasible {
			continue
		}
		if best == -1 || r.score > results[best].score {
			best = i
		}
	}

	timedOut := ctx.Err() != nil

	if best == -1 {
		if len(m.Activities) == 0 {
			return Solution{Status: domain.StatusOptimal, Result: cpmodel.Candidate{Start: map[string]domain.Minute{}, Present: map[string]bool{}}}, nil
		}
		if timedOut {
			return Solution{Status: domain.StatusUnknown, TimedOut: true}, nil
		}
		return Solution{Status: domain.StatusInfeasible}, nil
	}

	chosen := results[best]
	dropped := droppedActivities(m, chosen.candidate)
	status := domain.StatusOptimal
	if timedOut || len(dropped) > 0 {
		status = domain.StatusFeasible
	}

	return Solution{
		Status:   status,
		Score:    chosen.score,
		Result:   chosen.candidate,
		Dropped:  dropped,
		TimedOut: timedOut,
	}, nil
}

// resolveSeed returns the caller's seed if supplied, otherwise a hash of the
// model's activity set so identical requests always search in the same
// order (spec §8 property 7).
func resolveSeed(m *cpmodel.Model, seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	type fingerprint struct {
		Shift      domain.ShiftWindow
		Activities []cpmodel.ActivityVar
	}
	h, err := hashstructure.Hash(fingerprint{Shift: m.Shift, Activities: m.Activities}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return int64(h)
}

// attemptOrders derives attemptCount distinct, deterministic permutations of
// the model's activity indices by hashing (baseSeed, attempt index)
// together and using the resulting value as a Fisher-Yates shuffle source.
func attemptOrders(m *cpmodel.Model, baseSeed int64, n int) [][]int {
	orders := make([][]int, n)
	for a := 0; a < n; a++ {
		order := make([]int, len(m.Activities))
		for i := range order {
			order[i] = i
		}
		rng := newSplitMix64(baseSeed ^ int64(a)*0x9E3779B97F4A7C15)
		for i := len(order) - 1; i > 0; i-- {
			j := int(rng.next() % uint64(i+1))
			order[i], order[j] = order[j], order[i]
		}
		orders[a] = order
	}
	return orders
}

// droppedActivities lists the mandatory or optional activities in the model
// that did not end up present in the chosen candidate.
func droppedActivities(m *cpmodel.Model, c cpmodel.Candidate) []string {
	var dropped []string
	for _, v := range m.Activities {
		if !c.Present[v.Activity.ID] {
			dropped = append(dropped, v.Activity.ID)
		}
	}
	sort.Strings(dropped)
	return dropped
}
