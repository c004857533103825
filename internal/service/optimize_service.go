// Package service wires the core pipeline — Normalizer, Model Builder,
// Solver Driver, Solution Projector — behind the single
// app.OptimizeScheduleUseCase port (spec §1, §4).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/cpmodel"
	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/shiftopt/dayplan/internal/normalizer"
	"github.com/shiftopt/dayplan/internal/paramoracle"
	"github.com/shiftopt/dayplan/internal/projector"
	"github.com/shiftopt/dayplan/internal/solver"
)

// OptimizeService implements app.OptimizeScheduleUseCase.
type OptimizeService struct {
	Oracle      paramoracle.Oracle
	SolveBudget time.Duration
	// DefaultSeed, when set, seeds the Solver Driver for any request that
	// doesn't supply its own Seed (DAYPLAN_RANDOM_SEED at the config layer).
	// Requests still default to the model-content hash when this is nil too.
	DefaultSeed *int64
	observer    UseCaseObserver
}

// NewOptimizeService wires an Oracle, a default solve budget, and an
// optional fallback seed. observers may be omitted for NoopUseCaseObserver,
// or supplied to log every call (spec §2.2's ambient observability, carried
// from the teacher's service layer).
func NewOptimizeService(oracle paramoracle.Oracle, solveBudget time.Duration, defaultSeed *int64, observers ...UseCaseObserver) *OptimizeService {
	return &OptimizeService{
		Oracle:      oracle,
		SolveBudget: solveBudget,
		DefaultSeed: defaultSeed,
		observer:    useCaseObserverOrNoop(observers),
	}
}

var _ app.OptimizeScheduleUseCase = (*OptimizeService)(nil)

// OptimizeSchedule runs the full pipeline for one request. Malformed global
// fields (an unparseable shift/lunch/block time, or an inverted shift
// window) are the only case that returns a non-nil error; every per-item
// problem instead surfaces as an UnachievableItem in the response.
func (s *OptimizeService) OptimizeSchedule(ctx context.Context, req app.OptimizeRequest) (app.OptimizeResponse, error) {
	traceID := uuid.New().String()
	started := time.Now()

	resp, sol, err := s.run(ctx, req)

	fields := map[string]any{
		"solve_trace_id": traceID,
		"nurse_id":       req.NurseID,
		"schedule_date":  req.ScheduleDate,
		"relax_opt":      req.RelaxOptional,
	}
	if err == nil {
		fields["status"] = string(sol.Status)
		fields["score"] = sol.Score
		fields["activity_count"] = len(resp.OptimizedSchedule)
		fields["unachievable_count"] = len(resp.UnachievableItems)
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "OptimizeSchedule",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    fields,
	})

	return resp, err
}

func (s *OptimizeService) run(ctx context.Context, req app.OptimizeRequest) (app.OptimizeResponse, solver.Solution, error) {
	normalized, err := normalizer.Normalize(req, s.Oracle)
	if err != nil {
		return app.OptimizeResponse{}, solver.Solution{}, err
	}

	model, buildRejected, err := cpmodel.Build(normalized, s.Oracle)
	if err != nil {
		return app.OptimizeResponse{}, solver.Solution{}, err
	}

	rejected := append(append([]app.UnachievableItem{}, normalized.Rejected...), buildRejected...)

	budget := s.SolveBudget
	if budget <= 0 {
		budget = solver.DefaultBudget
	}

	seed := req.Seed
	if seed == nil {
		seed = s.DefaultSeed
	}

	sol, err := solver.Solve(ctx, model, budget, seed)
	if err != nil {
		return app.OptimizeResponse{}, solver.Solution{}, err
	}

	// A wholly infeasible model (even the mandatory activities alone
	// conflict), or a budget that ran out before any attempt finished,
	// still yields a full envelope, not a Go error: every activity in the
	// model becomes an unachievable item with reason Infeasible or
	// TimeoutNoSolution instead of the caller getting nothing back (spec
	// §7's reason codes are per-item, not call-level failures).
	if sol.Status == domain.StatusInfeasible || sol.Status == domain.StatusUnknown {
		reason := domain.ReasonInfeasible
		if sol.Status == domain.StatusUnknown {
			reason = domain.ReasonTimeoutNoSolution
		}
		for _, v := range model.Activities {
			rejected = append(rejected, app.NewUnachievableItem(v.Activity.ID, string(v.Activity.Kind), reason))
		}
		return projector.Project(req.NurseID, req.ScheduleDate, model, sol, rejected), sol, nil
	}

	return projector.Project(req.NurseID, req.ScheduleDate, model, sol, rejected), sol, nil
}
