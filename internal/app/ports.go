package app

import "context"

// OptimizeScheduleUseCase is the single entry point into the core (spec §1,
// §6): normalize, build, solve, project, envelope. internal/service provides
// the implementation; internal/cli and internal/contract are its callers.
type OptimizeScheduleUseCase interface {
	OptimizeSchedule(ctx context.Context, req OptimizeRequest) (OptimizeResponse, error)
}
