package projector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/cpmodel"
	"github.com/shiftopt/dayplan/internal/normalizer"
	"github.com/shiftopt/dayplan/internal/paramoracle"
	"github.com/shiftopt/dayplan/internal/solver"
)

func intPtr(i int) *int { return &i }

func TestProject_SortsAndLabelsEntries(t *testing.T) {
	oracle := paramoracle.NewStaticOracle()
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{
			ShiftStartTime:               "09:00:00",
			ShiftEndTime:                 "17:00:00",
			LunchBreakPreferredStartTime: "12:00:00",
			LunchBreakDuration:           30,
		},
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{{TaskID: "T1", EstimatedDuration: intPtr(30), InitialPriorityScore: intPtr(5)}},
		},
	}
	res, err := normalizer.Normalize(req, oracle)
	require.NoError(t, err)
	model, rejected, err := cpmodel.Build(res, oracle)
	require.NoError(t, err)
	require.Empty(t, rejected)

	seed := int64(1)
	sol, err := solver.Solve(context.Background(), model, time.Second, &seed)
	require.NoError(t, err)

	resp := Project("N1", "2026-07-31", model, sol, nil)

	require.Len(t, resp.OptimizedSchedule, 2)
	assert.Equal(t, "Task", resp.OptimizedSchedule[0].ActivityType)
	assert.Equal(t, "T1", resp.OptimizedSchedule[0].RelatedItemID)
	assert.Equal(t, "Break", resp.OptimizedSchedule[1].ActivityType)
	assert.Equal(t, "LUNCH", resp.OptimizedSchedule[1].RelatedItemID)
	assert.Empty(t, resp.UnachievableItems)
}

func TestProject_BlockedIntervalRendered(t *testing.T) {
	oracle := paramoracle.NewStaticOracle()
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{
			ShiftStartTime: "09:00:00",
			ShiftEndTime:   "17:00:00",
			BlockedOutTimes: []app.BlockedOutTimeInput{
				{Start: "13:00:00", End: "13:30:00", Reason: "Charting"},
			},
		},
	}
	res, err := normalizer.Normalize(req, oracle)
	require.NoError(t, err)
	model, rejected, err := cpmodel.Build(res, oracle)
	require.NoError(t, err)
	require.Empty(t, rejected)

	seed := int64(1)
	sol, err := solver.Solve(context.Background(), model, time.Second, &seed)
	require.NoError(t, err)

	resp := Project("N1", "2026-07-31", model, sol, nil)
	require.Len(t, resp.OptimizedSchedule, 1)
	assert.Equal(t, "Blocked", resp.OptimizedSchedule[0].ActivityType)
	assert.Equal(t, "BLOCK_0", resp.OptimizedSchedule[0].RelatedItemID)
	assert.Equal(t, "Charting", resp.OptimizedSchedule[0].Title)
}
