package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/cpmodel"
	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/shiftopt/dayplan/internal/normalizer"
	"github.com/shiftopt/dayplan/internal/paramoracle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func buildModel(t *testing.T, req app.OptimizeRequest) *cpmodel.Model {
	t.Helper()
	oracle := paramoracle.NewStaticOracle()
	res, err := normalizer.Normalize(req, oracle)
	require.NoError(t, err)
	model, rejected, err := cpmodel.Build(res, oracle)
	require.NoError(t, err)
	require.Empty(t, rejected)
	return model
}

func TestSolve_SimpleFeasibleCase(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{ShiftStartTime: "09:00:00", ShiftEndTime: "17:00:00"},
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{
				{TaskID: "T1", EstimatedDuration: intPtr(60), InitialPriorityScore: intPtr(5)},
				{TaskID: "T2", EstimatedDuration: intPtr(30), InitialPriorityScore: intPtr(3)},
			},
		},
	}
	model := buildModel(t, req)

	seed := int64(42)
	sol, err := Solve(context.Background(), model, time.Second, &seed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOptimal, sol.Status)
	assert.True(t, sol.Result.Present["T1"])
	assert.True(t, sol.Result.Present["T2"])
	assert.Empty(t, sol.Dropped)
}

func TestSolve_Deterministic(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{ShiftStartTime: "09:00:00", ShiftEndTime: "17:00:00"},
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{
				{TaskID: "T1", EstimatedDuration: intPtr(45), InitialPriorityScore: intPtr(9)},
				{TaskID: "T2", EstimatedDuration: intPtr(45), InitialPriorityScore: intPtr(4)},
				{TaskID: "T3", EstimatedDuration: intPtr(45), InitialPriorityScore: intPtr(7)},
			},
		},
	}
	model := buildModel(t, req)

	sol1, err := Solve(context.Background(), model, time.Second, nil)
	require.NoError(t, err)
	sol2, err := Solve(context.Background(), model, time.Second, nil)
	require.NoError(t, err)

	assert.Equal(t, sol1.Result, sol2.Result)
	assert.Equal(t, sol1.Score, sol2.Score)
}

func TestSolve_OverbookedDropsLowestValue(t *testing.T) {
	req := app.OptimizeRequest{
		RelaxOptional: true,
		NurseConstraints: app.NurseConstraintsInput{ShiftStartTime: "09:00:00", ShiftEndTime: "10:00:00"},
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{
				{TaskID: "T1", EstimatedDuration: intPtr(45), InitialPriorityScore: intPtr(9)},
				{TaskID: "T2", EstimatedDuration: intPtr(45), InitialPriorityScore: intPtr(2)},
			},
		},
	}
	model := buildModel(t, req)

	seed := int64(7)
	sol, err := Solve(context.Background(), model, time.Second, &seed)
	require.NoError(t, err)
	assert.True(t, sol.Result.Present["T1"])
	assert.False(t, sol.Result.Present["T2"])
	assert.Contains(t, sol.Dropped, "T2")
}

func intPtr(i int) *int { return &i }
