package cpmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/shiftopt/dayplan/internal/normalizer"
	"github.com/shiftopt/dayplan/internal/paramoracle"
)

func buildFromReq(t *testing.T, req app.OptimizeRequest) *Model {
	t.Helper()
	res, err := normalizer.Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	m, rejected, err := Build(res, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Empty(t, rejected)
	return m
}

func TestBuild_FixedActivityCollapsesDomain(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{ShiftStartTime: "09:00:00", ShiftEndTime: "17:00:00"},
		WorkItems: app.WorkItemsInput{
			Appointments: []app.AppointmentItem{{ItemID: "A1", EstimatedDuration: 30, IsFixedTime: true, StartTime: "10:00:00"}},
		},
	}
	m := buildFromReq(t, req)
	require.Len(t, m.Activities, 1)
	v := m.Activities[0]
	assert.True(t, v.Fixed)
	assert.Equal(t, v.DomainStart, v.DomainEnd)
}

func TestBuild_TaskTooLongForShiftRejected(t *testing.T) {
	dur := 600
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{ShiftStartTime: "09:00:00", ShiftEndTime: "10:00:00"},
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{{TaskID: "T1", EstimatedDuration: &dur}},
		},
	}
	res, err := normalizer.Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	m, rejected, err := Build(res, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, string(domain.ReasonInfeasible), rejected[0].Reason)
	assert.Empty(t, m.Activities)
}

func TestFeasible_DetectsOverlap(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{ShiftStartTime: "09:00:00", ShiftEndTime: "17:00:00"},
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{
				{TaskID: "T1", EstimatedDuration: intPtr(60)},
				{TaskID: "T2", EstimatedDuration: intPtr(60)},
			},
		},
	}
	m := buildFromReq(t, req)

	overlapping := Candidate{
		Start:   map[string]domain.Minute{"T1": 540, "T2": 570},
		Present: map[string]bool{"T1": true, "T2": true},
	}
	assert.False(t, m.Feasible(overlapping))

	ok := Candidate{
		Start:   map[string]domain.Minute{"T1": 540, "T2": 600},
		Present: map[string]bool{"T1": true, "T2": true},
	}
	assert.True(t, m.Feasible(ok))
}

func TestFeasible_RespectsDeadline(t *testing.T) {
	dur := 30
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{ShiftStartTime: "09:00:00", ShiftEndTime: "17:00:00"},
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{{TaskID: "T1", EstimatedDuration: &dur, Deadline: "09:45:00"}},
		},
	}
	m := buildFromReq(t, req)

	tooLate := Candidate{Start: map[string]domain.Minute{"T1": 560}, Present: map[string]bool{"T1": true}}
	assert.False(t, m.Feasible(tooLate))

	onTime := Candidate{Start: map[string]domain.Minute{"T1": 540}, Present: map[string]bool{"T1": true}}
	assert.True(t, m.Feasible(onTime))
}

func TestFeasible_TravelBufferEnforced(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{
			ShiftStartTime: "09:00:00", ShiftEndTime: "17:00:00",
			TravelMatrix: map[string]map[string]int{"clinicA": {"clinicB": 20}},
		},
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{
				{TaskID: "T1", EstimatedDuration: intPtr(30), Location: "clinicA"},
				{TaskID: "T2", EstimatedDuration: intPtr(30), Location: "clinicB"},
			},
		},
	}
	m := buildFromReq(t, req)

	tooSoon := Candidate{
		Start:   map[string]domain.Minute{"T1": 540, "T2": 570},
		Present: map[string]bool{"T1": true, "T2": true},
	}
	assert.False(t, m.Feasible(tooSoon))

	withBuffer := Candidate{
		Start:   map[string]domain.Minute{"T1": 540, "T2": 590},
		Present: map[string]bool{"T1": true, "T2": true},
	}
	assert.True(t, m.Feasible(withBuffer))
}

func intPtr(i int) *int { return &i }
