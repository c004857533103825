package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/shiftopt/dayplan/internal/paramoracle"
)

func baseConstraints() app.NurseConstraintsInput {
	return app.NurseConstraintsInput{
		ShiftStartTime: "09:00:00",
		ShiftEndTime:   "17:00:00",
	}
}

func TestNormalize_RejectsMalformedShift(t *testing.T) {
	req := app.OptimizeRequest{NurseConstraints: app.NurseConstraintsInput{
		ShiftStartTime: "not-a-time",
		ShiftEndTime:   "17:00:00",
	}}
	_, err := Normalize(req, paramoracle.NewStaticOracle())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadTimeFormat)
}

func TestNormalize_RejectsInvertedShift(t *testing.T) {
	req := app.OptimizeRequest{NurseConstraints: app.NurseConstraintsInput{
		ShiftStartTime: "17:00:00",
		ShiftEndTime:   "09:00:00",
	}}
	_, err := Normalize(req, paramoracle.NewStaticOracle())
	require.Error(t, err)
}

func TestNormalize_MissingIdentifier(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: baseConstraints(),
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{{Title: "no id"}},
		},
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, string(domain.ReasonMissingIdentifier), res.Rejected[0].Reason)
	assert.Empty(t, res.Activities)
}

func TestNormalize_TaskDefaultsFromOracle(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: baseConstraints(),
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{{TaskID: "T1", Title: "chart review"}},
		},
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, res.Activities, 1)
	assert.Equal(t, paramoracle.DefaultTaskDuration, res.Activities[0].Duration)
	assert.Equal(t, paramoracle.DefaultPriority, res.Activities[0].Priority)
}

func TestNormalize_TaskPriorityLabel(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: baseConstraints(),
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{{TaskID: "T1", InitialPriorityScoreText: "High"}},
		},
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, res.Activities, 1)
	assert.Equal(t, 10, res.Activities[0].Priority)
}

func TestNormalize_TaskUnknownPriorityLabelRejected(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: baseConstraints(),
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{{TaskID: "T1", InitialPriorityScoreText: "urgent-ish"}},
		},
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, string(domain.ReasonMalformedInput), res.Rejected[0].Reason)
}

func TestNormalize_DuplicateIDSuffixed(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: baseConstraints(),
		WorkItems: app.WorkItemsInput{
			Tasks:        []app.TaskItem{{TaskID: "X1", Title: "a task"}},
			FollowUps:    []app.FollowUpItem{{FollowUpID: "X1", EstimatedDurationForFollowUpAction: 15, InitialPriorityScore: 3}},
		},
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, res.Activities, 2)
	ids := map[string]bool{}
	for _, a := range res.Activities {
		ids[a.ID] = true
	}
	assert.True(t, ids["X1"])
	assert.True(t, ids["X1_follow_up"])
}

func TestNormalize_FixedTimeOutsideShiftRejected(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: baseConstraints(),
		WorkItems: app.WorkItemsInput{
			Appointments: []app.AppointmentItem{{
				ItemID: "A1", EstimatedDuration: 30, IsFixedTime: true, StartTime: "07:00:00",
			}},
		},
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, string(domain.ReasonFixedTimeOutsideShift), res.Rejected[0].Reason)
}

func TestNormalize_FixedTimeClashesBlock(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: app.NurseConstraintsInput{
			ShiftStartTime: "09:00:00",
			ShiftEndTime:   "17:00:00",
			BlockedOutTimes: []app.BlockedOutTimeInput{
				{Start: "09:00:00", End: "10:00:00", Reason: "meeting"},
			},
		},
		WorkItems: app.WorkItemsInput{
			Appointments: []app.AppointmentItem{{
				ItemID: "A1", EstimatedDuration: 30, IsFixedTime: true, StartTime: "09:15:00",
			}},
		},
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, string(domain.ReasonFixedTimeClashesBlock), res.Rejected[0].Reason)
}

func TestNormalize_FixedFixedClashKeepsHigherPriority(t *testing.T) {
	lowPriority := 2
	highPriority := 9
	req := app.OptimizeRequest{
		NurseConstraints: baseConstraints(),
		WorkItems: app.WorkItemsInput{
			Appointments: []app.AppointmentItem{
				{ItemID: "A1", EstimatedDuration: 30, IsFixedTime: true, StartTime: "09:00:00", InitialPriorityScore: &lowPriority},
				{ItemID: "A2", EstimatedDuration: 30, IsFixedTime: true, StartTime: "09:00:00", InitialPriorityScore: &highPriority},
			},
		},
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, res.Activities, 1)
	assert.Equal(t, "A2", res.Activities[0].ID)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "A1", res.Rejected[0].ItemID)
	assert.Equal(t, string(domain.ReasonInfeasible), res.Rejected[0].Reason)
}

func TestNormalize_DeadlinePastShiftStartRejected(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: baseConstraints(),
		WorkItems: app.WorkItemsInput{
			Tasks: []app.TaskItem{{TaskID: "T1", Deadline: "08:00:00"}},
		},
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, string(domain.ReasonDeadlinePast), res.Rejected[0].Reason)
}

func TestNormalize_TravelMatrixParsed(t *testing.T) {
	req := app.OptimizeRequest{
		NurseConstraints: func() app.NurseConstraintsInput {
			c := baseConstraints()
			c.TravelMatrix = map[string]map[string]int{"clinicA": {"clinicB": 20}}
			return c
		}(),
	}
	res, err := Normalize(req, paramoracle.NewStaticOracle())
	require.NoError(t, err)
	assert.Equal(t, domain.Minute(20), res.Travel.Lookup("clinicA", "clinicB"))
}
