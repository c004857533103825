// Package contract is the stable external facade over internal/app: plain
// type aliases so callers outside the core can depend on one small package
// instead of reaching into app directly. (internal/cli currently imports
// internal/app itself.)
package contract

import "github.com/shiftopt/dayplan/internal/app"

type (
	OptimizeRequest         = app.OptimizeRequest
	OptimizeResponse        = app.OptimizeResponse
	WorkItemsInput          = app.WorkItemsInput
	NurseConstraintsInput   = app.NurseConstraintsInput
	AppointmentItem         = app.AppointmentItem
	TaskItem                = app.TaskItem
	AlertItem               = app.AlertItem
	FollowUpItem            = app.FollowUpItem
	CarePlanItem            = app.CarePlanItem
	BlockedOutTimeInput     = app.BlockedOutTimeInput
	ScheduleEntry           = app.ScheduleEntry
	UnachievableItem        = app.UnachievableItem
	OptimizeScheduleUseCase = app.OptimizeScheduleUseCase
)

var NewUnachievableItem = app.NewUnachievableItem
