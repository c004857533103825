package normalizer

import (
	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/shiftopt/dayplan/internal/paramoracle"
	"github.com/shiftopt/dayplan/internal/timecode"
)

// reject builds the unachievable-item record for a per-item failure. id may
// be empty (MissingIdentifier); itemType is the activity kind tag the item
// would have been normalized to (e.g. "task", "follow_up", "vital_alert").
func reject(id, itemType string, reason domain.UnachievableReason) (*domain.Activity, *app.UnachievableItem) {
	item := app.NewUnachievableItem(id, itemType, reason)
	return nil, &item
}

func ok(a domain.Activity) (*domain.Activity, *app.UnachievableItem) { return &a, nil }

// normalizeAppointment handles both "appointments" and "calendar_events"
// (meetings): duration is estimatedDuration verbatim, priority is
// initialPriorityScore (default paramoracle.DefaultPriority), and a true
// isFixedTime pins the activity to its parsed startTime.
func normalizeAppointment(in *app.AppointmentItem, kind domain.ActivityKind, oracle paramoracle.Oracle) (*domain.Activity, *app.UnachievableItem) {
	if in.ItemID == "" {
		return reject("", string(kind), domain.ReasonMissingIdentifier)
	}
	if in.EstimatedDuration <= 0 {
		return reject(in.ItemID, string(kind), domain.ReasonMalformedInput)
	}

	a := domain.Activity{
		ID:       in.ItemID,
		Kind:     kind,
		Duration: domain.Minute(in.EstimatedDuration),
		Priority: priorityOrDefault(in.InitialPriorityScore),
		Location: in.Location,
		Title:    in.Title,
		Details:  in.Description,
	}

	if in.IsFixedTime {
		start, err := timecode.Parse(in.StartTime)
		if err != nil {
			return reject(in.ItemID, string(kind), domain.ReasonMalformedInput)
		}
		a.FixedStart = &start
	}

	return ok(a)
}

// normalizeTask handles "tasks": duration defaults from the oracle when
// omitted, priority accepts either a numeric initialPriorityScore or a
// label via initialPriorityScore_text, and deadline is optional.
func normalizeTask(in *app.TaskItem, oracle paramoracle.Oracle) (*domain.Activity, *app.UnachievableItem) {
	if in.TaskID == "" {
		return reject("", "task", domain.ReasonMissingIdentifier)
	}

	duration := oracle.TaskDefaultDuration()
	if in.EstimatedDuration != nil {
		if *in.EstimatedDuration <= 0 {
			return reject(in.TaskID, "task", domain.ReasonMalformedInput)
		}
		duration = domain.Minute(*in.EstimatedDuration)
	}

	priority := paramoracle.DefaultPriority
	switch {
	case in.InitialPriorityScore != nil:
		priority = *in.InitialPriorityScore
	case in.InitialPriorityScoreText != "":
		w, known := oracle.PriorityWeight(in.InitialPriorityScoreText)
		if !known {
			return reject(in.TaskID, "task", domain.ReasonMalformedInput)
		}
		priority = w
	}

	a := domain.Activity{
		ID:       in.TaskID,
		Kind:     domain.KindTask,
		Duration: duration,
		Priority: priority,
		Location: in.Location,
		Title:    in.Title,
		Details:  in.Description,
	}

	if in.Deadline != "" && in.Deadline != "None" {
		deadline, err := timecode.Parse(in.Deadline)
		if err != nil {
			return reject(in.TaskID, "task", domain.ReasonMalformedInput)
		}
		a.Deadline = &deadline
	}

	return ok(a)
}

// normalizeAlert handles both "critical_alerts_to_address" and
// "patient_vital_alerts": duration defaults from the oracle when omitted,
// priority is the raw urgencyScore, and alerts are never fixed-time.
func normalizeAlert(in *app.AlertItem, kind domain.ActivityKind, oracle paramoracle.Oracle) (*domain.Activity, *app.UnachievableItem) {
	if in.AlertID == "" {
		return reject("", string(kind), domain.ReasonMissingIdentifier)
	}

	duration := oracle.AlertDefaultAddressTime()
	if in.EstimatedTimeToAddress != nil {
		if *in.EstimatedTimeToAddress <= 0 {
			return reject(in.AlertID, string(kind), domain.ReasonMalformedInput)
		}
		duration = domain.Minute(*in.EstimatedTimeToAddress)
	}

	return ok(domain.Activity{
		ID:       in.AlertID,
		Kind:     kind,
		Duration: duration,
		Priority: in.UrgencyScore,
		Location: in.Location,
		Title:    in.Title,
		Details:  in.Description,
	})
}

// normalizeFollowUp handles "follow_ups": followUpId and a positive
// estimatedDurationForFollowUpAction are required; priority is
// initialPriorityScore taken verbatim.
func normalizeFollowUp(in *app.FollowUpItem) (*domain.Activity, *app.UnachievableItem) {
	if in.FollowUpID == "" {
		return reject("", "follow_up", domain.ReasonMissingIdentifier)
	}
	if in.EstimatedDurationForFollowUpAction <= 0 {
		return reject(in.FollowUpID, "follow_up", domain.ReasonMalformedInput)
	}

	return ok(domain.Activity{
		ID:       in.FollowUpID,
		Kind:     domain.KindFollowUp,
		Duration: domain.Minute(in.EstimatedDurationForFollowUpAction),
		Priority: in.InitialPriorityScore,
		Location: in.Location,
		Title:    in.Title,
		Details:  in.Description,
	})
}

// normalizeCarePlan handles both "care_plans" and "interventions", which
// share a shape but key off different id fields.
func normalizeCarePlan(in *app.CarePlanItem, kind domain.ActivityKind) (*domain.Activity, *app.UnachievableItem) {
	id := in.CarePlanID
	if id == "" {
		id = in.InterventionID
	}
	if id == "" {
		return reject("", string(kind), domain.ReasonMissingIdentifier)
	}
	if in.EstimatedDuration <= 0 {
		return reject(id, string(kind), domain.ReasonMalformedInput)
	}

	a := domain.Activity{
		ID:       id,
		Kind:     kind,
		Duration: domain.Minute(in.EstimatedDuration),
		Priority: in.Priority,
		Location: in.Location,
		Title:    in.Title,
		Details:  in.Description,
	}

	if in.Deadline != "" && in.Deadline != "None" {
		deadline, err := timecode.Parse(in.Deadline)
		if err != nil {
			return reject(id, string(kind), domain.ReasonMalformedInput)
		}
		a.Deadline = &deadline
	}

	return ok(a)
}

func priorityOrDefault(p *int) int {
	if p == nil {
		return paramoracle.DefaultPriority
	}
	return *p
}
