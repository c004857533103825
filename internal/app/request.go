// Package app holds the request/response DTOs and use-case ports for the
// optimizer (spec §6 External Interfaces), mirroring the teacher's
// app-as-ports-layer convention: internal/app defines the shapes, internal/
// contract re-exports them as the stable external facade, and internal/
// service implements the use cases against repositories/collaborators.
package app

// AppointmentItem covers both "appointments" and "calendar_events"
// (meetings): spec §4.3 normalizes both categories through the same rule.
type AppointmentItem struct {
	ItemID               string `json:"itemId"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	EstimatedDuration    int    `json:"estimatedDuration"`
	InitialPriorityScore *int   `json:"initialPriorityScore,omitempty"`
	IsFixedTime          bool   `json:"isFixedTime"`
	StartTime            string `json:"startTime,omitempty"`
	Location             string `json:"location,omitempty"`
}

// TaskItem is a flexible, deadline-bearing work item.
type TaskItem struct {
	TaskID                   string `json:"taskId"`
	Title                    string `json:"title"`
	Description              string `json:"description"`
	EstimatedDuration        *int   `json:"estimatedDuration,omitempty"`
	InitialPriorityScore     *int   `json:"initialPriorityScore,omitempty"`
	InitialPriorityScoreText string `json:"initialPriorityScore_text,omitempty"`
	Deadline                 string `json:"deadline,omitempty"`
	Location                 string `json:"location,omitempty"`
	// PGIContext is asserted by spec.md as duration/priority-refining input
	// with no concrete rules (Open Question 3); it is accepted but ignored.
	PGIContext string `json:"pgiContext,omitempty"`
}

// AlertItem covers both critical alerts and patient vital alerts, which
// share the urgencyScore/estimatedTimeToAddress shape and are never fixed-time.
type AlertItem struct {
	AlertID                string `json:"alertId"`
	Title                  string `json:"title"`
	Description            string `json:"description"`
	EstimatedTimeToAddress *int   `json:"estimatedTimeToAddress,omitempty"`
	UrgencyScore           int    `json:"urgencyScore"`
	Location               string `json:"location,omitempty"`
}

// FollowUpItem is a follow-up action on a prior encounter.
type FollowUpItem struct {
	FollowUpID                         string `json:"followUpId"`
	Title                              string `json:"title"`
	Description                        string `json:"description"`
	EstimatedDurationForFollowUpAction int    `json:"estimatedDurationForFollowUpAction"`
	InitialPriorityScore               int    `json:"initialPriorityScore"`
	Location                           string `json:"location,omitempty"`
}

// CarePlanItem covers both "care_plans" and "interventions", which share
// duration/priority/deadline semantics (spec §4.3); only one of CarePlanID
// or InterventionID is populated depending on the source category.
type CarePlanItem struct {
	CarePlanID     string `json:"carePlanId,omitempty"`
	InterventionID string `json:"interventionId,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	EstimatedDuration int `json:"estimatedDuration"`
	Priority          int `json:"priority"`
	Deadline          string `json:"deadline,omitempty"`
	Location          string `json:"location,omitempty"`
}

// WorkItemsInput is the full set of heterogeneous input categories (spec
// §6). Every category is optional and defaults to empty; unknown keys in
// the wire JSON are simply ignored by the decoder.
type WorkItemsInput struct {
	Appointments       []AppointmentItem `json:"appointments"`
	CalendarEvents     []AppointmentItem `json:"calendar_events"`
	Tasks              []TaskItem        `json:"tasks"`
	CriticalAlerts     []AlertItem       `json:"critical_alerts_to_address"`
	FollowUps          []FollowUpItem    `json:"follow_ups"`
	CarePlans          []CarePlanItem    `json:"care_plans"`
	PatientVitalAlerts []AlertItem       `json:"patient_vital_alerts"`
	Interventions      []CarePlanItem    `json:"interventions"`
}

// BlockedOutTimeInput is one mandatory non-work interval.
type BlockedOutTimeInput struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason"`
}

// NurseConstraintsInput is the per-worker constraint set (spec §6).
type NurseConstraintsInput struct {
	ShiftStartTime               string                `json:"shiftStartTime"`
	ShiftEndTime                 string                `json:"shiftEndTime"`
	LunchBreakPreferredStartTime string                `json:"lunchBreakPreferredStartTime"`
	LunchBreakDuration           int                   `json:"lunchBreakDuration"`
	BlockedOutTimes              []BlockedOutTimeInput `json:"blockedOutTimes"`
	TravelMatrix                 map[string]map[string]int `json:"travelMatrix,omitempty"`
	CurrentLocation              string                `json:"currentLocation,omitempty"`
	// PatientPreference's influence on the objective is unspecified
	// (Open Question 1); it is accepted but ignored.
	PatientPreference string `json:"patientPreference,omitempty"`
}

// OptimizeRequest is the inbound request shape (spec §6).
type OptimizeRequest struct {
	NurseID          string                `json:"nurseId"`
	ScheduleDate     string                `json:"scheduleDate"`
	WorkItems        WorkItemsInput        `json:"workItems"`
	NurseConstraints NurseConstraintsInput `json:"nurseConstraints"`

	// RelaxOptional switches the Model Builder's presence variables from
	// forced-mandatory to free, per spec §4.4.
	RelaxOptional bool `json:"relaxOptional,omitempty"`
	// Seed fixes the solver's search order for reproducible replay (spec
	// §5, §9). Nil means "use the service's configured default seed, or,
	// when none is configured, derive one from a hash of the shift and the
	// normalized activities", which keeps identical requests reproducible
	// without the caller having to supply anything.
	Seed *int64 `json:"seed,omitempty"`
}
