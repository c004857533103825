package app

import "github.com/shiftopt/dayplan/internal/domain"

// ScheduleEntry is one placed slot in the optimized schedule (spec §6),
// covering work items, the lunch break, and blocked-out intervals alike.
type ScheduleEntry struct {
	SlotStartTime string `json:"slotStartTime"`
	SlotEndTime   string `json:"slotEndTime"`
	ActivityType  string `json:"activityType"`
	Title         string `json:"title"`
	Details       string `json:"details"`
	RelatedItemID string `json:"relatedItemId"`
}

// UnachievableItem reports one input item the optimizer could not place,
// with a reason code drawn from domain.UnachievableReason.
type UnachievableItem struct {
	ItemID   string `json:"itemId"`
	ItemType string `json:"itemType"`
	Reason   string `json:"reason"`
}

// OptimizeResponse is the Result Envelope (spec §6).
type OptimizeResponse struct {
	NurseID           string             `json:"nurseId"`
	ScheduleDate      string             `json:"scheduleDate"`
	OptimizedSchedule []ScheduleEntry    `json:"optimizedSchedule"`
	UnachievableItems []UnachievableItem `json:"unachievableItems"`
	OptimizationScore float64            `json:"optimizationScore"`
	Warnings          []string           `json:"warnings"`
}

// NewUnachievableItem is a small constructor used throughout the core so
// call sites read as "why", not "how", at the point a reason is assigned.
func NewUnachievableItem(itemID, itemType string, reason domain.UnachievableReason) UnachievableItem {
	return UnachievableItem{ItemID: itemID, ItemType: itemType, Reason: string(reason)}
}
