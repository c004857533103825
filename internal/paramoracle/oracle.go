// Package paramoracle is the read-only parameter lookup the Normalizer and
// Model Builder query for defaults and objective weights (spec §4.2). It
// never fails: missing keys yield documented defaults.
package paramoracle

import (
	"strings"

	"github.com/shiftopt/dayplan/internal/domain"
)

// ObjectiveWeights are the four weighted objective terms (spec §4.4).
type ObjectiveWeights struct {
	PrioritySum     float64
	LatenessPenalty float64
	LunchDeviation  float64
	EarlyStartBonus float64
}

// DefaultObjectiveWeights are applied whenever the caller's oracle has no
// opinion about a given weight.
func DefaultObjectiveWeights() ObjectiveWeights {
	return ObjectiveWeights{
		PrioritySum:     100,
		LatenessPenalty: 10,
		LunchDeviation:  1,
		EarlyStartBonus: 0.1,
	}
}

// DefaultTaskDuration is used when a task omits estimatedDuration.
const DefaultTaskDuration domain.Minute = 30

// DefaultAlertAddressTime is used when an alert omits estimatedTimeToAddress.
const DefaultAlertAddressTime domain.Minute = 10

// DefaultPriority is used whenever no numeric or label priority is supplied.
const DefaultPriority = 5

// HighPriorityThreshold is the priority at/above which the early-start
// objective term applies (spec §4.4).
const HighPriorityThreshold = 8

// DefaultPriorityWeights maps the priority-label vocabulary the Normalizer
// accepts for task["initialPriorityScore_text"] to numeric priorities.
func DefaultPriorityWeights() map[string]int {
	return map[string]int{
		"high":   10,
		"medium": 5,
		"low":    1,
	}
}

// Oracle is the read-only dictionary the rest of the core queries. Callers
// supply an implementation; StaticOracle is the zero-configuration default
// and SQLiteOracle is an optional persisted backend (see sqlite.go).
type Oracle interface {
	TaskDefaultDuration() domain.Minute
	AlertDefaultAddressTime() domain.Minute
	PriorityWeight(label string) (weight int, ok bool)
	ObjectiveWeights() ObjectiveWeights
}

// StaticOracle is a small in-memory Oracle backed by fixed values, the
// documented zero-configuration default.
type StaticOracle struct {
	TaskDuration      domain.Minute
	AlertAddressTime  domain.Minute
	PriorityWeightMap map[string]int
	Weights           ObjectiveWeights
}

// NewStaticOracle returns a StaticOracle seeded with the documented defaults.
func NewStaticOracle() *StaticOracle {
	return &StaticOracle{
		TaskDuration:      DefaultTaskDuration,
		AlertAddressTime:  DefaultAlertAddressTime,
		PriorityWeightMap: DefaultPriorityWeights(),
		Weights:           DefaultObjectiveWeights(),
	}
}

func (o *StaticOracle) TaskDefaultDuration() domain.Minute { return o.TaskDuration }

func (o *StaticOracle) AlertDefaultAddressTime() domain.Minute { return o.AlertAddressTime }

func (o *StaticOracle) PriorityWeight(label string) (int, bool) {
	w, ok := o.PriorityWeightMap[strings.ToLower(label)]
	return w, ok
}

func (o *StaticOracle) ObjectiveWeights() ObjectiveWeights { return o.Weights }
