// Package cpmodel is the Model Builder (spec §4.4): it turns a
// normalizer.Result into interval variables, presence booleans, and a
// constraint/objective description the Solver Driver searches over.
//
// The vocabulary — domains, interval variables, presence, NoOverlap — is
// grounded on the finite-domain constraint machinery in
// gokando's minikanren package (its FDVariable/Cumulative pair), adapted
// here to the much narrower shape this problem needs: unit-capacity
// disjunctive scheduling instead of a general resource profile, so the
// model is a plain struct the Solver Driver's local search reads directly
// (mutating only its own Candidates) rather than a propagation engine with a fixed-point
// loop.
package cpmodel

import (
	"fmt"

	"github.com/shiftopt/dayplan/internal/app"
	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/shiftopt/dayplan/internal/normalizer"
	"github.com/shiftopt/dayplan/internal/paramoracle"
)

// ActivityVar is one activity's interval variable: its start-time domain
// collapses to a single point when Fixed, and its presence is forced true
// unless Optional lets the Solver Driver drop it.
type ActivityVar struct {
	Activity domain.Activity

	// DomainStart/DomainEnd bound the activity's start time: the activity
	// may start anywhere in [DomainStart, DomainEnd]. For a fixed-start
	// activity these collapse to the same value.
	DomainStart domain.Minute
	DomainEnd   domain.Minute

	Fixed    bool
	Optional bool
}

// LatestStart is the domain's upper bound, restated for readability at call
// sites that reason about slack.
func (v ActivityVar) LatestStart() domain.Minute { return v.DomainEnd }

// Model is the built constraint problem: one interval variable per
// activity, the lunch interval, the fixed blocked intervals, and the
// travel/objective data the Solver Driver needs without re-deriving it.
type Model struct {
	Shift domain.ShiftWindow

	Lunch    domain.LunchConfig
	HasLunch bool

	Blocks []domain.BlockedInterval
	Travel domain.TravelMatrix

	Activities []ActivityVar

	Weights       paramoracle.ObjectiveWeights
	RelaxOptional bool
}

// mandatoryKinds never get a free presence boolean even under relax_optional
// mode: alerts are modeled as always-present because deferring them has no
// safe reading (spec §4.4).
var mandatoryKinds = map[domain.ActivityKind]bool{
	domain.KindAlert:      true,
	domain.KindVitalAlert: true,
}

// Build constructs a Model from a normalized request. It returns any
// activities it further rejects as unplaceable on domain grounds alone
// (duration longer than the entire shift), which the caller should fold
// into the same unachievable-items list the Normalizer produced.
func Build(res *normalizer.Result, oracle paramoracle.Oracle) (*Model, []app.UnachievableItem, error) {
	if !res.Shift.Valid() {
		return nil, nil, fmt.Errorf("%w: empty or invalid shift window", domain.ErrBadTimeFormat)
	}

	m := &Model{
		Shift:         res.Shift,
		Blocks:        res.Blocks,
		Travel:        res.Travel,
		Weights:       oracle.ObjectiveWeights(),
		RelaxOptional: res.RelaxOptional,
	}
	if res.Lunch.Duration > 0 {
		m.Lunch = res.Lunch
		m.HasLunch = true
	}

	var rejected []app.UnachievableItem
	vars := make([]ActivityVar, 0, len(res.Activities))

	for _, a := range res.Activities {
		if a.IsFixed() {
			vars = append(vars, ActivityVar{
				Activity:    a,
				DomainStart: *a.FixedStart,
				DomainEnd:   *a.FixedStart,
				Fixed:       true,
			})
			continue
		}

		latestStart := res.Shift.End - a.Duration
		if latestStart < res.Shift.Start {
			rejected = append(rejected, app.NewUnachievableItem(a.ID, string(a.Kind), domain.ReasonInfeasible))
			continue
		}

		vars = append(vars, ActivityVar{
			Activity:    a,
			DomainStart: res.Shift.Start,
			DomainEnd:   latestStart,
			Fixed:       false,
			Optional:    res.RelaxOptional && !mandatoryKinds[a.Kind],
		})
	}

	m.Activities = vars
	return m, rejected, nil
}

// End returns an activity's fixed end time; only meaningful for Fixed vars
// or after the Solver Driver has assigned a start.
func (v ActivityVar) End(start domain.Minute) domain.Minute { return start + v.Activity.Duration }
