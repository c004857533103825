package paramoracle

import (
	"testing"

	"github.com/shiftopt/dayplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStaticOracle_Defaults(t *testing.T) {
	o := NewStaticOracle()
	assert.Equal(t, DefaultTaskDuration, o.TaskDefaultDuration())
	assert.Equal(t, DefaultAlertAddressTime, o.AlertDefaultAddressTime())
	assert.Equal(t, DefaultObjectiveWeights(), o.ObjectiveWeights())
}

func TestStaticOracle_PriorityWeight(t *testing.T) {
	o := NewStaticOracle()

	w, ok := o.PriorityWeight("High")
	assert.True(t, ok)
	assert.Equal(t, 10, w)

	w, ok = o.PriorityWeight("MEDIUM")
	assert.True(t, ok)
	assert.Equal(t, 5, w)

	_, ok = o.PriorityWeight("nonexistent")
	assert.False(t, ok)
}

func TestStaticOracle_CustomWeights(t *testing.T) {
	o := NewStaticOracle()
	o.TaskDuration = domain.Minute(45)
	o.Weights.LunchDeviation = 2.5

	assert.Equal(t, domain.Minute(45), o.TaskDefaultDuration())
	assert.Equal(t, 2.5, o.ObjectiveWeights().LunchDeviation)
}
