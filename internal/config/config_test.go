package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftopt/dayplan/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, name := range []string{EnvSolveBudgetMS, EnvRandomSeed, EnvTaskDefaultMin, EnvAlertDefaultMin, EnvLogUseCases, EnvParamOracleSQLite} {
		t.Setenv(name, "")
	}
	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.SolveBudget)
	assert.Equal(t, domain.Minute(30), cfg.TaskDefaultDuration)
	assert.Equal(t, domain.Minute(10), cfg.AlertDefaultAddressTime)
	assert.Nil(t, cfg.RandomSeed)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv(EnvSolveBudgetMS, "5000")
	t.Setenv(EnvRandomSeed, "42")
	t.Setenv(EnvTaskDefaultMin, "45")
	t.Setenv(EnvLogUseCases, "true")

	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.SolveBudget)
	require.NotNil(t, cfg.RandomSeed)
	assert.Equal(t, int64(42), *cfg.RandomSeed)
	assert.Equal(t, domain.Minute(45), cfg.TaskDefaultDuration)
	assert.True(t, cfg.LogUseCases)
}
