// Package config loads the optimizer's ambient configuration from the
// environment, optionally via a .env file (spec §2.1), in the teacher's
// convention of a single Load() that a cmd/ entrypoint calls once at
// startup.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/shiftopt/dayplan/internal/domain"
)

// Config is every environment-tunable default the core consults.
type Config struct {
	SolveBudget             time.Duration
	RandomSeed              *int64
	TaskDefaultDuration     domain.Minute
	AlertDefaultAddressTime domain.Minute
	LogUseCases             bool
	ParamOracleSQLitePath   string
}

// Env var names, kept exported so the CLI's help text and tests can refer
// to them by name instead of repeating string literals.
const (
	EnvSolveBudgetMS      = "DAYPLAN_SOLVE_BUDGET_MS"
	EnvRandomSeed         = "DAYPLAN_RANDOM_SEED"
	EnvTaskDefaultMin     = "DAYPLAN_TASK_DEFAULT_DURATION_MIN"
	EnvAlertDefaultMin    = "DAYPLAN_ALERT_DEFAULT_ADDRESS_MIN"
	EnvLogUseCases        = "DAYPLAN_LOG_USECASES"
	EnvParamOracleSQLite  = "DAYPLAN_PARAM_ORACLE_SQLITE"
)

// Load reads a .env file if present (ignoring its absence, per godotenv's
// own convention) and then layers environment variables over the
// documented defaults.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		SolveBudget:             durationMSEnv(EnvSolveBudgetMS, 15*time.Second),
		TaskDefaultDuration:     minuteEnv(EnvTaskDefaultMin, 30),
		AlertDefaultAddressTime: minuteEnv(EnvAlertDefaultMin, 10),
		LogUseCases:             boolEnv(EnvLogUseCases),
		ParamOracleSQLitePath:   os.Getenv(EnvParamOracleSQLite),
	}
	if v, ok := int64Env(EnvRandomSeed); ok {
		cfg.RandomSeed = &v
	}
	return cfg
}

func durationMSEnv(name string, fallback time.Duration) time.Duration {
	v, ok := int64Env(name)
	if !ok {
		return fallback
	}
	return time.Duration(v) * time.Millisecond
}

func minuteEnv(name string, fallback domain.Minute) domain.Minute {
	v, ok := int64Env(name)
	if !ok {
		return fallback
	}
	return domain.Minute(v)
}

func int64Env(name string) (int64, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func boolEnv(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
