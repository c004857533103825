// Command dayplan is the terminal entry point for the daily schedule
// optimizer core, wiring config, the parameter oracle, and the use case
// the way the teacher's cmd/kairos wires its own repositories and services.
package main

import (
	"fmt"
	"os"

	"github.com/shiftopt/dayplan/internal/cli"
	"github.com/shiftopt/dayplan/internal/config"
	"github.com/shiftopt/dayplan/internal/paramoracle"
	"github.com/shiftopt/dayplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	oracle, err := buildOracle(cfg)
	if err != nil {
		return err
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	svc := service.NewOptimizeService(oracle, cfg.SolveBudget, cfg.RandomSeed, observer)

	root := cli.NewRootCommand(svc)
	return root.Execute()
}

// buildOracle opens the optional SQLite-backed parameter oracle when
// DAYPLAN_PARAM_ORACLE_SQLITE is set, falling back to the zero-configuration
// StaticOracle otherwise.
func buildOracle(cfg config.Config) (paramoracle.Oracle, error) {
	if cfg.ParamOracleSQLitePath == "" {
		static := paramoracle.NewStaticOracle()
		static.TaskDuration = cfg.TaskDefaultDuration
		static.AlertAddressTime = cfg.AlertDefaultAddressTime
		return static, nil
	}
	return paramoracle.OpenSQLiteOracle(cfg.ParamOracleSQLitePath)
}
