package paramoracle

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shiftopt/dayplan/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteOracle is an Oracle backed by a single "rules" table, one row per
// rule name. It is not part of the core: the core only ever sees the Oracle
// interface. This exists so a caller has a concrete, persisted knowledge-base
// accessor to hand the core instead of hard-coding StaticOracle, per spec
// §1's framing of the oracle as an external collaborator reachable only
// through its interface.
//
// Schema:
//
//	CREATE TABLE rules (
//	    name  TEXT NOT NULL,   -- e.g. "priority_weights", "objective_weights"
//	    key   TEXT NOT NULL,   -- e.g. "high", "priority_sum"; "" for scalars
//	    value REAL NOT NULL
//	);
type SQLiteOracle struct {
	db       *sql.DB
	fallback Oracle
}

// OpenSQLiteOracle opens (but does not migrate) the database at path and
// wraps it as an Oracle. Any rule absent from the table falls back to
// StaticOracle's documented defaults, preserving §4.2's "never fails"
// contract even against an empty or partially populated table.
func OpenSQLiteOracle(path string) (*SQLiteOracle, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening parameter oracle database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to parameter oracle database: %w", err)
	}
	return &SQLiteOracle{db: db, fallback: NewStaticOracle()}, nil
}

// Close releases the underlying database handle.
func (o *SQLiteOracle) Close() error { return o.db.Close() }

func (o *SQLiteOracle) scalar(name string) (float64, bool) {
	var v float64
	err := o.db.QueryRow(`SELECT value FROM rules WHERE name = ? AND key = ''`, name).Scan(&v)
	return v, err == nil
}

func (o *SQLiteOracle) TaskDefaultDuration() domain.Minute {
	if v, ok := o.scalar("task_default_duration"); ok {
		return domain.Minute(v)
	}
	return o.fallback.TaskDefaultDuration()
}

func (o *SQLiteOracle) AlertDefaultAddressTime() domain.Minute {
	if v, ok := o.scalar("alert_default_address_time"); ok {
		return domain.Minute(v)
	}
	return o.fallback.AlertDefaultAddressTime()
}

func (o *SQLiteOracle) PriorityWeight(label string) (int, bool) {
	var v float64
	err := o.db.QueryRow(
		`SELECT value FROM rules WHERE name = 'priority_weights' AND key = ?`,
		strings.ToLower(label),
	).Scan(&v)
	if err != nil {
		return o.fallback.PriorityWeight(label)
	}
	return int(v), true
}

func (o *SQLiteOracle) ObjectiveWeights() ObjectiveWeights {
	fallback := o.fallback.ObjectiveWeights()
	weights := fallback

	rows, err := o.db.Query(`SELECT key, value FROM rules WHERE name = 'objective_weights'`)
	if err != nil {
		return fallback
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var val float64
		if err := rows.Scan(&key, &val); err != nil {
			continue
		}
		switch key {
		case "priority_sum":
			weights.PrioritySum = val
		case "lateness_penalty":
			weights.LatenessPenalty = val
		case "lunch_deviation":
			weights.LunchDeviation = val
		case "early_start_bonus":
			weights.EarlyStartBonus = val
		}
	}
	return weights
}
