package domain

import "errors"

// Sentinel errors matching the §7 error taxonomy. Normalizer and Model
// Builder code wraps these with item-specific context; callers compare with
// errors.Is against the sentinel.
var (
	ErrBadTimeFormat         = errors.New("bad time format")
	ErrMissingIdentifier     = errors.New("missing identifier")
	ErrInfeasible            = errors.New("infeasible")
	ErrTimeoutNoSolution     = errors.New("timeout with no incumbent solution")
	ErrDeadlinePast          = errors.New("deadline already past")
	ErrFixedTimeOutsideShift = errors.New("fixed time outside shift window")
	ErrFixedTimeClashesBlock = errors.New("fixed time clashes with a blocked interval")
)
