package domain

// Minute is an integer offset in minutes from midnight, in [0, 1440]. All
// time arithmetic in the core happens in this domain; the Time Codec is the
// only place wall-clock strings are parsed or formatted.
type Minute int

const MinutesPerDay Minute = 1440

// Activity is the normalized representation every heterogeneous input
// category collapses into (spec §3). It is built once by the Normalizer,
// bound to solver variables by the Model Builder, and read once by the
// Projector; nothing mutates an Activity after normalization except the
// Model Builder's variable bindings.
type Activity struct {
	ID       string
	Kind     ActivityKind
	Duration Minute // > 0, immutable once normalized

	Priority int // higher = more important; default 5

	FixedStart *Minute // if set, start is pinned
	Deadline   *Minute // if set, start+duration <= deadline

	Location string // only consulted when a TravelMatrix is supplied

	Title   string
	Details string
}

// IsFixed reports whether the activity's start is pinned by the caller.
func (a Activity) IsFixed() bool {
	return a.FixedStart != nil
}

// HasDeadline reports whether the activity carries a hard completion deadline.
func (a Activity) HasDeadline() bool {
	return a.Deadline != nil
}

// ShiftWindow is the worker's bounding interval for the day. ShiftEnd must
// be strictly greater than ShiftStart.
type ShiftWindow struct {
	Start Minute
	End   Minute
}

// Duration returns the length of the shift in minutes.
func (w ShiftWindow) Duration() Minute {
	return w.End - w.Start
}

// Valid reports whether the window is well-formed.
func (w ShiftWindow) Valid() bool {
	return w.End > w.Start && w.Start >= 0 && w.End <= MinutesPerDay
}

// BlockedInterval is a mandatory non-work interval (training, meetings the
// nurse cannot be scheduled against). Zero-length blocks are dropped by the
// Normalizer before they reach the Model Builder.
type BlockedInterval struct {
	Start  Minute
	End    Minute
	Reason string
}

// Duration returns the length of the block in minutes.
func (b BlockedInterval) Duration() Minute {
	return b.End - b.Start
}

// LunchConfig describes the caller's preferred lunch placement.
type LunchConfig struct {
	PreferredStart Minute
	Duration       Minute
}

// TravelMatrix maps an ordered pair of location names to a travel time in
// minutes. A missing entry is treated as zero travel time; the matrix may be
// asymmetric (A->B need not equal B->A).
type TravelMatrix map[LocationPair]Minute

// LocationPair is the (from, to) key into a TravelMatrix.
type LocationPair struct {
	From string
	To   string
}

// Lookup returns the travel time between two locations, or 0 if unspecified.
func (m TravelMatrix) Lookup(from, to string) Minute {
	if m == nil {
		return 0
	}
	return m[LocationPair{From: from, To: to}]
}
