package solver

// splitMix64 is a small, fast, fully deterministic PRNG used only to turn a
// seed into a reproducible shuffle order. It deliberately avoids math/rand
// so that a process-level global seed never leaks into the search: every
// attempt's randomness is derived purely from the caller-visible seed.
type splitMix64 struct{ state uint64 }

func newSplitMix64(seed int64) *splitMix64 { return &splitMix64{state: uint64(seed)} }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
