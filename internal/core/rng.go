package core

// RNG is a deterministic pseudo-random number generator (64-bit LCG).
// Outputs are taken from the high bits, which have the longest period.
type RNG struct {
	state uint64
}

// NewRNG creates a generator for the given seed. Seed 0 is mapped to 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next raw 31-bit value.
func (r *RNG) Next() uint32 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return uint32(r.state >> 33) //#nosec G115 -- shifted into 31 bits
}

// Intn returns a value in [0, n). Non-positive n yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n)) //#nosec G115 -- n is positive
}

// Range returns a value in [lo, hi], both ends inclusive.
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()) / float64(1<<31)
}
