// Package rng provides cheap, dependency-free pseudo-randomness keyed by an
// integer seed. Every function is pure: the same seed always yields the same
// value, which is the contract the workforce generators depend on.
package rng

// Float returns a value in [0,1) derived from seed.
//
// The mix is the SplitMix64 finalizer. It is not cryptographic and makes no
// statistical promises beyond "nearby seeds look uncorrelated", which is all
// synthetic demo data needs. Callers derive distinct seeds per decision point
// (seed+1, seed+2, ...) to avoid correlated sampling across fields.
func Float(seed int64) float64 {
	z := uint64(seed) + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	// Top 53 bits give a uniform float in [0,1).
	return float64(z>>11) / (1 << 53)
}

// IntN returns a value in [0,n) derived from seed. n must be positive.
func IntN(seed int64, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Float(seed) * float64(n))
}

// Range returns a value in [lo,hi) derived from seed.
func Range(seed int64, lo, hi float64) float64 {
	return lo + Float(seed)*(hi-lo)
}

// Chance reports whether the seeded draw falls below p.
func Chance(seed int64, p float64) bool {
	return Float(seed) < p
}
