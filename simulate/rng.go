// Package simulate - deterministic RNG construction.
//
// One factory, no time-based sources: same seed ⇒ identical run on every
// platform. math/rand.Rand is not goroutine-safe, but a run is single-threaded
// by contract, so a single stream per run suffices.
package simulate

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
