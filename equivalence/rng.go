package equivalence

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
// seed==0 falls back to defaultSeed, matching the teacher's policy of
// never silently seeding from wall-clock time.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}
