package field

import "math/rand"

// RandomOffset draws a reproducible mask offset from a source seeded with
// the given value. Each call with the same seed yields the same pair; the
// generator is local, so no global random state is disturbed.
func RandomOffset(maxOffset float64, seed int64) (dx, dy float64) {
	rng := rand.New(rand.NewSource(seed))
	return RandomOffsetFrom(rng, maxOffset)
}

// RandomOffsetFrom draws two independent uniform values in
// [-maxOffset, maxOffset] from the caller's source.
func RandomOffsetFrom(rng *rand.Rand, maxOffset float64) (dx, dy float64) {
	dx = (rng.Float64()*2 - 1) * maxOffset
	dy = (rng.Float64()*2 - 1) * maxOffset
	return dx, dy
}
