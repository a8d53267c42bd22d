package joystick

import "math/rand"

// Random is a Source that wiggles the stick: each Read is a uniformly random
// raw sample on both axes. Useful for headless soak runs.
type Random struct {
	stick Stick
	rng   *rand.Rand
}

// NewRandom creates a random source over the stick's raw range.
func NewRandom(stick Stick, rng *rand.Rand) *Random {
	return &Random{stick: stick, rng: rng}
}

// Read returns a random reading.
func (r *Random) Read() Reading {
	return Reading{
		X: r.rng.Intn(r.stick.Max + 1),
		Y: r.rng.Intn(r.stick.Max + 1),
	}
}
