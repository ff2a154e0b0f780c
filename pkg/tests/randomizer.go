package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Int63   func() int64
	Float64 func() float64
	Bool    func() bool
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Int63:   random.Int63,
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
	}
}
