package world

// Rand is the random source consumed by generation.
// *rand.Rand satisfies it; tests can inject scripted sequences.
type Rand interface {
	Intn(n int) int
}

// coinFlip reports heads on a fair coin.
func coinFlip(rng Rand) bool {
	return rng.Intn(2) == 0
}
