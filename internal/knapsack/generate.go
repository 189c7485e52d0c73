package knapsack

import "math/rand"

const (
	genMin = 1
	genMax = 100
)

// Generate builds a random sample problem of the given size. Values and
// weights are drawn uniformly from [1,100]. The generator owns its own RNG
// seeded from the argument, so the same (size, seed) pair always yields the
// same item list regardless of any solver randomness.
func Generate(size int, seed int64) []Item {
	rng := rand.New(rand.NewSource(seed))
	items := make([]Item, size)
	for i := range items {
		items[i] = Item{
			Value:  genMin + rng.Intn(genMax-genMin+1),
			Weight: genMin + rng.Intn(genMax-genMin+1),
		}
	}
	return items
}
