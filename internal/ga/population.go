package ga

import (
	"math/rand"

	"knapsackga/internal/knapsack"
)

// Population is one generation of candidate solutions. Order only matters
// right after selection, when index 0 holds the fittest individual.
type Population []Individual

// NewPopulation seeds a population of the given size with independently
// generated random individuals. Duplicates are allowed.
func NewPopulation(p knapsack.Problem, size int, rng *rand.Rand) Population {
	pop := make(Population, size)
	for i := range pop {
		pop[i] = RandomIndividual(p, rng)
	}
	return pop
}

// Best returns the individual with the highest fitness by linear scan.
func (pop Population) Best(p knapsack.Problem) Individual {
	if len(pop) == 0 {
		return nil
	}
	best := pop[0]
	bestFit := p.Fitness(best)
	for _, ind := range pop[1:] {
		if fit := p.Fitness(ind); fit > bestFit {
			best = ind
			bestFit = fit
		}
	}
	return best
}
