package ga

import (
	"math/rand"

	"knapsackga/internal/knapsack"
)

// Individual is one candidate solution: a bit per item, true meaning the
// item is included. Individuals are plain values; operators copy, never
// mutate in place.
type Individual []bool

// Clone returns an independent copy of the individual.
func (ind Individual) Clone() Individual {
	out := make(Individual, len(ind))
	copy(out, ind)
	return out
}

// RandomIndividual produces one random candidate for initial seeding. Each
// item gets a fair coin flip in index order; the first flip that would push
// the running weight over capacity stops generation for the whole
// individual, leaving every remaining bit false.
//
// Stopping outright instead of skipping just the offending item biases
// early-indexed items toward inclusion. That is an intentional quirk of
// the heuristic, not a bug: changing it to a per-item skip would alter
// the solution-space coverage. Generated individuals are always feasible
// by construction.
func RandomIndividual(p knapsack.Problem, rng *rand.Rand) Individual {
	ind := make(Individual, len(p.Items))
	weight := 0
	for i := range p.Items {
		if rng.Intn(2) == 1 {
			weight += p.Items[i].Weight
			if weight > p.Capacity {
				break
			}
			ind[i] = true
		}
	}
	return ind
}

// Mutate returns a copy of parent with exactly one bit, chosen uniformly
// over all item indices, flipped. The parent is left untouched. The child
// may be infeasible; fitness scoring handles that downstream.
func Mutate(parent Individual, rng *rand.Rand) Individual {
	child := parent.Clone()
	i := rng.Intn(len(child))
	child[i] = !child[i]
	return child
}

// Crossover returns a single-point crossover child of two equal-length
// parents: a cut index c is drawn uniformly over item indices, bits [0,c)
// come from p1 and bits [c,len) from p2. No feasibility repair.
func Crossover(p1, p2 Individual, rng *rand.Rand) Individual {
	c := rng.Intn(len(p1))
	child := make(Individual, len(p1))
	copy(child[:c], p1[:c])
	copy(child[c:], p2[c:])
	return child
}
