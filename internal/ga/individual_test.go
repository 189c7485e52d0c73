package ga_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knapsackga/internal/ga"
	"knapsackga/internal/knapsack"
)

func sampleProblem(size int, capacity int) knapsack.Problem {
	return knapsack.Problem{
		Items:    knapsack.Generate(size, 57),
		Capacity: capacity,
	}
}

func TestRandomIndividual_FeasibleByConstruction(t *testing.T) {
	p := sampleProblem(50, 200)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		ind := ga.RandomIndividual(p, rng)
		require.Len(t, ind, len(p.Items))
		require.LessOrEqual(t, p.Summarize(ind).TotalWeight, p.Capacity)
	}
}

func TestRandomIndividual_ZeroCapacityIsAllFalse(t *testing.T) {
	p := sampleProblem(20, 0)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		for _, bit := range ga.RandomIndividual(p, rng) {
			require.False(t, bit)
		}
	}
}

// The generator stops outright on the first capacity overflow instead of
// skipping the offending item, so nothing past the break point can be set.
func TestRandomIndividual_EarlyTermination(t *testing.T) {
	p := knapsack.Problem{
		// Only item 0 fits on its own; any later item overflows.
		Items: []knapsack.Item{
			{Value: 1, Weight: 5},
			{Value: 1, Weight: 10},
			{Value: 1, Weight: 10},
			{Value: 1, Weight: 10},
		},
		Capacity: 8,
	}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		ind := ga.RandomIndividual(p, rng)
		// At most item 0 may be included, and once any draw overflows the
		// rest of the vector stays false.
		require.False(t, ind[1])
		require.False(t, ind[2])
		require.False(t, ind[3])
	}
}

func TestClone_Independent(t *testing.T) {
	orig := ga.Individual{true, false, true}
	cp := orig.Clone()
	cp[0] = false

	assert.Equal(t, ga.Individual{true, false, true}, orig)
	assert.Equal(t, ga.Individual{false, false, true}, cp)
}

func TestMutate_FlipsExactlyOneBit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	parent := make(ga.Individual, 40)
	for i := range parent {
		parent[i] = i%3 == 0
	}
	snapshot := parent.Clone()

	for i := 0; i < 200; i++ {
		child := ga.Mutate(parent, rng)
		require.Len(t, child, len(parent))

		diffs := 0
		for j := range parent {
			if child[j] != parent[j] {
				diffs++
			}
		}
		require.Equal(t, 1, diffs, "mutation must flip exactly one bit")
		require.Equal(t, snapshot, parent, "mutation must not touch the parent")
	}
}

func TestCrossover_SinglePointBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 32
	p1 := make(ga.Individual, n)
	p2 := make(ga.Individual, n)
	for i := range p1 {
		p1[i] = true
	}

	for i := 0; i < 200; i++ {
		child := ga.Crossover(p1, p2, rng)
		require.Len(t, child, n)

		// With p1 all-true and p2 all-false the child must be a run of
		// trues followed by a run of falses, split at the cut index.
		cut := 0
		for cut < n && child[cut] {
			cut++
		}
		require.Less(t, cut, n, "cut index is drawn below len, so the tail always comes from p2")
		for j := cut; j < n; j++ {
			require.False(t, child[j])
		}
	}
}

func TestCrossover_BitsComeFromParents(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	p := sampleProblem(30, 300)
	p1 := ga.RandomIndividual(p, rng)
	p2 := ga.RandomIndividual(p, rng)

	for i := 0; i < 100; i++ {
		child := ga.Crossover(p1, p2, rng)

		// Locate the cut: the prefix tracks p1, everything after must
		// track p2 bit-for-bit.
		cut := len(child)
		for j := range child {
			if child[j] != p1[j] {
				cut = j
				break
			}
		}
		for j := cut; j < len(child); j++ {
			require.Equal(t, p2[j], child[j])
		}
	}
}
