package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knapsackga/internal/knapsack"
)

func testProblem() knapsack.Problem {
	return knapsack.Problem{
		Items: []knapsack.Item{
			{Value: 60, Weight: 10},
			{Value: 100, Weight: 20},
			{Value: 120, Weight: 30},
		},
		Capacity: 50,
	}
}

func TestFitness_FeasibleIsValueSum(t *testing.T) {
	p := testProblem()

	assert.Equal(t, 0, p.Fitness([]bool{false, false, false}))
	assert.Equal(t, 60, p.Fitness([]bool{true, false, false}))
	assert.Equal(t, 160, p.Fitness([]bool{true, true, false}))
	// weight 50 == capacity is still feasible
	assert.Equal(t, 220, p.Fitness([]bool{false, true, true}))
}

func TestFitness_OverCapacityIsZero(t *testing.T) {
	p := testProblem()

	// all three items weigh 60 > 50: hard zero, no partial credit
	assert.Equal(t, 0, p.Fitness([]bool{true, true, true}))

	p.Capacity = 9
	assert.Equal(t, 0, p.Fitness([]bool{true, false, false}))
}

func TestFitness_ZeroCapacity(t *testing.T) {
	p := testProblem()
	p.Capacity = 0

	assert.Equal(t, 0, p.Fitness([]bool{false, false, false}))
	assert.Equal(t, 0, p.Fitness([]bool{false, true, false}))
}

func TestSummarize(t *testing.T) {
	p := testProblem()

	s := p.Summarize([]bool{false, true, true})
	assert.Equal(t, []int{1, 2}, s.Indices)
	assert.Equal(t, 220, s.TotalValue)
	assert.Equal(t, 50, s.TotalWeight)
	assert.True(t, s.Feasible(p.Capacity))

	s = p.Summarize([]bool{true, true, true})
	assert.Equal(t, 60, s.TotalWeight)
	assert.False(t, s.Feasible(p.Capacity))

	s = p.Summarize([]bool{false, false, false})
	assert.Empty(t, s.Indices)
	assert.Equal(t, 0, s.TotalValue)
	assert.Equal(t, 0, s.TotalWeight)
}

func TestItemString(t *testing.T) {
	it := knapsack.Item{Value: 60, Weight: 10}
	assert.Equal(t, "{value: 60, weight: 10}", it.String())
}

func TestGenerate_Deterministic(t *testing.T) {
	a := knapsack.Generate(50, 57)
	b := knapsack.Generate(50, 57)
	require.Len(t, a, 50)
	assert.Equal(t, a, b)

	c := knapsack.Generate(50, 58)
	assert.NotEqual(t, a, c, "different seeds should produce different items")
}

func TestGenerate_ValuesInRange(t *testing.T) {
	for _, item := range knapsack.Generate(500, 1) {
		require.GreaterOrEqual(t, item.Value, 1)
		require.LessOrEqual(t, item.Value, 100)
		require.GreaterOrEqual(t, item.Weight, 1)
		require.LessOrEqual(t, item.Weight, 100)
	}
}
