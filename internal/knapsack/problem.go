package knapsack

import "fmt"

// Item is one thing that can go into the knapsack. Value and Weight are
// fixed at problem construction and never change afterwards.
type Item struct {
	Value  int `json:"value"`
	Weight int `json:"weight"`
}

func (it Item) String() string {
	return fmt.Sprintf("{value: %d, weight: %d}", it.Value, it.Weight)
}

// Problem is a 0/1 knapsack instance: a fixed item list and a capacity.
type Problem struct {
	Items    []Item
	Capacity int
}

// Size returns the number of items, which is also the length every
// candidate bit-vector must have.
func (p Problem) Size() int {
	return len(p.Items)
}

// Fitness scores a candidate selection. The score is the sum of the values
// of the included items, forced to exactly 0 when their combined weight
// exceeds the capacity. Infeasibility is a hard penalty: no partial credit,
// no repair.
func (p Problem) Fitness(bits []bool) int {
	fit := 0
	weight := 0
	for i, item := range p.Items {
		if bits[i] {
			fit += item.Value
			weight += item.Weight
		}
	}
	if weight > p.Capacity {
		fit = 0
	}
	return fit
}

// Summary describes one selection for reporting: which items were chosen
// and what they add up to.
type Summary struct {
	Indices     []int `json:"indices"`
	TotalValue  int   `json:"total_value"`
	TotalWeight int   `json:"total_weight"`
}

// Feasible reports whether the summarized selection fits the capacity.
func (s Summary) Feasible(capacity int) bool {
	return s.TotalWeight <= capacity
}

// Summarize tallies a selection without scoring it. Read-only consumer of
// the problem and the bit-vector.
func (p Problem) Summarize(bits []bool) Summary {
	s := Summary{Indices: make([]int, 0, len(bits))}
	for i, item := range p.Items {
		if bits[i] {
			s.Indices = append(s.Indices, i)
			s.TotalValue += item.Value
			s.TotalWeight += item.Weight
		}
	}
	return s
}
