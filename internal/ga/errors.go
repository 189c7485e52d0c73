package ga

import "errors"

var (
	// ErrNoItems indicates the problem has an empty item list.
	ErrNoItems = errors.New("ga: problem must have at least one item")
	// ErrNegativeItem indicates an item with a negative value or weight.
	ErrNegativeItem = errors.New("ga: item values and weights must be non-negative")
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("ga: capacity must be non-negative")
	// ErrPopulationSize indicates a population size below one.
	ErrPopulationSize = errors.New("ga: population size must be at least 1")
	// ErrIterations indicates a negative iteration budget.
	ErrIterations = errors.New("ga: max iterations must be non-negative")
	// ErrNilRand indicates no random source was supplied.
	ErrNilRand = errors.New("ga: random source must not be nil")
)
