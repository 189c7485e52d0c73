package ga

import (
	"math/rand"
	"sort"

	"knapsackga/internal/knapsack"
)

// Solver runs the genetic algorithm over a fixed knapsack problem. The
// problem, population size and iteration budget are set once at
// construction; only the current generation and the RNG stream mutate
// between iterations.
//
// The solver is single-threaded and owns its RNG for the duration of a run:
// seed it deterministically when reproducibility matters, and do not share
// one rand.Rand across concurrent solvers.
type Solver struct {
	problem       knapsack.Problem
	popSize       int
	maxIterations int
	rng           *rand.Rand

	generation Population

	// OnIteration, when set, is called after each breed+select round with
	// the freshly selected generation. Purely observational.
	OnIteration func(iter int, pop Population)
}

// NewSolver validates the inputs and builds a solver. Malformed parameters
// are construction-time errors, never mid-run faults: every operation after
// a successful construction is total.
func NewSolver(problem knapsack.Problem, popSize, maxIterations int, rng *rand.Rand) (*Solver, error) {
	if len(problem.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range problem.Items {
		if item.Value < 0 || item.Weight < 0 {
			return nil, ErrNegativeItem
		}
	}
	if problem.Capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if popSize < 1 {
		return nil, ErrPopulationSize
	}
	if maxIterations < 0 {
		return nil, ErrIterations
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	return &Solver{
		problem:       problem,
		popSize:       popSize,
		maxIterations: maxIterations,
		rng:           rng,
	}, nil
}

// Problem returns the immutable problem instance the solver was built for.
func (s *Solver) Problem() knapsack.Problem {
	return s.problem
}

// Breed expands a generation to three times its size in two phases: the
// whole input population is carried forward unchanged, then every input
// individual contributes one mutant and one crossover child. The crossover
// partner is drawn uniformly from the same input population, so an
// individual may be crossed with itself.
func (s *Solver) Breed(pop Population) Population {
	next := make(Population, 0, len(pop)*3)
	next = append(next, pop...)
	for _, ind := range pop {
		next = append(next, Mutate(ind, s.rng))
		next = append(next, Crossover(ind, pop[s.rng.Intn(len(pop))], s.rng))
	}
	return next
}

// NaturalSelection truncates an expanded population back down to the
// configured size, keeping the fittest. Fitness is computed once per
// individual, then the population is stable-sorted descending: equal
// scores keep their breeding order (carried originals ahead of mutants
// ahead of crossover children), which keeps fixed-seed runs bit-for-bit
// reproducible.
func (s *Solver) NaturalSelection(pop Population) Population {
	type scored struct {
		ind     Individual
		fitness int
	}
	ranked := make([]scored, len(pop))
	for i, ind := range pop {
		ranked[i] = scored{ind: ind, fitness: s.problem.Fitness(ind)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].fitness > ranked[j].fitness
	})

	kept := make(Population, s.popSize)
	for i := range kept {
		kept[i] = ranked[i].ind
	}
	return kept
}

// Solve runs the full algorithm: seed an initial generation, then breed and
// select for the fixed iteration budget, returning the fittest individual
// of the terminal generation. There is no early stopping; the budget is
// always spent.
func (s *Solver) Solve() Individual {
	s.generation = NewPopulation(s.problem, s.popSize, s.rng)
	for i := 0; i < s.maxIterations; i++ {
		expanded := s.Breed(s.generation)
		s.generation = s.NaturalSelection(expanded)
		if s.OnIteration != nil {
			s.OnIteration(i+1, s.generation)
		}
	}
	return s.generation.Best(s.problem)
}
