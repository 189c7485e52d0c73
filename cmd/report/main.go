package main

import (
	"flag"
	"fmt"
	"os"

	"knapsackga/internal/config"
	"knapsackga/internal/knapsack"
	"knapsackga/internal/logging"
)

func main() {
	configPath := flag.String("config", "configs/default.yaml", "path to config file")
	solutionPath := flag.String("solution", "", "path to solution JSON (default: config solution_path)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	path := *solutionPath
	if path == "" {
		path = cfg.Logging.SolutionPath
	}

	saved, err := logging.LoadSolution(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading solution: %v\n", err)
		os.Exit(1)
	}

	// Re-derive the identical problem from the saved generator parameters,
	// falling back to the config for artifacts saved without them.
	size, seed, capacity := saved.ProblemSize, saved.ProblemSeed, saved.Capacity
	if size == 0 {
		size, seed, capacity = cfg.Problem.Size, cfg.Problem.Seed, cfg.Problem.Capacity
	}
	problem := knapsack.Problem{
		Items:    knapsack.Generate(size, seed),
		Capacity: capacity,
	}

	if len(saved.Bits) != problem.Size() {
		fmt.Fprintf(os.Stderr, "Solution has %d bits but the problem has %d items\n",
			len(saved.Bits), problem.Size())
		os.Exit(1)
	}

	fmt.Printf("Loaded solution from %s (solved in %d iterations)\n", path, saved.Iterations)
	fmt.Printf("Problem: %d items (seed=%d), capacity %d\n", size, seed, capacity)
	fmt.Println()

	summary := problem.Summarize(saved.Bits)
	fmt.Println("The items chosen are:")
	for _, i := range summary.Indices {
		fmt.Printf("%v\n", problem.Items[i])
	}
	fmt.Printf("For a total value of %d and a total weight of %d\n",
		summary.TotalValue, summary.TotalWeight)
	fmt.Printf("Fitness: %d", problem.Fitness(saved.Bits))
	if !summary.Feasible(problem.Capacity) {
		fmt.Printf(" (infeasible: weight exceeds capacity %d)", problem.Capacity)
	}
	fmt.Println()
}
