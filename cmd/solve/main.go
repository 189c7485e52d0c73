package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"knapsackga/internal/config"
	"knapsackga/internal/ga"
	"knapsackga/internal/knapsack"
	"knapsackga/internal/logging"
)

func main() {
	configPath := flag.String("config", "configs/default.yaml", "path to config file")
	iterations := flag.Int("iterations", 0, "iteration budget (0 = use config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *iterations > 0 {
		cfg.GA.Iterations = *iterations
	}

	fmt.Println("Knapsack GA Solver")
	fmt.Printf("Config: %s\n", *configPath)
	fmt.Printf("Problem: %d items (seed=%d), capacity %d\n",
		cfg.Problem.Size, cfg.Problem.Seed, cfg.Problem.Capacity)
	fmt.Printf("Population: %d, Iterations: %d, Seed: %d\n",
		cfg.GA.Population, cfg.GA.Iterations, cfg.Seed)
	fmt.Println("---")

	problem := knapsack.Problem{
		Items:    knapsack.Generate(cfg.Problem.Size, cfg.Problem.Seed),
		Capacity: cfg.Problem.Capacity,
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	solver, err := ga.NewSolver(problem, cfg.GA.Population, cfg.GA.Iterations, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating solver: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	var lastGen ga.Population
	solver.OnIteration = func(iter int, pop ga.Population) {
		lastGen = pop
		if cfg.Logging.SummaryEvery > 0 && iter%cfg.Logging.SummaryEvery == 0 {
			logger.LogIteration(iter, pop, problem)
		}
	}

	startTime := time.Now()
	solution := solver.Solve()
	elapsed := time.Since(startTime)

	fmt.Println("---")
	fmt.Printf("Solve complete! %d iterations in %v\n", cfg.GA.Iterations, elapsed)
	if cfg.Logging.TopN > 0 && lastGen != nil {
		logger.LogTop(lastGen, problem, cfg.Logging.TopN)
	}

	printReport(problem, solution)

	summary := problem.Summarize(solution)
	data := logging.SolutionData{
		Bits:        solution,
		TotalValue:  summary.TotalValue,
		TotalWeight: summary.TotalWeight,
		Iterations:  cfg.GA.Iterations,
		ProblemSize: cfg.Problem.Size,
		ProblemSeed: cfg.Problem.Seed,
		Capacity:    cfg.Problem.Capacity,
	}
	if err := logging.SaveSolution(cfg.Logging.SolutionPath, data); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save solution: %v\n", err)
	} else {
		fmt.Printf("Solution saved to %s\n", cfg.Logging.SolutionPath)
	}
}

// printReport prints the full item set, the chosen items, and their totals
func printReport(problem knapsack.Problem, solution ga.Individual) {
	fmt.Println("Initial item set:")
	for _, item := range problem.Items {
		fmt.Printf("%v\n", item)
	}

	fmt.Println("\nThe items chosen are:")
	summary := problem.Summarize(solution)
	for _, i := range summary.Indices {
		fmt.Printf("%v\n", problem.Items[i])
	}
	fmt.Printf("For a total value of %d and a total weight of %d\n",
		summary.TotalValue, summary.TotalWeight)
}
