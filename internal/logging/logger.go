package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"knapsackga/internal/ga"
	"knapsackga/internal/knapsack"
)

// Logger handles all run output and artifact saving
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewLogger creates a new logger
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}

	// Ensure directories exist
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// Init initializes the log files
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"iteration", "best_fitness", "mean_fitness", "best_weight", "feasible",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// IterationSummary holds per-iteration population statistics
type IterationSummary struct {
	Iteration   int     `json:"iteration"`
	BestFitness int     `json:"best_fitness"`
	MeanFitness float64 `json:"mean_fitness"`
	BestWeight  int     `json:"best_weight"`
	Feasible    int     `json:"feasible"`
}

// Summarize computes population statistics for one iteration
func Summarize(iter int, pop ga.Population, prob knapsack.Problem) IterationSummary {
	summary := IterationSummary{Iteration: iter}

	var sumFitness float64
	var best ga.Individual
	for _, ind := range pop {
		fit := prob.Fitness(ind)
		sumFitness += float64(fit)
		if fit > 0 {
			summary.Feasible++
		}
		if best == nil || fit > summary.BestFitness {
			best = ind
			summary.BestFitness = fit
		}
	}
	if len(pop) > 0 {
		summary.MeanFitness = sumFitness / float64(len(pop))
		summary.BestWeight = prob.Summarize(best).TotalWeight
	}
	return summary
}

// LogIteration logs an iteration summary to CSV, JSONL, and the console
func (l *Logger) LogIteration(iter int, pop ga.Population, prob knapsack.Problem) {
	if !l.initialized {
		return
	}

	summary := Summarize(iter, pop, prob)

	row := []string{
		strconv.Itoa(summary.Iteration),
		strconv.Itoa(summary.BestFitness),
		fmt.Sprintf("%.2f", summary.MeanFitness),
		strconv.Itoa(summary.BestWeight),
		strconv.Itoa(summary.Feasible),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	jsonLine, _ := json.Marshal(summary)
	l.jsonFile.WriteString(string(jsonLine) + "\n")

	fmt.Printf("Iter %6d | Best: %5d | Mean: %8.1f | Weight: %4d | Feasible: %d/%d\n",
		summary.Iteration, summary.BestFitness, summary.MeanFitness,
		summary.BestWeight, summary.Feasible, len(pop))
}

// LogTop prints debug info for the top K individuals of a selected
// population (assumes it is freshly sorted, fittest first)
func (l *Logger) LogTop(pop ga.Population, prob knapsack.Problem, k int) {
	if k > len(pop) {
		k = len(pop)
	}
	fmt.Printf("  Top %d individuals:\n", k)
	for i := 0; i < k; i++ {
		s := prob.Summarize(pop[i])
		fmt.Printf("    #%d: Fitness=%d, Weight=%d, Items=%d\n",
			i+1, prob.Fitness(pop[i]), s.TotalWeight, len(s.Indices))
	}
}

// SolutionData is the saved-solution artifact format
type SolutionData struct {
	Bits        []bool `json:"bits"`
	TotalValue  int    `json:"total_value"`
	TotalWeight int    `json:"total_weight"`
	Iterations  int    `json:"iterations"`
	ProblemSize int    `json:"problem_size"`
	ProblemSeed int64  `json:"problem_seed"`
	Capacity    int    `json:"capacity"`
}

// SaveSolution saves a solved individual to a file
func SaveSolution(path string, data SolutionData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}

// LoadSolution loads a saved solution from a file
func LoadSolution(path string) (SolutionData, error) {
	var saved SolutionData

	data, err := os.ReadFile(path)
	if err != nil {
		return saved, err
	}
	if err := json.Unmarshal(data, &saved); err != nil {
		return saved, err
	}

	return saved, nil
}
