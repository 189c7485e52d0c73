package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root run configuration
type Config struct {
	Seed    int64         `yaml:"seed"` // solver RNG seed
	Problem ProblemConfig `yaml:"problem"`
	GA      GAConfig      `yaml:"ga"`
	Logging LogConfig     `yaml:"logging"`
}

// ProblemConfig defines the generated sample problem
type ProblemConfig struct {
	Size     int   `yaml:"size"`
	Seed     int64 `yaml:"seed"` // problem generator seed, independent of the solver seed
	Capacity int   `yaml:"capacity"`
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Population int `yaml:"population"`
	Iterations int `yaml:"iterations"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	SummaryEvery int    `yaml:"summary_every"` // log an iteration summary every N iterations
	TopN         int    `yaml:"top_n"`         // final top-N debug dump
	CSVPath      string `yaml:"csv_path"`
	JSONPath     string `yaml:"json_path"`
	SolutionPath string `yaml:"solution_path"`
}

// Load reads a YAML config file and returns a Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Defaults reproduce the reference demo run: 50 random items seeded with
// 57, capacity 500, population 30, 50000 iterations.
func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Problem.Size == 0 {
		cfg.Problem.Size = 50
	}
	if cfg.Problem.Seed == 0 {
		cfg.Problem.Seed = 57
	}
	if cfg.Problem.Capacity == 0 {
		cfg.Problem.Capacity = 500
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 30
	}
	if cfg.GA.Iterations == 0 {
		cfg.GA.Iterations = 50000
	}
	if cfg.Logging.SummaryEvery == 0 {
		cfg.Logging.SummaryEvery = 1000
	}
	if cfg.Logging.TopN == 0 {
		cfg.Logging.TopN = 5
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
	if cfg.Logging.SolutionPath == "" {
		cfg.Logging.SolutionPath = "artifacts/solution.json"
	}
}
