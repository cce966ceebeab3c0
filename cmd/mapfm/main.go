// Command mapfm solves a single MAPFM problem read from a map file and
// prints the resulting path set.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/elektrokombinacija/mapfm-epea/internal/algo"
	"github.com/elektrokombinacija/mapfm-epea/internal/mapio"
)

// CLI is the full set of flags mapfm accepts. Config lets a user pin
// defaults (algorithm, independence-detection, shuffle) in a YAML file
// instead of repeating them on every invocation. The solver-tuning
// flags have no kong default and stay nil unless the user passes them,
// so loadConfig can tell "not given" apart from "given as the zero
// value" and let explicit flags win over the config file, which in
// turn wins over algo.DefaultSolverConfig.
type CLI struct {
	Map                   string `arg:"" help:"Path to a MAPFM map file." type:"existingfile"`
	Config                string `help:"Optional YAML config file with solver defaults." type:"path"`
	Algorithm             string `help:"Matching algorithm: exhaustive_matching, exhaustive_matching_sorted, exhaustive_matching_sorted_with_matching_id, heuristic_matching."`
	IndependenceDetection *bool  `help:"Enable Independence Detection decomposition."`
	Shuffle               *bool  `help:"Shuffle assignment order before queueing when the queue limit is below the assignment count."`
	QueueLimit            *int   `help:"Cap on goal assignments held in the sorted priority queue at once (0 = unbounded)."`
	Verbose               bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Description("Optimal solver for Multi-Agent Path Finding with Matching."))

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	config, err := loadConfig(cli)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}

	f, err := os.Open(cli.Map)
	if err != nil {
		logger.Fatal("opening map file", "err", err)
	}
	defer f.Close()

	problem, err := mapio.ReadProblem(f)
	if err != nil {
		logger.Fatal("parsing map file", "err", err)
	}
	logger.Info("loaded problem", "agents", len(problem.Starts), "goals", len(problem.Goals),
		"width", problem.Width, "height", problem.Height)

	solver := algo.NewMatchingSolver(problem, config)

	start := time.Now()
	paths, cost, ok := solver.Solve()
	elapsed := time.Since(start)

	stats := solver.Stats()
	logger.Info("search finished", "elapsed", elapsed, "assignments_evaluated", stats.AssignmentsEvaluated,
		"assignments_skipped", stats.AssignmentsSkipped, "max_group_size", stats.MaxGroupSize)

	if !ok {
		logger.Warn("no solution found")
		os.Exit(1)
	}

	fmt.Printf("cost %d\n", cost)
	for _, p := range paths {
		fmt.Printf("agent %d:", p.Identifier)
		for _, c := range p.Cells {
			fmt.Printf(" (%d,%d)", c.X, c.Y)
		}
		fmt.Println()
	}
}

// loadConfig merges a YAML config file (if given) under the CLI flags,
// so unset flags fall back to the file and the file falls back to the
// algorithm package's own defaults.
func loadConfig(cli CLI) (algo.SolverConfig, error) {
	config := algo.DefaultSolverConfig()

	if cli.Config != "" {
		v := viper.New()
		v.SetConfigFile(cli.Config)
		if err := v.ReadInConfig(); err != nil {
			return config, fmt.Errorf("reading %s: %w", cli.Config, err)
		}
		if v.IsSet("algorithm") {
			config.Algorithm = algo.AlgorithmKind(v.GetString("algorithm"))
		}
		if v.IsSet("independence_detection") {
			config.IndependenceDetection = v.GetBool("independence_detection")
		}
		if v.IsSet("shuffle") {
			config.Shuffle = v.GetBool("shuffle")
		}
		if v.IsSet("queue_limit") {
			config.QueueLimit = v.GetInt("queue_limit")
		}
	}

	if cli.Algorithm != "" {
		config.Algorithm = algo.AlgorithmKind(cli.Algorithm)
	}
	if cli.IndependenceDetection != nil {
		config.IndependenceDetection = *cli.IndependenceDetection
	}
	if cli.Shuffle != nil {
		config.Shuffle = *cli.Shuffle
	}
	if cli.QueueLimit != nil {
		config.QueueLimit = *cli.QueueLimit
	}

	return config, nil
}

