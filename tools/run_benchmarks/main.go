// Command run_benchmarks solves every map file in a directory with
// each configured algorithm variant and writes a CSV of results. Each
// file is solved by its own single-threaded solver instance; files run
// concurrently across an errgroup since they share no mutable state.
// A single search is never parallelized — only independent instances
// are. When -metrics-addr is set, every run's StatisticTracker is also
// pushed into a Prometheus Collector served over HTTP, so the batch can
// be scraped while it's still working through the directory.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/elektrokombinacija/mapfm-epea/internal/algo"
	"github.com/elektrokombinacija/mapfm-epea/internal/mapio"
	"github.com/elektrokombinacija/mapfm-epea/internal/metrics"
)

// Result holds one (instance, algorithm) solve outcome.
type Result struct {
	Instance             string
	Algorithm            string
	Agents               int
	Goals                int
	RuntimeMs            float64
	Success              bool
	Cost                 int
	AssignmentsEvaluated int
	AssignmentsSkipped   int
	MaxGroupSize         int
}

var algorithms = []algo.AlgorithmKind{
	algo.ExhaustiveMatching,
	algo.ExhaustiveMatchingSorted,
	algo.ExhaustiveMatchingSortedWithMatchingID,
	algo.HeuristicMatching,
}

func runOne(path string, kind algo.AlgorithmKind, collector *metrics.Collector) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	problem, err := mapio.ReadProblem(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	config := algo.DefaultSolverConfig()
	config.Algorithm = kind
	solver := algo.NewMatchingSolver(problem, config)

	start := time.Now()
	_, cost, ok := solver.Solve()
	elapsed := time.Since(start)
	stats := solver.Stats()

	if collector != nil {
		collector.Observe(stats, elapsed.Seconds())
	}

	return &Result{
		Instance:             filepath.Base(path),
		Algorithm:            string(kind),
		Agents:               len(problem.Starts),
		Goals:                len(problem.Goals),
		RuntimeMs:            float64(elapsed.Microseconds()) / 1000.0,
		Success:              ok,
		Cost:                 cost,
		AssignmentsEvaluated: stats.AssignmentsEvaluated,
		AssignmentsSkipped:   stats.AssignmentsSkipped,
		MaxGroupSize:         stats.MaxGroupSize,
	}, nil
}

func writeCSV(results []*Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{
		"instance", "algorithm", "agents", "goals", "runtime_ms", "success", "cost",
		"assignments_evaluated", "assignments_skipped", "max_group_size",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Instance, r.Algorithm, strconv.Itoa(r.Agents), strconv.Itoa(r.Goals),
			fmt.Sprintf("%.3f", r.RuntimeMs), strconv.FormatBool(r.Success), strconv.Itoa(r.Cost),
			strconv.Itoa(r.AssignmentsEvaluated), strconv.Itoa(r.AssignmentsSkipped), strconv.Itoa(r.MaxGroupSize),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(results []*Result) {
	type agg struct {
		runs, successes int
		totalMs         float64
	}
	byAlgorithm := make(map[string]*agg)
	for _, r := range results {
		a, ok := byAlgorithm[r.Algorithm]
		if !ok {
			a = &agg{}
			byAlgorithm[r.Algorithm] = a
		}
		a.runs++
		if r.Success {
			a.successes++
			a.totalMs += r.RuntimeMs
		}
	}

	var names []string
	for name := range byAlgorithm {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-45s %8s %8s %14s\n", "Algorithm", "Runs", "Solved", "Avg Time(ms)")
	fmt.Println(strings.Repeat("-", 78))
	for _, name := range names {
		a := byAlgorithm[name]
		avg := 0.0
		if a.successes > 0 {
			avg = a.totalMs / float64(a.successes)
		}
		fmt.Printf("%-45s %8d %8d %14.2f\n", name, a.runs, a.successes, avg)
	}
}

func main() {
	inputDir := flag.String("input", "testdata", "Directory containing .map instance files")
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "Output CSV file")
	concurrency := flag.Int("concurrency", runtime.NumCPU(), "Number of instances to solve concurrently")
	metricsAddr := flag.String("metrics-addr", "", "Address to serve Prometheus metrics on while the batch runs (empty disables)")

	flag.Parse()

	var collector *metrics.Collector
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		collector = metrics.NewCollector(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "run_benchmarks: metrics server: %v\n", err)
			}
		}()
	}

	if err := os.MkdirAll(filepath.Dir(*outputFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "run_benchmarks: creating output directory: %v\n", err)
		os.Exit(1)
	}

	files, err := filepath.Glob(filepath.Join(*inputDir, "*.map"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "run_benchmarks: globbing %s: %v\n", *inputDir, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "run_benchmarks: no .map files in %s (run gen_instances first)\n", *inputDir)
		os.Exit(1)
	}

	type job struct {
		path string
		kind algo.AlgorithmKind
	}
	var jobs []job
	for _, f := range files {
		for _, kind := range algorithms {
			jobs = append(jobs, job{path: f, kind: kind})
		}
	}

	var (
		mu      sync.Mutex
		results []*Result
	)
	g := new(errgroup.Group)
	g.SetLimit(*concurrency)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			r, err := runOne(j.path, j.kind, collector)
			if err != nil {
				fmt.Fprintf(os.Stderr, "run_benchmarks: %v\n", err)
				return nil
			}
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "run_benchmarks: %v\n", err)
		os.Exit(1)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Instance != results[j].Instance {
			return results[i].Instance < results[j].Instance
		}
		return results[i].Algorithm < results[j].Algorithm
	})

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "run_benchmarks: writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("results written to: %s\n", *outputFile)

	printSummary(results)
}
