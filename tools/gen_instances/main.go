// Command gen_instances generates random MAPFM map files for
// benchmarking. Generation is deterministic given the same seed.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
	"github.com/elektrokombinacija/mapfm-epea/internal/mapio"
)

// InstanceParams defines the parameters for a single generated
// instance.
type InstanceParams struct {
	Seed        int64
	Width       int
	Height      int
	NumColors   int
	AgentsPer   int // agents (and goals) generated per color
	WallDensity float64
}

// generateInstance builds a random MAPFM problem from params. Each cell
// is a wall with probability WallDensity; starts and goals are placed
// on distinct non-wall cells; if the grid
// is too small to fit every requested agent/goal, it places as many as
// will fit.
func generateInstance(params InstanceParams) *core.Problem {
	rng := rand.New(rand.NewSource(params.Seed))

	wall := make([][]bool, params.Height)
	for y := range wall {
		wall[y] = make([]bool, params.Width)
		for x := range wall[y] {
			wall[y][x] = rng.Float64() < params.WallDensity
		}
	}

	free := make([]core.Coordinate, 0, params.Width*params.Height)
	for y := 0; y < params.Height; y++ {
		for x := 0; x < params.Width; x++ {
			if !wall[y][x] {
				free = append(free, core.Coordinate{X: x, Y: y})
			}
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	needed := params.NumColors * params.AgentsPer * 2 // starts + goals
	if needed > len(free) {
		needed = len(free)
	}
	pool := free[:needed]

	var starts, goals []core.MarkedLocation
	idx := 0
	for color := 0; color < params.NumColors; color++ {
		for i := 0; i < params.AgentsPer && idx < len(pool); i++ {
			starts = append(starts, core.MarkedLocation{X: pool[idx].X, Y: pool[idx].Y, Color: color})
			idx++
		}
	}
	for color := 0; color < params.NumColors; color++ {
		for i := 0; i < params.AgentsPer && idx < len(pool); i++ {
			goals = append(goals, core.MarkedLocation{X: pool[idx].X, Y: pool[idx].Y, Color: color})
			idx++
		}
	}

	return core.NewProblem(params.Width, params.Height, wall, starts, goals)
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	width := flag.Int("width", 12, "Grid width")
	height := flag.Int("height", 12, "Grid height")
	numColors := flag.Int("colors", 3, "Number of distinct agent/goal colors")
	agentsPer := flag.Int("agents-per-color", 2, "Agents (and goals) generated per color")
	wallDensity := flag.Float64("wall-density", 0.1, "Fraction of cells that are walls")
	count := flag.Int("count", 1, "Number of instances to generate")
	outputDir := flag.String("output", "testdata", "Output directory")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "gen_instances: creating output directory: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		params := InstanceParams{
			Seed:        *seed + int64(i),
			Width:       *width,
			Height:      *height,
			NumColors:   *numColors,
			AgentsPer:   *agentsPer,
			WallDensity: *wallDensity,
		}
		problem := generateInstance(params)

		name := fmt.Sprintf("mapfm_%dx%d_c%d_a%d_%d.map", params.Width, params.Height, params.NumColors, params.AgentsPer, params.Seed)
		path := filepath.Join(*outputDir, name)

		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gen_instances: creating %s: %v\n", path, err)
			continue
		}
		err = mapio.WriteProblem(f, problem)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "gen_instances: writing %s: %v\n", path, err)
			continue
		}

		fmt.Printf("generated %s (%d starts, %d goals, %dx%d grid)\n",
			path, len(problem.Starts), len(problem.Goals), params.Width, params.Height)
	}
}
