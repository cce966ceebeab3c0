// Package mapio reads and writes the plain-text map file format
// describing a MAPFM problem: a width/height header, a '.'/'@'
// occupancy grid, an agent count, one "x y color" line per start, a
// blank separator, and one "x y color" line per goal. This is
// intentionally thin — it has no business validating agent/goal color
// balance or connectivity, only parsing the wire format.
package mapio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/mapfm-epea/internal/core"
)

// ReadProblem parses the map file format from r.
func ReadProblem(r io.Reader) (*core.Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, err := nextLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("mapio: reading header: %w", err)
	}
	width, height, err := parseDims(header)
	if err != nil {
		return nil, err
	}

	wall := make([][]bool, height)
	for y := 0; y < height; y++ {
		row, err := nextLine(scanner)
		if err != nil {
			return nil, fmt.Errorf("mapio: reading grid row %d: %w", y, err)
		}
		if len(row) < width {
			return nil, fmt.Errorf("mapio: grid row %d shorter than width %d", y, width)
		}
		wall[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			wall[y][x] = row[x] == '@'
		}
	}

	countLine, err := nextLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("mapio: reading agent count: %w", err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil {
		return nil, fmt.Errorf("mapio: invalid agent count %q: %w", countLine, err)
	}

	starts, err := readLocations(scanner, count)
	if err != nil {
		return nil, fmt.Errorf("mapio: reading starts: %w", err)
	}

	if _, err := nextLine(scanner); err != nil && err != io.EOF {
		return nil, fmt.Errorf("mapio: reading separator: %w", err)
	}

	goals, err := readLocations(scanner, count)
	if err != nil {
		return nil, fmt.Errorf("mapio: reading goals: %w", err)
	}

	return core.NewProblem(width, height, wall, starts, goals), nil
}

// WriteProblem serializes p in the same format ReadProblem accepts.
func WriteProblem(w io.Writer, p *core.Problem) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", p.Width, p.Height); err != nil {
		return err
	}
	for y := 0; y < p.Height; y++ {
		row := make([]byte, p.Width)
		for x := 0; x < p.Width; x++ {
			if p.Wall[y][x] {
				row[x] = '@'
			} else {
				row[x] = '.'
			}
		}
		if _, err := fmt.Fprintln(bw, string(row)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, len(p.Starts)); err != nil {
		return err
	}
	for _, s := range p.Starts {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", s.X, s.Y, s.Color); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}
	for _, g := range p.Goals {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", g.X, g.Y, g.Color); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func parseDims(line string) (width, height int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("mapio: expected 'width height', got %q", line)
	}
	width, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("mapio: invalid width %q: %w", fields[0], err)
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("mapio: invalid height %q: %w", fields[1], err)
	}
	return width, height, nil
}

func readLocations(scanner *bufio.Scanner, count int) ([]core.MarkedLocation, error) {
	locations := make([]core.MarkedLocation, count)
	for i := 0; i < count; i++ {
		line, err := nextLine(scanner)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("expected 'x y color', got %q", line)
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid x %q: %w", fields[0], err)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid y %q: %w", fields[1], err)
		}
		color, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", fields[2], err)
		}
		locations[i] = core.MarkedLocation{X: x, Y: y, Color: color}
	}
	return locations, nil
}

// nextLine returns the next line from scanner, or io.EOF once
// exhausted.
func nextLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return scanner.Text(), nil
}
