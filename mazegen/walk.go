package mazegen

import (
	"github.com/katalvlaran/mazepath/maze"
)

// openChance is the probability that a randomly picked wall is opened.
const openChance = 0.4

// Walk generates a rows×cols maze with start (0,0) and goal (rows-1, cols-1).
// A corridor is carved from the start, stepping down while possible and then
// right, so the goal is always reachable. Random openings are added on top.
func Walk(opts ...Option) (*maze.Maze, error) {
	cfg := newConfig(opts)
	rows, cols, rng := cfg.rows, cfg.cols, cfg.rng

	states := filled(rows, cols, maze.Wall)
	states[0][0] = maze.Open
	for r, c := 0, 0; r != rows-1 || c != cols-1; {
		if r+1 < rows {
			r++
		} else {
			c++
		}
		states[r][c] = maze.Open
	}

	picks := 3 * max(rows, cols)
	for i := 0; i < picks; i++ {
		r, c := rng.Intn(rows), rng.Intn(cols)
		if states[r][c] == maze.Wall && rng.Float64() < openChance {
			states[r][c] = maze.Open
		}
	}

	grid, err := maze.NewGrid(states)
	if err != nil {
		return nil, err
	}
	return maze.NewMaze(grid, maze.Cell{}, maze.Cell{Row: rows - 1, Col: cols - 1})
}

// filled returns a rows×cols matrix with every cell set to s.
func filled(rows, cols int, s maze.CellState) [][]maze.CellState {
	out := make([][]maze.CellState, rows)
	for r := range out {
		out[r] = make([]maze.CellState, cols)
		for c := range out[r] {
			out[r][c] = s
		}
	}
	return out
}

// Generate dispatches to the generator selected by kind.
func Generate(kind Kind, opts ...Option) (*maze.Maze, error) {
	switch kind {
	case KindWalk:
		return Walk(opts...)
	case KindWilson:
		return Wilson(opts...)
	}
	return nil, ErrUnknownKind
}
