package mazegen

import (
	"github.com/katalvlaran/mazepath/maze"
)

// roomMoves are the lattice steps between rooms, in a fixed order so that a
// seeded RNG always picks the same move.
var roomMoves = [4]maze.Cell{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}

// lattice is the room graph Wilson's algorithm runs on.
type lattice struct {
	rows, cols int
	inTree     []bool
	states     [][]maze.CellState
}

// Wilson generates a perfect maze on a rows×cols room lattice.
// The resulting grid is (2·rows+1)×(2·cols+1): rooms sit at odd coordinates,
// the cells between adjacent rooms are opened when the rooms are joined.
// Start is the top-left room (1,1), goal the bottom-right room.
func Wilson(opts ...Option) (*maze.Maze, error) {
	cfg := newConfig(opts)
	l := &lattice{
		rows:   cfg.rows,
		cols:   cfg.cols,
		inTree: make([]bool, cfg.rows*cfg.cols),
		states: filled(2*cfg.rows+1, 2*cfg.cols+1, maze.Wall),
	}
	rng := cfg.rng
	total := cfg.rows * cfg.cols

	first := l.room(rng.Intn(total))
	l.add(first)
	joined := 1

	for joined < total {
		start := l.randomOutside(rng.Intn)
		// exit[i] is the last move taken out of room i; overwriting it erases loops.
		exit := make(map[int]maze.Cell)
		for cur := start; !l.inTree[l.index(cur)]; {
			next := l.step(cur, rng.Intn)
			exit[l.index(cur)] = next
			cur = next
		}
		for cur := start; !l.inTree[l.index(cur)]; {
			next := exit[l.index(cur)]
			l.add(cur)
			l.join(cur, next)
			joined++
			cur = next
		}
	}

	grid, err := maze.NewGrid(l.states)
	if err != nil {
		return nil, err
	}
	goal := maze.Cell{Row: 2*cfg.rows - 1, Col: 2*cfg.cols - 1}
	return maze.NewMaze(grid, maze.Cell{Row: 1, Col: 1}, goal)
}

func (l *lattice) index(room maze.Cell) int { return room.Row*l.cols + room.Col }

func (l *lattice) room(idx int) maze.Cell {
	return maze.Cell{Row: idx / l.cols, Col: idx % l.cols}
}

// add marks room as part of the tree and opens its grid cell.
func (l *lattice) add(room maze.Cell) {
	l.inTree[l.index(room)] = true
	l.states[2*room.Row+1][2*room.Col+1] = maze.Open
}

// join opens the wall cell between two adjacent rooms.
func (l *lattice) join(a, b maze.Cell) {
	l.states[a.Row+b.Row+1][a.Col+b.Col+1] = maze.Open
}

// randomOutside picks a uniformly random room not yet in the tree.
func (l *lattice) randomOutside(intn func(int) int) maze.Cell {
	for {
		if idx := intn(len(l.inTree)); !l.inTree[idx] {
			return l.room(idx)
		}
	}
}

// step moves from room to a uniformly random in-bounds neighbor room.
func (l *lattice) step(room maze.Cell, intn func(int) int) maze.Cell {
	var options [4]maze.Cell
	n := 0
	for _, d := range roomMoves {
		next := room.Add(d)
		if next.Row >= 0 && next.Row < l.rows && next.Col >= 0 && next.Col < l.cols {
			options[n] = next
			n++
		}
	}
	return options[intn(n)]
}
