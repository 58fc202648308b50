package maze

// CellState is the occupancy of a single grid cell.
type CellState uint8

const (
	// Open cells can be entered.
	Open CellState = iota
	// Wall cells block movement.
	Wall
)

// String returns "open" or "wall".
func (s CellState) String() string {
	if s == Wall {
		return "wall"
	}
	return "open"
}

// Cell is a 0-indexed (Row, Col) coordinate.
type Cell struct {
	Row, Col int
}

// offsets lists the 4-directional moves in neighbor order: up, down, left, right.
var offsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Add returns the cell displaced by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Adjacent reports whether a and b differ by exactly one orthogonal step.
func Adjacent(a, b Cell) bool {
	return Manhattan(a, b) == 1
}

// Manhattan returns |Δrow| + |Δcol|.
// Complexity: O(1).
func Manhattan(a, b Cell) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Grid is an immutable rows×cols matrix of CellState stored row-major.
type Grid struct {
	rows, cols int
	cells      []CellState
}

// Maze owns one Grid plus a start and a goal cell.
// A Maze built by NewMaze always satisfies: start and goal are in bounds and Open.
type Maze struct {
	grid        *Grid
	start, goal Cell
}
