package maze

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if states has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(states [][]CellState) (*Grid, error) {
	if len(states) == 0 || len(states[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(states), len(states[0])
	for _, row := range states {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]CellState, 0, rows*cols)
	for _, row := range states {
		cells = append(cells, row...)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// FromInts builds a Grid from the numeric form: 0 is Open, any other value is Wall.
// Complexity: O(R×C).
func FromInts(values [][]int) (*Grid, error) {
	states := make([][]CellState, len(values))
	for r, row := range values {
		states[r] = make([]CellState, len(row))
		for c, v := range row {
			if v != 0 {
				states[r][c] = Wall
			}
		}
	}

	return NewGrid(states)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// State returns the state of c. Out-of-bounds cells read as Wall.
func (g *Grid) State(c Cell) CellState {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.Index(c)]
}

// IsOpen reports whether c is in bounds and Open.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && g.cells[g.Index(c)] == Open
}

// OpenCount returns the number of Open cells.
// Complexity: O(R×C).
func (g *Grid) OpenCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Open {
			n++
		}
	}
	return n
}

// Neighbors returns the in-bounds Open cells adjacent to c,
// in the order up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		if n := c.Add(d); g.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// States returns a deep copy of the grid as a 2D slice.
func (g *Grid) States() [][]CellState {
	out := make([][]CellState, g.rows)
	for r := range out {
		out[r] = make([]CellState, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}
