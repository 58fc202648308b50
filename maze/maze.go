package maze

import "fmt"

// NewMaze binds grid to start and goal.
// Returns ErrInvalidMaze, wrapped with the reason, if grid is nil or if start
// or goal is out of bounds or on a Wall.
func NewMaze(grid *Grid, start, goal Cell) (*Maze, error) {
	m := &Maze{grid: grid, start: start, goal: goal}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the start/goal invariant. A nil or zero Maze is invalid.
func (m *Maze) Validate() error {
	if m == nil || m.grid == nil {
		return fmt.Errorf("%w: no grid", ErrInvalidMaze)
	}
	if err := checkEndpoint(m.grid, "start", m.start); err != nil {
		return err
	}
	return checkEndpoint(m.grid, "goal", m.goal)
}

func checkEndpoint(g *Grid, name string, c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s (%d,%d) outside %dx%d grid", ErrInvalidMaze, name, c.Row, c.Col, g.rows, g.cols)
	}
	if g.State(c) == Wall {
		return fmt.Errorf("%w: %s (%d,%d) is a wall", ErrInvalidMaze, name, c.Row, c.Col)
	}
	return nil
}

// Grid returns the underlying grid.
func (m *Maze) Grid() *Grid { return m.grid }

// Start returns the start cell.
func (m *Maze) Start() Cell { return m.start }

// Goal returns the goal cell.
func (m *Maze) Goal() Cell { return m.goal }
