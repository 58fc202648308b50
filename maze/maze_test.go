package maze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]maze.CellState
		err  error
	}{
		{"EmptyRows", [][]maze.CellState{}, maze.ErrEmptyGrid},
		{"EmptyCols", [][]maze.CellState{{}}, maze.ErrEmptyGrid},
		{"NonRectangular", [][]maze.CellState{{maze.Open, maze.Open}, {maze.Wall}}, maze.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.NewGrid(tc.grid)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_DeepCopy checks that mutating the input does not leak into the grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]maze.CellState{{maze.Open, maze.Open}}
	g, err := maze.NewGrid(in)
	require.NoError(t, err)

	in[0][1] = maze.Wall
	assert.True(t, g.IsOpen(maze.Cell{Row: 0, Col: 1}))

	out := g.States()
	out[0][0] = maze.Wall
	assert.True(t, g.IsOpen(maze.Cell{Row: 0, Col: 0}))
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := maze.FromInts([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	for _, c := range []maze.Cell{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []maze.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		assert.Equal(t, maze.Wall, g.State(c))
	}
	assert.Equal(t, 3, g.OpenCount())
}

// TestIndexRoundTrip verifies Index and CellAt are inverses.
func TestIndexRoundTrip(t *testing.T) {
	g, err := maze.FromInts([][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		assert.Equal(t, i, g.Index(g.CellAt(i)))
	}
	assert.Equal(t, maze.Cell{Row: 2, Col: 1}, g.CellAt(9))
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order checks the up, down, left, right order on an open grid.
func TestNeighbors_Order(t *testing.T) {
	g, err := maze.FromInts([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)

	got := g.Neighbors(maze.Cell{Row: 1, Col: 1})
	want := []maze.Cell{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
	assert.Equal(t, want, got)
}

// TestNeighbors_FiltersWallsAndEdges ensures walls and out-of-bounds cells are skipped.
func TestNeighbors_FiltersWallsAndEdges(t *testing.T) {
	g, err := maze.FromInts([][]int{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, []maze.Cell{{1, 0}}, g.Neighbors(maze.Cell{Row: 0, Col: 0}))
	assert.Equal(t, []maze.Cell{{0, 0}, {1, 1}}, g.Neighbors(maze.Cell{Row: 1, Col: 0}))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, maze.Manhattan(maze.Cell{3, 4}, maze.Cell{3, 4}))
	assert.Equal(t, 7, maze.Manhattan(maze.Cell{0, 0}, maze.Cell{3, 4}))
	assert.Equal(t, 7, maze.Manhattan(maze.Cell{3, 4}, maze.Cell{0, 0}))
	assert.True(t, maze.Adjacent(maze.Cell{1, 1}, maze.Cell{1, 2}))
	assert.False(t, maze.Adjacent(maze.Cell{1, 1}, maze.Cell{2, 2}))
}

//----------------------------------------------------------------------------//
// NewMaze Tests
//----------------------------------------------------------------------------//

// TestNewMaze_Invariants verifies start/goal validation.
func TestNewMaze_Invariants(t *testing.T) {
	g, err := maze.FromInts([][]int{
		{0, 0, 1},
		{1, 0, 0},
	})
	require.NoError(t, err)

	cases := []struct {
		name        string
		start, goal maze.Cell
		ok          bool
	}{
		{"Valid", maze.Cell{0, 0}, maze.Cell{1, 2}, true},
		{"SameCell", maze.Cell{0, 1}, maze.Cell{0, 1}, true},
		{"StartOutOfBounds", maze.Cell{-1, 0}, maze.Cell{1, 2}, false},
		{"GoalOutOfBounds", maze.Cell{0, 0}, maze.Cell{2, 2}, false},
		{"StartOnWall", maze.Cell{0, 2}, maze.Cell{1, 2}, false},
		{"GoalOnWall", maze.Cell{0, 0}, maze.Cell{1, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.NewMaze(g, tc.start, tc.goal)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.start, m.Start())
				assert.Equal(t, tc.goal, m.Goal())
				assert.Same(t, g, m.Grid())
				return
			}
			assert.Nil(t, m)
			assert.ErrorIs(t, err, maze.ErrInvalidMaze)
		})
	}
}

func TestValidate_ZeroAndNil(t *testing.T) {
	var nilMaze *maze.Maze
	assert.ErrorIs(t, nilMaze.Validate(), maze.ErrInvalidMaze)
	assert.ErrorIs(t, (&maze.Maze{}).Validate(), maze.ErrInvalidMaze)

	_, err := maze.NewMaze(nil, maze.Cell{}, maze.Cell{})
	assert.True(t, errors.Is(err, maze.ErrInvalidMaze))
}

//----------------------------------------------------------------------------//
// Components
//----------------------------------------------------------------------------//

// TestComponents_Regions checks region count, sizes and ordering.
//
// Grid (0 = open, 1 = wall):
//
//	1 0 0 1
//	0 0 1 1
//	1 1 0 0
//
// Expected: 2 regions of sizes 4 and 2, the first seeded at (0,1).
func TestComponents_Regions(t *testing.T) {
	g, err := maze.FromInts([][]int{
		{1, 0, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
	})
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []maze.Cell{{0, 1}, {1, 1}, {0, 2}, {1, 0}}, comps[0])
	assert.Equal(t, []maze.Cell{{2, 2}, {2, 3}}, comps[1])
	assert.False(t, g.Connected())
}

func TestComponents_AllWallAndAllOpen(t *testing.T) {
	walls, err := maze.FromInts([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Empty(t, walls.Components())
	assert.True(t, walls.Connected())

	open, err := maze.FromInts([][]int{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	comps := open.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 6)
	assert.True(t, open.Connected())
}
