package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
)

// mustParse builds a maze from text or fails the test.
func mustParse(t testing.TB, s string) *maze.Maze {
	t.Helper()
	m, err := maze.ParseString(s)
	require.NoError(t, err)
	return m
}

// openMaze returns a rows×cols maze with no walls.
func openMaze(t testing.TB, rows, cols int, start, goal maze.Cell) *maze.Maze {
	t.Helper()
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
	}
	g, err := maze.FromInts(values)
	require.NoError(t, err)
	m, err := maze.NewMaze(g, start, goal)
	require.NoError(t, err)
	return m
}

// randomMaze fills a rows×cols grid with walls at probability p, keeping the
// corners open for start (0,0) and goal (rows-1, cols-1).
func randomMaze(t testing.TB, rng *rand.Rand, rows, cols int, p float64) *maze.Maze {
	t.Helper()
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if rng.Float64() < p {
				values[r][c] = 1
			}
		}
	}
	values[0][0] = 0
	values[rows-1][cols-1] = 0
	g, err := maze.FromInts(values)
	require.NoError(t, err)
	m, err := maze.NewMaze(g, maze.Cell{}, maze.Cell{Row: rows - 1, Col: cols - 1})
	require.NoError(t, err)
	return m
}

// requireValidPath checks start/goal endpoints and that every step is a move
// between 4-adjacent Open cells.
func requireValidPath(t *testing.T, m *maze.Maze, res *pathfind.SearchResult) {
	t.Helper()
	require.True(t, res.Found)
	require.NotEmpty(t, res.Path)
	require.Equal(t, len(res.Path), res.PathLength)
	require.Equal(t, m.Start(), res.Path[0])
	require.Equal(t, m.Goal(), res.Path[len(res.Path)-1])
	for i, c := range res.Path {
		require.True(t, m.Grid().IsOpen(c), "path cell %v is not open", c)
		if i > 0 {
			require.True(t, maze.Adjacent(res.Path[i-1], c), "step %v → %v is not adjacent", res.Path[i-1], c)
		}
	}
}
