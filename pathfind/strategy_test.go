package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/pathfind"
)

func TestParseStrategy(t *testing.T) {
	cases := map[string]pathfind.Strategy{
		"dfs":      pathfind.DFS,
		"BFS":      pathfind.BFS,
		"astar":    pathfind.AStar,
		"A*":       pathfind.AStar,
		"a-star":   pathfind.AStar,
		"Dijkstra": pathfind.Dijkstra,
		" bfs\t":   pathfind.BFS,
	}
	for in, want := range cases {
		got, err := pathfind.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := pathfind.ParseStrategy("greedy")
	assert.ErrorIs(t, err, pathfind.ErrInvalidStrategy)
	_, err = pathfind.ParseStrategy("")
	assert.ErrorIs(t, err, pathfind.ErrInvalidStrategy)
}

func TestStrategy_Names(t *testing.T) {
	for _, s := range pathfind.Strategies() {
		assert.True(t, s.Valid())
		back, err := pathfind.ParseStrategy(s.Name())
		require.NoError(t, err)
		assert.Equal(t, s, back)
		assert.NotEmpty(t, s.String())
	}
	assert.Equal(t, "A* Search", pathfind.AStar.String())
	assert.Equal(t, "Strategy(7)", pathfind.Strategy(7).String())
	assert.False(t, pathfind.Strategy(7).Valid())
	assert.Empty(t, pathfind.Strategy(7).Name())
}
