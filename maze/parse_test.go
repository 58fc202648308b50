package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

const sample = `S.#.
.##.
...G
`

func TestParse_Sample(t *testing.T) {
	m, err := maze.ParseString(sample)
	require.NoError(t, err)

	g := m.Grid()
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, maze.Cell{Row: 0, Col: 0}, m.Start())
	assert.Equal(t, maze.Cell{Row: 2, Col: 3}, m.Goal())
	assert.Equal(t, maze.Wall, g.State(maze.Cell{Row: 0, Col: 2}))
	assert.Equal(t, maze.Open, g.State(maze.Cell{Row: 1, Col: 0}))
}

// TestParse_CRLFAndTrailingBlank checks line-ending tolerance.
func TestParse_CRLFAndTrailingBlank(t *testing.T) {
	m, err := maze.ParseString("S #\r\n..G\r\n\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Grid().Rows())
	assert.True(t, m.Grid().IsOpen(maze.Cell{Row: 0, Col: 1}), "space is open")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", maze.ErrEmptyGrid},
		{"Ragged", "S..\n.G\n", maze.ErrNonRectangular},
		{"MissingStart", "...\n..G\n", maze.ErrMissingStart},
		{"MissingGoal", "S..\n...\n", maze.ErrMissingGoal},
		{"DuplicateStart", "S.S\n..G\n", maze.ErrDuplicateMarker},
		{"DuplicateGoal", "S.G\n..G\n", maze.ErrDuplicateMarker},
		{"UnknownSymbol", "S.x\n..G\n", maze.ErrUnknownSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.ParseString(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
	_, err := maze.ParseString("S.x\n..G\n")
	assert.ErrorIs(t, err, maze.ErrParse, "specific errors wrap ErrParse")
}

func TestFormat_RoundTrip(t *testing.T) {
	m, err := maze.ParseString(sample)
	require.NoError(t, err)

	out := maze.Format(m)
	assert.Equal(t, sample, out)

	again, err := maze.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, m.Grid().States(), again.Grid().States())
	assert.Equal(t, m.Start(), again.Start())
	assert.Equal(t, m.Goal(), again.Goal())
}
