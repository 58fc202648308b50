// Package render draws mazes and search results as plain text.
//
// Legend:
//
//	S start    G goal    * path    + visited (WithVisited)    # wall    . open
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
)

// Overlay symbols.
const (
	SymbolPath    = '*'
	SymbolVisited = '+'
)

// Option customizes Maze output.
type Option func(*options)

type options struct {
	visited bool
	legend  bool
}

// WithVisited marks expanded cells that are not on the path.
func WithVisited() Option {
	return func(o *options) { o.visited = true }
}

// WithLegend appends a legend line.
func WithLegend() Option {
	return func(o *options) { o.legend = true }
}

// Maze writes m to w, one character per cell, overlaying res when non-nil.
// Start and goal markers take precedence over path and visited marks.
func Maze(w io.Writer, m *maze.Maze, res *pathfind.SearchResult, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	g := m.Grid()
	marks := make([]byte, g.Size())
	for i := range marks {
		marks[i] = maze.SymbolOpen
		if g.State(g.CellAt(i)) == maze.Wall {
			marks[i] = maze.SymbolWall
		}
	}
	if res != nil {
		if o.visited {
			for _, c := range res.Visited {
				marks[g.Index(c)] = SymbolVisited
			}
		}
		for _, c := range res.Path {
			marks[g.Index(c)] = SymbolPath
		}
	}
	marks[g.Index(m.Start())] = maze.SymbolStart
	marks[g.Index(m.Goal())] = maze.SymbolGoal

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		bw.Write(marks[r*g.Cols() : (r+1)*g.Cols()])
		bw.WriteByte('\n')
	}
	if o.legend {
		fmt.Fprintf(bw, "legend: %c start  %c goal  %c path  %c visited  %c wall  %c open\n",
			maze.SymbolStart, maze.SymbolGoal, SymbolPath, SymbolVisited, maze.SymbolWall, maze.SymbolOpen)
	}
	return bw.Flush()
}

// String is Maze into a string.
func String(m *maze.Maze, res *pathfind.SearchResult, opts ...Option) string {
	var b strings.Builder
	_ = Maze(&b, m, res, opts...)
	return b.String()
}
