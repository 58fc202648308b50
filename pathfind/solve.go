package pathfind

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// noParent marks a cell without a predecessor in the parent links.
const noParent = -1

// walker holds the mutable state of a single Solve call.
type walker struct {
	grid  *maze.Grid
	start maze.Cell
	goal  maze.Cell
	opts  Options
	prev  []int // row-major index → predecessor index, noParent if none
	res   *SearchResult
}

// Solve runs strategy s on m and returns a fresh SearchResult.
// Returns ErrInvalidStrategy for an unknown s and maze.ErrInvalidMaze for a
// nil or invalid m; both are checked before the search begins.
// An unreachable goal yields Found=false and an empty Path, not an error.
func Solve(m *maze.Maze, s Strategy, opts ...Option) (*SearchResult, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, int(s))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := newWalker(m, o)
	w.res.Strategy = s
	w.res.State = StateExploring

	var found bool
	switch s {
	case DFS:
		found = w.dfs()
	case BFS:
		found = w.bfs()
	case AStar:
		found = w.bestFirst(func(c maze.Cell) int { return maze.Manhattan(c, w.goal) })
	case Dijkstra:
		found = w.bestFirst(func(maze.Cell) int { return 0 })
	}
	w.finish(found)

	return w.res, nil
}

func newWalker(m *maze.Maze, o Options) *walker {
	g := m.Grid()
	prev := make([]int, g.Size())
	for i := range prev {
		prev[i] = noParent
	}
	return &walker{
		grid:  g,
		start: m.Start(),
		goal:  m.Goal(),
		opts:  o,
		prev:  prev,
		res: &SearchResult{
			State:   StateInit,
			Path:    []maze.Cell{},
			Visited: make([]maze.Cell, 0, g.Size()),
		},
	}
}

// expand records c as processed and fires OnExpand.
func (w *walker) expand(c maze.Cell) {
	w.res.Expanded++
	w.res.Visited = append(w.res.Visited, c)
	w.opts.OnExpand(c, w.res.Expanded)
}

// link records from as the predecessor of to.
func (w *walker) link(to, from maze.Cell) {
	w.prev[w.grid.Index(to)] = w.grid.Index(from)
}

// finish moves the walker into its terminal state and builds the path.
func (w *walker) finish(found bool) {
	if !found {
		w.res.State = StateExhausted
		return
	}
	w.res.State = StateFound
	w.res.Found = true
	w.res.Path = w.pathTo(w.goal)
	w.res.PathLength = len(w.res.Path)
}

// pathTo walks parent links from dest back to the start, then reverses.
func (w *walker) pathTo(dest maze.Cell) []maze.Cell {
	var path []maze.Cell
	for at := w.grid.Index(dest); at != noParent; at = w.prev[at] {
		path = append(path, w.grid.CellAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
