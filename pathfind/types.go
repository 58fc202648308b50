package pathfind

import (
	"errors"

	"github.com/katalvlaran/mazepath/maze"
)

// ErrInvalidStrategy is returned for a Strategy outside the four known values
// or an unrecognized strategy name.
var ErrInvalidStrategy = errors.New("pathfind: invalid strategy")

// State is the lifecycle of a single Solve call.
type State int

const (
	// StateInit: inputs validated, frontier not yet seeded.
	StateInit State = iota
	// StateExploring: frontier is being expanded.
	StateExploring
	// StateFound: the goal was removed from the frontier.
	StateFound
	// StateExhausted: the frontier emptied without reaching the goal.
	StateExhausted
)

// String returns a lower-case state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateExploring:
		return "exploring"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// SearchResult is produced fresh by every Solve call and owned by the caller.
//   - Path runs from start to goal inclusive; it is empty when Found is false.
//   - PathLength == len(Path).
//   - Expanded counts cells removed from the frontier and processed.
//   - Visited lists those cells in expansion order (len(Visited) == Expanded).
type SearchResult struct {
	Strategy   Strategy
	State      State
	Found      bool
	Path       []maze.Cell
	PathLength int
	Expanded   int
	Visited    []maze.Cell
}

// Steps returns the number of moves along Path, or 0 when no path was found.
func (r *SearchResult) Steps() int {
	if r.PathLength == 0 {
		return 0
	}
	return r.PathLength - 1
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds the hooks applied during a search.
type Options struct {
	// OnExpand is called once per expanded cell with the running expansion count.
	OnExpand func(c maze.Cell, expanded int)
}

// DefaultOptions returns Options with a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(maze.Cell, int) {},
	}
}

// WithOnExpand registers a hook called for every expanded cell.
// Panics on nil.
func WithOnExpand(fn func(c maze.Cell, expanded int)) Option {
	if fn == nil {
		panic("pathfind: WithOnExpand(nil)")
	}
	return func(o *Options) {
		o.OnExpand = fn
	}
}
