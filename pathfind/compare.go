package pathfind

import (
	"time"

	"github.com/katalvlaran/mazepath/maze"
)

// Run is one strategy's entry in a Comparison.
type Run struct {
	Result  *SearchResult
	Elapsed time.Duration
}

// Comparison holds the runs of several strategies over the same maze.
type Comparison struct {
	Runs []Run
}

// Compare solves m with each strategy in turn, or with all four when none are
// given. Every run owns its own search state; the maze is shared read-only.
// The first invalid strategy aborts the comparison with ErrInvalidStrategy.
func Compare(m *maze.Maze, strategies ...Strategy) (*Comparison, error) {
	if len(strategies) == 0 {
		strategies = Strategies()
	}
	c := &Comparison{Runs: make([]Run, 0, len(strategies))}
	for _, s := range strategies {
		begin := time.Now()
		res, err := Solve(m, s)
		if err != nil {
			return nil, err
		}
		c.Runs = append(c.Runs, Run{Result: res, Elapsed: time.Since(begin)})
	}
	return c, nil
}

// Fastest returns the run with the smallest Elapsed; earlier runs win ties.
func (c *Comparison) Fastest() (Run, bool) {
	var best Run
	ok := false
	for _, r := range c.Runs {
		if !ok || r.Elapsed < best.Elapsed {
			best, ok = r, true
		}
	}
	return best, ok
}

// Shortest returns the successful run with the fewest path cells.
// Runs that found no path are ignored; ok is false when none succeeded.
func (c *Comparison) Shortest() (Run, bool) {
	var best Run
	ok := false
	for _, r := range c.Runs {
		if !r.Result.Found {
			continue
		}
		if !ok || r.Result.PathLength < best.Result.PathLength {
			best, ok = r, true
		}
	}
	return best, ok
}

// Fewest returns the run with the fewest expansions; earlier runs win ties.
func (c *Comparison) Fewest() (Run, bool) {
	var best Run
	ok := false
	for _, r := range c.Runs {
		if !ok || r.Result.Expanded < best.Result.Expanded {
			best, ok = r, true
		}
	}
	return best, ok
}
