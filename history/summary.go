package history

import (
	"slices"
	"time"

	"github.com/katalvlaran/mazepath/pathfind"
)

// Summary aggregates the records of one strategy.
type Summary struct {
	Strategy      string
	Runs          int
	Found         int
	AvgPathLength float64 // over runs that found the goal
	AvgExpanded   float64
	AvgElapsed    time.Duration
}

// Summarize groups the stored records by strategy. Known strategies come
// first in pathfind.Strategies order, any others follow sorted by name.
func (s *Store) Summarize() []Summary {
	return Summarize(s.records)
}

// Summarize groups records by strategy; see Store.Summarize.
func Summarize(records []Record) []Summary {
	type totals struct {
		runs, found, pathCells, expanded int
		elapsed                          time.Duration
	}
	byName := make(map[string]*totals)
	for _, r := range records {
		t, ok := byName[r.Strategy]
		if !ok {
			t = &totals{}
			byName[r.Strategy] = t
		}
		t.runs++
		t.expanded += r.Expanded
		t.elapsed += r.Elapsed
		if r.Found {
			t.found++
			t.pathCells += r.PathLength
		}
	}

	names := make([]string, 0, len(byName))
	known := make(map[string]bool)
	for _, st := range pathfind.Strategies() {
		known[st.Name()] = true
		if _, ok := byName[st.Name()]; ok {
			names = append(names, st.Name())
		}
	}
	var other []string
	for name := range byName {
		if !known[name] {
			other = append(other, name)
		}
	}
	slices.Sort(other)
	names = append(names, other...)

	out := make([]Summary, 0, len(names))
	for _, name := range names {
		t := byName[name]
		sum := Summary{
			Strategy:    name,
			Runs:        t.runs,
			Found:       t.found,
			AvgExpanded: float64(t.expanded) / float64(t.runs),
			AvgElapsed:  t.elapsed / time.Duration(t.runs),
		}
		if t.found > 0 {
			sum.AvgPathLength = float64(t.pathCells) / float64(t.found)
		}
		out = append(out, sum)
	}
	return out
}
