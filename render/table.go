package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/mazepath/history"
	"github.com/katalvlaran/mazepath/pathfind"
)

// Stats writes the one-line summary of a single search.
func Stats(w io.Writer, res *pathfind.SearchResult) error {
	if !res.Found {
		_, err := fmt.Fprintf(w, "%s: no path (expanded %d cells)\n", res.Strategy, res.Expanded)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: path %d cells (%d steps), expanded %d cells\n",
		res.Strategy, res.PathLength, res.Steps(), res.Expanded)
	return err
}

// Comparison writes a table of every run followed by the fastest and
// shortest entries.
func Comparison(w io.Writer, c *pathfind.Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tFOUND\tPATH\tEXPANDED\tELAPSED")
	for _, r := range c.Runs {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%s\n",
			r.Result.Strategy, r.Result.Found, r.Result.PathLength, r.Result.Expanded, formatElapsed(r.Elapsed))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if best, ok := c.Fastest(); ok {
		fmt.Fprintf(w, "fastest:  %s (%s)\n", best.Result.Strategy, formatElapsed(best.Elapsed))
	}
	if best, ok := c.Shortest(); ok {
		fmt.Fprintf(w, "shortest: %s (%d cells)\n", best.Result.Strategy, best.Result.PathLength)
	} else {
		fmt.Fprintln(w, "shortest: none (goal unreachable)")
	}
	return nil
}

// formatElapsed rounds to microseconds for display.
func formatElapsed(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

// History writes per-strategy aggregates of stored runs.
func History(w io.Writer, sums []history.Summary) error {
	if len(sums) == 0 {
		_, err := fmt.Fprintln(w, "no runs recorded")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tRUNS\tFOUND\tAVG PATH\tAVG EXPANDED\tAVG ELAPSED")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\t%.1f\t%s\n",
			s.Strategy, s.Runs, s.Found, s.AvgPathLength, s.AvgExpanded, formatElapsed(s.AvgElapsed))
	}
	return tw.Flush()
}
