package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/history"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
	"github.com/katalvlaran/mazepath/render"
)

func runSolve(args []string, out io.Writer) error {
	var (
		common   commonFlags
		strategy string
		visited  bool
		trace    bool
	)
	fs := newFlagSet("solve", out)
	common.register(fs)
	fs.StringVar(&strategy, "strategy", "", "dfs, bfs, astar or dijkstra")
	fs.BoolVar(&visited, "visited", false, "mark expanded cells")
	fs.BoolVar(&trace, "trace", false, "print every expansion")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	if strategy != "" {
		cfg.Strategy = strategy
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	cfg.ShowVisited = cfg.ShowVisited || visited
	strategies, err := cfg.Strategies()
	if err != nil {
		return err
	}
	if len(strategies) != 1 {
		return fmt.Errorf("%w: solve runs one strategy, use compare for %q", errUsage, cfg.Strategy)
	}

	m, name, err := loadMaze(cfg)
	if err != nil {
		return err
	}

	var opts []pathfind.Option
	if trace {
		opts = append(opts, pathfind.WithOnExpand(func(c maze.Cell, n int) {
			fmt.Fprintf(out, "expand %d: (%d,%d)\n", n, c.Row, c.Col)
		}))
	}
	begin := time.Now()
	res, err := pathfind.Solve(m, strategies[0], opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(begin)

	var renderOpts []render.Option
	if cfg.ShowVisited {
		renderOpts = append(renderOpts, render.WithVisited())
	}
	fmt.Fprintln(out, name)
	if err := render.Maze(out, m, res, renderOpts...); err != nil {
		return err
	}
	if err := render.Stats(out, res); err != nil {
		return err
	}

	rec, err := history.NewRecord(m, res, elapsed)
	if err != nil {
		return err
	}
	return record(cfg, rec)
}

func runCompare(args []string, out io.Writer) error {
	var common commonFlags
	fs := newFlagSet("compare", out)
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	m, name, err := loadMaze(cfg)
	if err != nil {
		return err
	}
	cmp, err := pathfind.Compare(m)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, name)
	if err := render.Maze(out, m, nil); err != nil {
		return err
	}
	if err := render.Comparison(out, cmp); err != nil {
		return err
	}

	recs := make([]history.Record, 0, len(cmp.Runs))
	for _, r := range cmp.Runs {
		rec, err := history.NewRecord(m, r.Result, r.Elapsed)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}
	return record(cfg, recs...)
}

func runGenerate(args []string, out io.Writer) error {
	var (
		common commonFlags
		path   string
	)
	fs := newFlagSet("generate", out)
	common.register(fs)
	fs.StringVar(&path, "out", "", "save the maze to this YAML file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	m, name, err := loadMaze(cfg)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, maze.Format(m)); err != nil {
		return err
	}
	g := m.Grid()
	log.Printf("[MAZE] [INFO] Generated %q: %d open cells in %d region(s)", name, g.OpenCount(), len(g.Components()))
	if path == "" {
		return nil
	}
	if err := maze.SaveFile(path, name, m); err != nil {
		return err
	}
	log.Printf("[MAZE] [INFO] Saved maze %q to %s", name, path)
	return nil
}

func runHistory(args []string, out io.Writer) error {
	var (
		cfgPath string
		wipe    bool
	)
	fs := newFlagSet("history", out)
	fs.StringVar(&cfgPath, "config", "", "YAML config file")
	fs.BoolVar(&wipe, "clear", false, "delete every stored run")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	store := openHistory(cfg)
	if wipe {
		if err := store.Clear(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "history cleared")
		return err
	}
	return render.History(out, store.Summarize())
}

// record appends recs to the configured history store.
func record(cfg config.Config, recs ...history.Record) error {
	store := openHistory(cfg)
	if err := store.Append(recs...); err != nil {
		return err
	}
	log.Printf("[MAZE] [INFO] Recorded %d run(s), %d stored", len(recs), store.Len())
	return nil
}
