package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/history"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/mazegen"
)

// commonFlags are accepted by every maze-producing subcommand.
type commonFlags struct {
	config   string
	mazeFile string
	gen      string
	rows     int
	cols     int
	seed     int64
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "YAML config file")
	fs.StringVar(&c.mazeFile, "maze", "", "YAML maze file (overrides generation)")
	fs.StringVar(&c.gen, "gen", "", "generator: walk or wilson")
	fs.IntVar(&c.rows, "rows", 0, "rows of a generated maze")
	fs.IntVar(&c.cols, "cols", 0, "columns of a generated maze")
	fs.Int64Var(&c.seed, "seed", 0, "generator seed")
}

// load builds the run configuration: defaults, config file, environment,
// then the flags that were set explicitly on fs.
func (c *commonFlags) load(fs *flag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(c.config)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "maze":
			cfg.MazeFile = c.mazeFile
		case "gen":
			cfg.Generator = c.gen
		case "rows":
			cfg.Rows = c.rows
		case "cols":
			cfg.Cols = c.cols
		case "seed":
			cfg.Seed = c.seed
		}
	})
	return cfg, cfg.Validate()
}

// loadMaze reads cfg.MazeFile when set and generates a maze otherwise.
// The returned name labels the maze in output and saved files.
func loadMaze(cfg config.Config) (*maze.Maze, string, error) {
	if cfg.MazeFile != "" {
		m, name, err := maze.LoadFile(cfg.MazeFile)
		if err != nil {
			return nil, "", err
		}
		if name == "" {
			name = cfg.MazeFile
		}
		log.Printf("[MAZE] [INFO] Loaded maze %q from %s", name, cfg.MazeFile)
		return m, name, nil
	}

	kind, err := mazegen.ParseKind(cfg.Generator)
	if err != nil {
		return nil, "", err
	}
	m, err := mazegen.Generate(kind, cfg.GeneratorOptions()...)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("%s %dx%d seed %d", kind, cfg.Rows, cfg.Cols, cfg.Seed)
	return m, name, nil
}

// openHistory opens the configured store, falling back to memory only.
func openHistory(cfg config.Config) *history.Store {
	store, err := history.Open(cfg.HistoryApp, cfg.HistoryLimit)
	if err != nil {
		log.Printf("[MAZE] [WARN] History disabled: %v", err)
		return history.NewStore(nil, cfg.HistoryLimit)
	}
	return store
}
