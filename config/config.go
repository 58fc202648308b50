// Package config loads the solver's run configuration.
//
// Sources, later ones winning:
//
//  1. Default()
//  2. an optional YAML file
//  3. a .env file (existing environment variables are not overwritten)
//  4. the process environment (MAZE_* variables)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/pathfind"
)

// Size limits for generated mazes.
const (
	MinSize = 2
	MaxSize = 200
)

// StrategyAll selects every strategy (compare mode).
const StrategyAll = "all"

// ErrInvalidConfig is returned by Validate and Load for unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the values a solver run needs.
type Config struct {
	Rows         int    `yaml:"rows"`         // Rows of a generated maze
	Cols         int    `yaml:"cols"`         // Columns of a generated maze
	Seed         int64  `yaml:"seed"`         // RNG seed for generation
	Generator    string `yaml:"generator"`    // walk or wilson
	Strategy     string `yaml:"strategy"`     // dfs, bfs, astar, dijkstra or all
	ShowVisited  bool   `yaml:"showVisited"`  // Overlay expanded cells when rendering
	MazeFile     string `yaml:"mazeFile"`     // YAML maze file; overrides generation when set
	HistoryApp   string `yaml:"historyApp"`   // Application name of the history store
	HistoryLimit int    `yaml:"historyLimit"` // Maximum stored history records
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rows:         mazegen.DefaultRows,
		Cols:         mazegen.DefaultCols,
		Seed:         1,
		Generator:    "walk",
		Strategy:     "astar",
		HistoryApp:   "mazepath",
		HistoryLimit: 100,
	}
}

// Load builds a Config from Default, the YAML file at path (skipped when path
// is empty), the given .env files (".env" when none are given; a missing file
// is not an error) and MAZE_* environment variables, then validates it.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: failed to load env file: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// applyEnv overrides cfg with any MAZE_* variables that are set.
func applyEnv(cfg *Config) error {
	var err error
	if cfg.Rows, err = envInt("MAZE_ROWS", cfg.Rows); err != nil {
		return err
	}
	if cfg.Cols, err = envInt("MAZE_COLS", cfg.Cols); err != nil {
		return err
	}
	if cfg.Seed, err = envInt64("MAZE_SEED", cfg.Seed); err != nil {
		return err
	}
	if cfg.ShowVisited, err = envBool("MAZE_SHOW_VISITED", cfg.ShowVisited); err != nil {
		return err
	}
	if cfg.HistoryLimit, err = envInt("MAZE_HISTORY_LIMIT", cfg.HistoryLimit); err != nil {
		return err
	}
	cfg.Generator = getEnvWithDefault("MAZE_GENERATOR", cfg.Generator)
	cfg.Strategy = getEnvWithDefault("MAZE_STRATEGY", cfg.Strategy)
	cfg.MazeFile = getEnvWithDefault("MAZE_FILE", cfg.MazeFile)
	cfg.HistoryApp = getEnvWithDefault("MAZE_HISTORY_APP", cfg.HistoryApp)
	return nil
}

// Validate checks every field and reports the first problem as ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Rows < MinSize || c.Rows > MaxSize || c.Cols < MinSize || c.Cols > MaxSize {
		return fmt.Errorf("%w: size %dx%d outside [%d, %d]", ErrInvalidConfig, c.Rows, c.Cols, MinSize, MaxSize)
	}
	if _, err := mazegen.ParseKind(c.Generator); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Strategies(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.HistoryApp) == "" {
		return fmt.Errorf("%w: historyApp is empty", ErrInvalidConfig)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("%w: historyLimit must be positive, got %d", ErrInvalidConfig, c.HistoryLimit)
	}
	return nil
}

// Strategies resolves the Strategy field: all four for "all", otherwise one.
func (c Config) Strategies() ([]pathfind.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(c.Strategy), StrategyAll) {
		return pathfind.Strategies(), nil
	}
	s, err := pathfind.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	return []pathfind.Strategy{s}, nil
}

// GeneratorOptions returns the mazegen options described by c.
func (c Config) GeneratorOptions() []mazegen.Option {
	return []mazegen.Option{mazegen.WithSize(c.Rows, c.Cols), mazegen.WithSeed(c.Seed)}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func envInt(key string, def int) (int, error) {
	v, err := envInt64(key, int64(def))
	return int(v), err
}

func envInt64(key string, def int64) (int64, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidConfig, key, err)
	}
	return v, nil
}
