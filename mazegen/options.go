package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Default generator parameters.
const (
	DefaultRows = 10
	DefaultCols = 10
	// defaultSeed is used when no seed or RNG is supplied.
	defaultSeed int64 = 1
)

// ErrUnknownKind is returned by ParseKind and Generate for an unknown generator.
var ErrUnknownKind = errors.New("mazegen: unknown generator kind")

// Option customizes a generator before it runs.
type Option func(*config)

type config struct {
	rows, cols int
	rng        *rand.Rand
}

func newConfig(opts []Option) config {
	cfg := config{rows: DefaultRows, cols: DefaultCols}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithSize sets the dimensions. Walk reads them as grid rows and columns,
// Wilson as rooms per side. Panics when either is below 2.
func WithSize(rows, cols int) Option {
	if rows < 2 || cols < 2 {
		panic(fmt.Sprintf("mazegen: WithSize(%d, %d): both must be >= 2", rows, cols))
	}
	return func(c *config) {
		c.rows, c.cols = rows, cols
	}
}

// WithSeed draws from a new RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r. Panics on nil.
// r is not safe for concurrent use; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mazegen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// Kind selects a generator.
type Kind int

const (
	// KindWalk selects Walk.
	KindWalk Kind = iota
	// KindWilson selects Wilson.
	KindWilson
)

// String returns the name accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindWalk:
		return "walk"
	case KindWilson:
		return "wilson"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "walk" or "wilson" (any case) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "walk":
		return KindWalk, nil
	case "wilson":
		return KindWilson, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
