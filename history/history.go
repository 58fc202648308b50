// Package history keeps a bounded log of solver runs in a gdata flat-file
// store, one YAML document holding every record.
//
// A Store built with a nil *gdata.Manager runs in memory only: appends and
// clears succeed but nothing survives the process.
package history

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathfind"
)

// Storage keys inside the gdata application directory.
const (
	historyObject = "history"
	runsProperty  = "runs"
)

// DefaultLimit caps the number of stored records when NewStore gets limit < 1.
const DefaultLimit = 100

// ErrNilResult is returned by NewRecord when there is no result to record.
var ErrNilResult = errors.New("history: nil search result")

// Record is one solver run.
type Record struct {
	ID         string        `yaml:"id"`
	Time       time.Time     `yaml:"time"`
	Strategy   string        `yaml:"strategy"` // pathfind.Strategy.Name()
	Rows       int           `yaml:"rows"`
	Cols       int           `yaml:"cols"`
	Found      bool          `yaml:"found"`
	PathLength int           `yaml:"pathLength"`
	Expanded   int           `yaml:"expanded"`
	Elapsed    time.Duration `yaml:"elapsed"`
}

// NewRecord describes res, a search over m that took elapsed.
func NewRecord(m *maze.Maze, res *pathfind.SearchResult, elapsed time.Duration) (Record, error) {
	if res == nil {
		return Record{}, ErrNilResult
	}
	rec := Record{
		ID:         uuid.NewString(),
		Time:       time.Now().UTC(),
		Strategy:   res.Strategy.Name(),
		Found:      res.Found,
		PathLength: res.PathLength,
		Expanded:   res.Expanded,
		Elapsed:    elapsed,
	}
	if m != nil {
		rec.Rows, rec.Cols = m.Grid().Rows(), m.Grid().Cols()
	}
	return rec, nil
}

// Store holds the records of one application, oldest first.
type Store struct {
	manager *gdata.Manager // nil: in-memory only
	limit   int
	records []Record
}

// Open opens the gdata store of appName and loads its records.
func Open(appName string, limit int) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("history: failed to open store %q: %w", appName, err)
	}
	return NewStore(manager, limit), nil
}

// NewStore wraps manager, which may be nil. A record file that cannot be
// read is logged and treated as empty.
func NewStore(manager *gdata.Manager, limit int) *Store {
	if limit < 1 {
		limit = DefaultLimit
	}
	s := &Store{manager: manager, limit: limit}
	if err := s.Load(); err != nil {
		log.Printf("[History] Warning: failed to load records: %v (starting empty)", err)
	}
	return s
}

// Persistent reports whether records are written to disk.
func (s *Store) Persistent() bool { return s.manager != nil }

// Limit is the maximum number of records kept.
func (s *Store) Limit() int { return s.limit }

// Load replaces the in-memory records with the stored ones.
func (s *Store) Load() error {
	s.records = nil
	if s.manager == nil || !s.manager.ObjectPropExists(historyObject, runsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(historyObject, runsProperty)
	if err != nil {
		return fmt.Errorf("history: failed to load records: %w", err)
	}
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("history: failed to unmarshal records: %w", err)
	}
	s.records = s.trim(records)
	return nil
}

// Append adds recs, drops the oldest records beyond the limit and saves.
func (s *Store) Append(recs ...Record) error {
	if len(recs) == 0 {
		return nil
	}
	s.records = s.trim(append(s.records, recs...))
	return s.save()
}

// Clear removes every record.
func (s *Store) Clear() error {
	s.records = nil
	return s.save()
}

// Records returns a copy of the stored records, oldest first.
func (s *Store) Records() []Record {
	return slices.Clone(s.records)
}

// Len is the number of stored records.
func (s *Store) Len() int { return len(s.records) }

func (s *Store) trim(records []Record) []Record {
	if over := len(records) - s.limit; over > 0 {
		records = records[over:]
	}
	return records
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}

	records := s.records
	if records == nil {
		records = []Record{}
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("history: failed to marshal records: %w", err)
	}
	if err := s.manager.SaveObjectProp(historyObject, runsProperty, data); err != nil {
		return fmt.Errorf("history: failed to save records: %w", err)
	}
	log.Printf("[History] %d records saved", len(records))
	return nil
}
