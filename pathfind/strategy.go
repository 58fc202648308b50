package pathfind

import (
	"fmt"
	"strings"
)

// Strategy selects one of the four fixed search algorithms.
type Strategy int

const (
	// DFS is depth-first search.
	DFS Strategy = iota
	// BFS is breadth-first search.
	BFS
	// AStar is A* with the Manhattan heuristic.
	AStar
	// Dijkstra is Dijkstra's algorithm with unit edge weights.
	Dijkstra
)

// Strategies returns all strategies in their canonical order.
func Strategies() []Strategy {
	return []Strategy{DFS, BFS, AStar, Dijkstra}
}

// Valid reports whether s is one of the four known strategies.
func (s Strategy) Valid() bool {
	return s >= DFS && s <= Dijkstra
}

// String returns the display name of s.
func (s Strategy) String() string {
	switch s {
	case DFS:
		return "Depth-First Search"
	case BFS:
		return "Breadth-First Search"
	case AStar:
		return "A* Search"
	case Dijkstra:
		return "Dijkstra's Algorithm"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Name returns the short identifier accepted by ParseStrategy.
func (s Strategy) Name() string {
	switch s {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	case AStar:
		return "astar"
	case Dijkstra:
		return "dijkstra"
	}
	return ""
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// Accepted: dfs, bfs, astar, a*, a-star, dijkstra.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
}
