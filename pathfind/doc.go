// Package pathfind solves a maze.Maze with one of four search strategies
// behind a single contract:
//
//	res, err := pathfind.Solve(m, pathfind.AStar)
//
// Strategies
//
//   - DFS:      LIFO stack, first neighbor (up) explored first. Valid path, not necessarily shortest.
//   - BFS:      FIFO queue. Shortest path by edge count.
//   - Dijkstra: binary heap keyed by accumulated distance, unit weights, lazy decrease-key.
//     Converges to BFS path length on this grid.
//   - AStar:    binary heap keyed by f = g + h, h = Manhattan distance to the goal
//     (admissible and consistent on a 4-directional unit-cost grid).
//
// Heap ties are broken by insertion order, so every strategy is deterministic:
// solving the same maze twice yields identical results.
//
// Result
//
//   - Found, Path (start → goal, empty when unreachable), PathLength (cells).
//   - Expanded: cells removed from the frontier and processed, goal included.
//   - Visited: the expanded cells in expansion order.
//   - State: the terminal state of Init → Exploring → {Found, Exhausted}.
//
// An unreachable goal is not an error. Errors are reserved for invalid input:
// ErrInvalidStrategy for an unknown Strategy, maze.ErrInvalidMaze for a nil or
// invariant-violating maze.
//
// Concurrency
//
//	Each Solve call owns its frontier, visited set and parent links; nothing is
//	shared between calls. Compare runs strategies one after another.
//
// Complexity (N = open cells)
//
//   - DFS, BFS:        O(N) time, O(N) memory.
//   - Dijkstra, AStar: O(N log N) time, O(N) memory.
package pathfind
