// Package maze models a rectangular occupancy grid of Open and Wall cells
// together with a start and a goal cell.
//
// What:
//
//   - Grid wraps a rows×cols matrix of CellState. It is immutable once built.
//   - Maze binds a Grid to a start and goal Cell, both Open and in bounds.
//   - Neighbors uses 4-directional connectivity in the fixed order up, down, left, right.
//   - Parse and LoadFile read the text and YAML representations of a maze.
//
// Why:
//
//   - Pathfinding strategies share one read-only data model and never mutate it.
//   - Construction validates the start/goal invariant once, so searches can fail fast.
//
// Text format:
//
//	#  wall
//	.  open (a space is also open)
//	S  start (open)
//	G  goal  (open)
//
// Complexity:
//
//   - NewGrid, Parse: O(R×C) time and memory.
//   - InBounds, State, IsOpen, Index, CellAt: O(1).
//   - Neighbors: O(1), at most 4 cells.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidMaze: start or goal out of bounds or on a wall.
//   - ErrParse (and the more specific ErrMissingStart, ErrMissingGoal,
//     ErrDuplicateMarker, ErrUnknownSymbol): malformed text input.
package maze
