// Package mazegen builds random mazes for the solver.
//
// Generators:
//
//   - Walk: an all-wall rows×cols grid with a guaranteed corridor from the
//     top-left start to the bottom-right goal (down first, then right), plus
//     3×max(rows, cols) random picks, each wall pick opened with probability 0.4.
//     Produces open, loopy mazes where strategies differ visibly.
//   - Wilson: a perfect maze (exactly one route between any two rooms) built
//     with loop-erased random walks on a rows×cols room lattice, rendered as a
//     (2·rows+1)×(2·cols+1) occupancy grid with walls between rooms.
//
// Determinism is explicit: every generator draws from one *rand.Rand set by
// WithSeed or WithRand (default seed 1). Same options ⇒ same maze.
//
// Complexity:
//
//   - Walk:   O(R×C) time and memory.
//   - Wilson: expected O(R×C·log(R×C)) time, O(R×C) memory.
package mazegen
