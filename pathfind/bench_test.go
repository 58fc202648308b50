package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/pathfind"
)

// BenchmarkSolve measures each strategy on a seeded 200×200 maze with 25% walls.
// Complexity: O(N) for DFS/BFS, O(N log N) for Dijkstra/A*.
func BenchmarkSolve(b *testing.B) {
	const n = 200
	m := randomMaze(b, rand.New(rand.NewSource(42)), n, n, 0.25)

	for _, s := range pathfind.Strategies() {
		b.Run(s.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = pathfind.Solve(m, s)
			}
		})
	}
}
