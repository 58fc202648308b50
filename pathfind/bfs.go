package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/maze"
)

// bfs explores the frontier in strict insertion order.
// Cells are marked visited on enqueue, so none is queued twice.
func (w *walker) bfs() bool {
	visited := mapset.New[maze.Cell]()
	visited.Put(w.start)
	queue := []maze.Cell{w.start}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		w.expand(u)
		if u == w.goal {
			return true
		}
		for _, v := range w.grid.Neighbors(u) {
			if visited.Has(v) {
				continue
			}
			visited.Put(v)
			w.link(v, u)
			queue = append(queue, v)
		}
	}
	return false
}
