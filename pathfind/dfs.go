package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/maze"
)

// stackItem pairs a discovered cell with the cell that pushed it.
type stackItem struct {
	cell   maze.Cell
	parent maze.Cell
	root   bool
}

// dfs explores via an explicit LIFO stack. Neighbors are pushed in reverse,
// so the first neighbor (up) is popped first, as in recursive DFS.
// A cell is marked visited when popped; later duplicates on the stack are skipped.
func (w *walker) dfs() bool {
	visited := mapset.New[maze.Cell]()
	stack := []stackItem{{cell: w.start, root: true}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(top.cell) {
			continue
		}
		visited.Put(top.cell)
		if !top.root {
			w.link(top.cell, top.parent)
		}
		w.expand(top.cell)
		if top.cell == w.goal {
			return true
		}

		nbrs := w.grid.Neighbors(top.cell)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited.Has(nbrs[i]) {
				stack = append(stack, stackItem{cell: nbrs[i], parent: top.cell})
			}
		}
	}
	return false
}
