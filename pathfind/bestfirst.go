package pathfind

import (
	"container/heap"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/maze"
)

// bestFirst runs a priority-queue search keyed by g + h(cell) over unit edge
// weights. With h == 0 it is Dijkstra's algorithm; with the Manhattan
// distance to the goal it is A*. Both heuristics are consistent, so a cell's
// distance is final when it is first popped and the closed set is never reopened.
//
// Stale heap entries are skipped on pop (lazy decrease-key).
func (w *walker) bestFirst(h func(maze.Cell) int) bool {
	dist := make([]int, w.grid.Size())
	for i := range dist {
		dist[i] = math.MaxInt
	}
	closed := mapset.New[maze.Cell]()

	pq := make(cellPQ, 0, w.grid.Size())
	heap.Init(&pq)
	seq := 0
	push := func(c maze.Cell, g int) {
		heap.Push(&pq, &pqItem{cell: c, g: g, f: g + h(c), seq: seq})
		seq++
	}

	dist[w.grid.Index(w.start)] = 0
	push(w.start, 0)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pqItem)
		u := item.cell
		if closed.Has(u) {
			continue
		}
		closed.Put(u)
		w.expand(u)
		if u == w.goal {
			return true
		}

		for _, v := range w.grid.Neighbors(u) {
			if closed.Has(v) {
				continue
			}
			nd := item.g + 1
			vi := w.grid.Index(v)
			if nd >= dist[vi] {
				continue
			}
			dist[vi] = nd
			w.link(v, u)
			push(v, nd)
		}
	}
	return false
}

// pqItem is a frontier entry: f is the priority, seq the insertion order.
type pqItem struct {
	cell maze.Cell
	g, f int
	seq  int
}

// cellPQ is a min-heap of *pqItem ordered by f, then by seq.
type cellPQ []*pqItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
