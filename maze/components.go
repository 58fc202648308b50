package maze

// Components finds the 4-connected regions of Open cells.
// Regions are ordered by their first cell in row-major order; cells within a
// region are in flood (BFS) order starting from that cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, g.Size())
	var comps [][]Cell

	for i, s := range g.cells {
		if s != Open || seen[i] {
			continue
		}
		seen[i] = true
		queue := []Cell{g.CellAt(i)}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(queue[qi]) {
				if ni := g.Index(n); !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether every Open cell lies in a single region.
func (g *Grid) Connected() bool {
	return len(g.Components()) <= 1
}
