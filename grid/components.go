package grid

// Components finds all contiguous regions of open cells under orthogonal
// connectivity. Components are listed in row-major order of their first
// cell; cells within a component appear in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			root := Cell{Row: r, Col: c}
			if !g.open[r][c] || seen[g.index(root)] {
				continue
			}
			queue := []int{g.index(root)}
			seen[queue[0]] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				u := g.coordinate(queue[qi])
				comp = append(comp, u)
				for _, v := range g.Neighbors(u) {
					vi := g.index(v)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// open region.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	for _, comp := range g.Components() {
		var hasA, hasB bool
		for _, c := range comp {
			hasA = hasA || c == a
			hasB = hasB || c == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}
