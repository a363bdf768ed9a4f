package gridgraph

import "github.com/katalvlaran/lvmaze/core"

// Regions partitions the cells of g into groups joined by attached passages.
// Each region lists CellIDs in discovery order; regions are ordered by their
// lowest CellID. A spanning maze has exactly one region.
//
// Time:   O(V + E).
// Memory: O(V).
func Regions(g *core.Graph) [][]core.CellID {
	total := g.CellCount()
	seen := make([]bool, total)
	var regions [][]core.CellID

	for start := 0; start < total; start++ {
		if seen[start] {
			continue
		}
		queue := []core.CellID{core.CellID(start)}
		seen[start] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range core.Directions {
				v, err := g.Neighbor(u, d)
				if err != nil || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}
