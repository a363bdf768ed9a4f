// File: methods_clone.go
// Role: Cloning graphs and detaching every edge at once.
// Determinism:
//   - Clone keeps EdgeIDs, including detached tombstones, so IDs taken from
//     the source stay valid on the copy.

package core

// CloneEmpty returns a graph with the same dimensions and no edges.
// Complexity: O(cols×rows).
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		cols:  g.cols,
		rows:  g.rows,
		cells: make([]Cell, len(g.cells)),
		byKey: make(map[EdgeKey]EdgeID),
	}
	for i := range g.cells {
		clone.cells[i] = Cell{Pos: g.cells[i].Pos}
	}

	return clone
}

// Clone returns a deep copy of g: cells, attached edges and tombstones.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for i := range g.cells {
		if n := len(g.cells[i].edges); n > 0 {
			clone.cells[i].edges = make([]EdgeID, n)
			copy(clone.cells[i].edges, g.cells[i].edges)
		}
	}
	for k, id := range g.byKey {
		clone.byKey[k] = id
	}
	clone.live = g.live

	return clone
}

// DetachAll removes every attached edge from its endpoints. Edge records
// stay readable through Edge and report Detached.
// Complexity: O(V + E).
func (g *Graph) DetachAll() {
	for i := range g.edges {
		g.edges[i].detached = true
	}
	for i := range g.cells {
		g.cells[i].edges = nil
	}
	g.byKey = make(map[EdgeKey]EdgeID)
	g.live = 0
}
