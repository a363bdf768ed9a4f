// File: methods_edges.go
// Role: Edge attachment, detachment and inspection.
// Determinism:
//   - Edges() returns IDs in ascending (creation) order.
// Invariant:
//   - An attached edge is listed by both endpoints; a detached edge by neither.

package core

import (
	"fmt"
	"sort"
)

// AddEdge creates an undirected edge of weight w between cells a and b and
// attaches it to both endpoints.
//
// Errors:
//   - ErrCellNotFound if either cell is unknown.
//   - ErrSelfLoop if a == b.
//   - ErrNotAdjacent if the cells are not one unit step apart.
//   - ErrDuplicateEdge if an edge between the two positions is already attached.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b CellID, w float64) (EdgeID, error) {
	if !g.HasCell(a) || !g.HasCell(b) {
		return 0, fmt.Errorf("%w: edge %d-%d", ErrCellNotFound, a, b)
	}
	if a == b {
		return 0, ErrSelfLoop
	}
	pa, pb := g.cells[a].Pos, g.cells[b].Pos
	if Manhattan(pa, pb) != 1 {
		return 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, pa, pb)
	}
	key := KeyOf(pa, pb)
	if _, dup := g.byKey[key]; dup {
		return 0, fmt.Errorf("%w: %v", ErrDuplicateEdge, key)
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{ID: id, A: a, B: b, Weight: w})
	g.cells[a].edges = append(g.cells[a].edges, id)
	g.cells[b].edges = append(g.cells[b].edges, id)
	g.byKey[key] = id
	g.live++

	return id, nil
}

// AddEdgeAt is AddEdge addressed by positions.
func (g *Graph) AddEdgeAt(pa, pb Position, w float64) (EdgeID, error) {
	a, err := g.CellAt(pa)
	if err != nil {
		return 0, err
	}
	b, err := g.CellAt(pb)
	if err != nil {
		return 0, err
	}
	return g.AddEdge(a, b, w)
}

// RemoveEdge detaches e from both endpoints. Either both adjacency lists
// lose the edge or, on error, neither changes.
//
// Errors: ErrEdgeNotFound, ErrInconsistent.
// Complexity: O(deg) with deg ≤ 4.
func (g *Graph) RemoveEdge(e EdgeID) error {
	if !g.HasEdge(e) {
		return fmt.Errorf("%w: id %d", ErrEdgeNotFound, e)
	}
	edge := &g.edges[e]
	ia := indexOf(g.cells[edge.A].edges, e)
	ib := indexOf(g.cells[edge.B].edges, e)
	if ia < 0 || ib < 0 {
		return fmt.Errorf("%w: edge %d", ErrInconsistent, e)
	}
	g.cells[edge.A].edges = removeAt(g.cells[edge.A].edges, ia)
	g.cells[edge.B].edges = removeAt(g.cells[edge.B].edges, ib)
	edge.detached = true
	delete(g.byKey, KeyOf(g.cells[edge.A].Pos, g.cells[edge.B].Pos))
	g.live--

	return nil
}

// HasEdge reports whether e exists and is still attached.
func (g *Graph) HasEdge(e EdgeID) bool {
	return e >= 0 && int(e) < len(g.edges) && !g.edges[e].detached
}

// Edge returns a copy of the edge record. Detached edges remain readable.
func (g *Graph) Edge(e EdgeID) (Edge, error) {
	if e < 0 || int(e) >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: id %d", ErrEdgeNotFound, e)
	}
	return g.edges[e], nil
}

// Detached reports whether e was removed from the graph.
func (e Edge) Detached() bool { return e.detached }

// Edges returns the IDs of all attached edges in ascending order.
func (g *Graph) Edges() []EdgeID {
	out := make([]EdgeID, 0, g.live)
	for i := range g.edges {
		if !g.edges[i].detached {
			out = append(out, g.edges[i].ID)
		}
	}
	return out
}

// EdgeCount returns the number of attached edges.
func (g *Graph) EdgeCount() int { return g.live }

// EdgeBetween returns the attached edge joining positions pa and pb.
func (g *Graph) EdgeBetween(pa, pb Position) (EdgeID, bool) {
	id, ok := g.byKey[KeyOf(pa, pb)]
	return id, ok
}

// Other returns the endpoint of e opposite to c.
//
// Errors: ErrEdgeNotFound, ErrNotEndpoint.
func (g *Graph) Other(e EdgeID, c CellID) (CellID, error) {
	if e < 0 || int(e) >= len(g.edges) {
		return 0, fmt.Errorf("%w: id %d", ErrEdgeNotFound, e)
	}
	edge := g.edges[e]
	switch c {
	case edge.A:
		return edge.B, nil
	case edge.B:
		return edge.A, nil
	}
	return 0, fmt.Errorf("%w: cell %d, edge %d", ErrNotEndpoint, c, e)
}

// Key returns the canonical endpoint pair of e.
func (g *Graph) Key(e EdgeID) (EdgeKey, error) {
	if e < 0 || int(e) >= len(g.edges) {
		return EdgeKey{}, fmt.Errorf("%w: id %d", ErrEdgeNotFound, e)
	}
	edge := g.edges[e]
	return KeyOf(g.cells[edge.A].Pos, g.cells[edge.B].Pos), nil
}

// Vertical reports whether e joins two cells of the same column.
func (g *Graph) Vertical(e EdgeID) (bool, error) {
	k, err := g.Key(e)
	if err != nil {
		return false, err
	}
	return k.Lo.X == k.Hi.X, nil
}

// EdgesEqual reports whether two edges carry the same weight and join the
// same pair of positions, regardless of endpoint order.
func EdgesEqual(g1 *Graph, e1 EdgeID, g2 *Graph, e2 EdgeID) bool {
	k1, err := g1.Key(e1)
	if err != nil {
		return false
	}
	k2, err := g2.Key(e2)
	if err != nil {
		return false
	}
	return k1 == k2 && g1.edges[e1].Weight == g2.edges[e2].Weight
}

// SortByWeight orders ids by ascending edge weight. Equal weights keep their
// relative order, so the result is deterministic for a given input order.
func (g *Graph) SortByWeight(ids []EdgeID) {
	sort.SliceStable(ids, func(i, j int) bool {
		return g.edges[ids[i]].Weight < g.edges[ids[j]].Weight
	})
}

func indexOf(ids []EdgeID, e EdgeID) int {
	for i, id := range ids {
		if id == e {
			return i
		}
	}
	return -1
}

// removeAt deletes ids[i] keeping order.
func removeAt(ids []EdgeID, i int) []EdgeID {
	copy(ids[i:], ids[i+1:])
	return ids[:len(ids)-1]
}
