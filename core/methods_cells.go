// File: methods_cells.go
// Role: Cell lookup and neighbor navigation over attached edges.
// Determinism:
//   - IncidentEdges preserves insertion order.
//   - Openings is indexed by Direction.

package core

import "fmt"

// InBounds reports whether p lies on the grid.
func (g *Graph) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// CellAt returns the CellID at position p.
// Complexity: O(1).
func (g *Graph) CellAt(p Position) (CellID, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v", ErrCellNotFound, p)
	}
	return CellID(p.Y*g.cols + p.X), nil
}

// HasCell reports whether c addresses a cell of g.
func (g *Graph) HasCell(c CellID) bool { return c >= 0 && int(c) < len(g.cells) }

// Position returns the coordinate of cell c.
func (g *Graph) Position(c CellID) (Position, error) {
	if !g.HasCell(c) {
		return Position{}, fmt.Errorf("%w: id %d", ErrCellNotFound, c)
	}
	return g.cells[c].Pos, nil
}

// MustPosition is Position for IDs already known to be valid.
// It panics on an unknown CellID.
func (g *Graph) MustPosition(c CellID) Position {
	p, err := g.Position(c)
	if err != nil {
		panic(err)
	}
	return p
}

// IncidentEdges returns a copy of c's attached edges in insertion order.
func (g *Graph) IncidentEdges(c CellID) ([]EdgeID, error) {
	if !g.HasCell(c) {
		return nil, fmt.Errorf("%w: id %d", ErrCellNotFound, c)
	}
	out := make([]EdgeID, len(g.cells[c].edges))
	copy(out, g.cells[c].edges)

	return out, nil
}

// edgeToward returns the attached edge of c leading to position target.
// Complexity: O(deg(c)) with deg ≤ 4.
func (g *Graph) edgeToward(c CellID, target Position) (EdgeID, bool) {
	for _, eid := range g.cells[c].edges {
		e := &g.edges[eid]
		other := e.A
		if other == c {
			other = e.B
		}
		if g.cells[other].Pos == target {
			return eid, true
		}
	}
	return 0, false
}

// HasNeighbor reports whether c has an attached edge in direction d.
// Unknown cells and invalid directions have no neighbors.
func (g *Graph) HasNeighbor(c CellID, d Direction) bool {
	if !g.HasCell(c) || !d.Valid() {
		return false
	}
	_, ok := g.edgeToward(c, g.cells[c].Pos.Add(d.Offset()))
	return ok
}

// Neighbor returns the cell reached from c by moving in direction d through
// an attached edge.
//
// Errors: ErrCellNotFound, ErrInvalidDirection, ErrNoNeighbor.
func (g *Graph) Neighbor(c CellID, d Direction) (CellID, error) {
	if !g.HasCell(c) {
		return 0, fmt.Errorf("%w: id %d", ErrCellNotFound, c)
	}
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDirection, d)
	}
	target := g.cells[c].Pos.Add(d.Offset())
	eid, ok := g.edgeToward(c, target)
	if !ok {
		return 0, fmt.Errorf("%w: %s of %v", ErrNoNeighbor, d, g.cells[c].Pos)
	}

	return g.Other(eid, c)
}

// Openings reports, per Direction, whether c has a passage that way.
func (g *Graph) Openings(c CellID) [4]bool {
	var open [4]bool
	for _, d := range Directions {
		open[d] = g.HasNeighbor(c, d)
	}
	return open
}

// CellsEqual reports whether two cells sit at the same position and hold
// edges toward the same set of neighboring positions. Cells from different
// graphs may be compared.
func CellsEqual(g1 *Graph, c1 CellID, g2 *Graph, c2 CellID) bool {
	if !g1.HasCell(c1) || !g2.HasCell(c2) {
		return false
	}
	if g1.cells[c1].Pos != g2.cells[c2].Pos {
		return false
	}
	return g1.Openings(c1) == g2.Openings(c2)
}
