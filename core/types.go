// File: types.go
// Role: Sentinel errors, handles and the Graph arena.
//
// Errors:
//
//	ErrInvalidDimensions - grid with fewer than one row or column.
//	ErrCellNotFound      - position or CellID outside the grid.
//	ErrEdgeNotFound      - EdgeID unknown or already detached.
//	ErrSelfLoop          - edge from a cell to itself.
//	ErrNotAdjacent       - cells are not one unit step apart.
//	ErrDuplicateEdge     - an edge between the two positions is already attached.
//	ErrNoNeighbor        - no passage in the requested direction.
//	ErrNotEndpoint       - cell is not an endpoint of the edge.
//	ErrInconsistent      - an edge is referenced by only one endpoint.

package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidDimensions indicates a grid with no rows or no columns.
	ErrInvalidDimensions = errors.New("core: grid must have at least one row and one column")

	// ErrCellNotFound indicates a position or CellID outside the grid.
	ErrCellNotFound = errors.New("core: cell not found")

	// ErrEdgeNotFound indicates an unknown or already detached edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same cell.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNotAdjacent indicates two cells that are not orthogonal unit neighbors.
	ErrNotAdjacent = errors.New("core: cells are not adjacent")

	// ErrDuplicateEdge indicates a second edge toward the same neighboring position.
	ErrDuplicateEdge = errors.New("core: edge already exists in cell")

	// ErrNoNeighbor indicates there is no passage in the requested direction.
	ErrNoNeighbor = errors.New("core: no neighbor in that direction")

	// ErrNotEndpoint indicates a cell that the edge does not connect.
	ErrNotEndpoint = errors.New("core: cell is not an endpoint of the edge")

	// ErrInconsistent indicates an edge that only one of its endpoints references.
	ErrInconsistent = errors.New("core: edge/cell references are inconsistent")
)

// CellID addresses a cell inside its Graph. IDs are row-major: y*cols + x.
type CellID int

// EdgeID addresses an edge inside its Graph. IDs are assigned in creation
// order and never reused.
type EdgeID int

// Cell is one square of the grid.
//
// edges holds the incident, still attached edges in insertion order; a cell
// never holds two edges toward the same neighboring position.
type Cell struct {
	// Pos is the cell's grid coordinate.
	Pos Position

	edges []EdgeID
}

// Edge is an undirected passage between two adjacent cells.
type Edge struct {
	// ID is the edge's handle.
	ID EdgeID

	// A and B are the endpoints in the order they were given to AddEdge.
	A, B CellID

	// Weight orders edges during maze generation and is otherwise unused.
	Weight float64

	detached bool
}

// Graph is the arena holding every cell of a cols×rows grid and every edge
// ever added between them.
//
// Graph is not safe for concurrent use.
type Graph struct {
	cols, rows int

	cells []Cell
	edges []Edge // indexed by EdgeID; detached edges stay as tombstones

	live  int                // attached edge count
	byKey map[EdgeKey]EdgeID // attached edges by canonical endpoint pair
}

// NewGraph allocates a cols×rows grid of cells with no edges.
// Cell (x,y) receives CellID y*cols+x.
// Complexity: O(cols×rows).
func NewGraph(cols, rows int) (*Graph, error) {
	if cols < 1 || rows < 1 {
		return nil, ErrInvalidDimensions
	}
	g := &Graph{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
		byKey: make(map[EdgeKey]EdgeID),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.cells[y*cols+x] = Cell{Pos: Position{X: x, Y: y}}
		}
	}

	return g, nil
}

// Cols returns the grid width.
func (g *Graph) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Graph) Rows() int { return g.rows }

// CellCount returns cols×rows.
func (g *Graph) CellCount() int { return len(g.cells) }
