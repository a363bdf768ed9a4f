// Grid graph model
//
// core.Graph holds a cols×rows grid of cells and the undirected weighted
// edges between orthogonally adjacent cells. It is the shared data model of
// maze generation (kruskal), maze construction (maze) and search (traverse).
//
// Layout:
//
//	cells  []Cell   row-major, CellID = y*cols + x
//	edges  []Edge   creation order, EdgeID = index; detached edges are tombstones
//	byKey  map      canonical EdgeKey → attached EdgeID
//
// Each Cell lists the EdgeIDs attached to it. AddEdge appends to both
// endpoints; RemoveEdge drops from both, or from neither on error. At most
// one attached edge joins any pair of positions.
//
// Coordinates follow image convention: Position{X: column, Y: row} with
// (0,0) in the top-left corner and y growing downward. Direction Up is
// (0,-1), Down (0,1), Left (-1,0), Right (1,0).
//
// Complexity:
//
//	CellAt, HasEdge, EdgeBetween         O(1)
//	AddEdge, RemoveEdge, Neighbor         O(deg), deg ≤ 4
//	Edges, Clone                          O(V + E)
//
// Concurrency: a Graph is owned by one goroutine; callers that share one
// must synchronize externally.
package core
