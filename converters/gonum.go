package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvmaze/core"
)

// ErrNilGraph indicates a nil source graph.
var ErrNilGraph = errors.New("converters: graph is nil")

// ToGonum exports every cell and attached passage of g into a
// simple.WeightedUndirectedGraph. Absent edges weigh +Inf.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for id := 0; id < g.CellCount(); id++ {
		dst.AddNode(simple.Node(id))
	}
	for _, eid := range g.Edges() {
		e, err := g.Edge(eid)
		if err != nil {
			return nil, err
		}
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(e.A), simple.Node(e.B), e.Weight))
	}

	return dst, nil
}

// FromGonum builds a cols×rows core.Graph from the weighted edges of src.
// Node IDs are read as row-major CellIDs; every edge must join adjacent
// cells. Edges are added in ascending (from, to) node order. Node IDs
// outside [0, cols*rows) are rejected.
//
// Errors: core.ErrInvalidDimensions, core.ErrCellNotFound,
// core.ErrNotAdjacent, core.ErrDuplicateEdge.
func FromGonum(src graph.WeightedUndirected, cols, rows int) (*core.Graph, error) {
	dst, err := core.NewGraph(cols, rows)
	if err != nil {
		return nil, err
	}
	n := int64(dst.CellCount())
	nodes := src.Nodes()
	for nodes.Next() {
		if id := nodes.Node().ID(); id < 0 || id >= n {
			return nil, fmt.Errorf("converters: node %d: %w", id, core.ErrCellNotFound)
		}
	}
	for u := int64(0); u < int64(dst.CellCount()); u++ {
		if src.Node(u) == nil {
			continue
		}
		var higher []int64
		to := src.From(u)
		for to.Next() {
			if v := to.Node().ID(); v > u {
				higher = append(higher, v)
			}
		}
		sort.Slice(higher, func(i, j int) bool { return higher[i] < higher[j] })
		for _, v := range higher {
			w, ok := src.Weight(u, v)
			if !ok {
				continue
			}
			if _, err = dst.AddEdge(core.CellID(u), core.CellID(v), w); err != nil {
				return nil, fmt.Errorf("converters: node %d-%d: %w", u, v, err)
			}
		}
	}

	return dst, nil
}
