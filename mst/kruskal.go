package mst

import (
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Kruskal reduces the attached passages of g to a minimum spanning tree,
// detaching every passage that is not kept.
//
// Steps:
//  1. Reject nil graphs and grids whose passages do not reach every cell.
//  2. Sort attached passages by ascending weight (stable on EdgeID).
//  3. Put every position into its own Partition class.
//  4. For each passage: if its endpoints have different representatives,
//     keep it and Union the endpoints; otherwise detach it.
//  5. Stop once cells-1 passages are kept and detach the rest.
//
// Errors: ErrGraphNil, ErrDisconnected, core errors from RemoveEdge.
// Complexity: O(E log E + E·W) where W is the Find walk length
// (O(V) worst case, near O(1) with path compression).
func Kruskal(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := newOptions(opts...)
	n := g.CellCount()
	if len(gridgraph.Regions(g)) != 1 {
		return nil, ErrDisconnected
	}

	edges := g.Edges()
	g.SortByWeight(edges)

	positions := make([]core.Position, n)
	for i := range positions {
		positions[i] = g.MustPosition(core.CellID(i))
	}
	part := NewPartition(positions, o.PathCompression)

	res := &Result{Kept: make([]core.EdgeID, 0, n-1)}
	i := 0
	for ; i < len(edges) && len(res.Kept) < n-1; i++ {
		id := edges[i]
		k, err := g.Key(id)
		if err != nil {
			return nil, err
		}
		joined, err := part.Union(k.Lo, k.Hi)
		if err != nil {
			return nil, err
		}
		if joined {
			if err = keep(g, id, res, o); err != nil {
				return nil, err
			}
			continue
		}
		if err = discard(g, id, res, o); err != nil {
			return nil, err
		}
	}
	for ; i < len(edges); i++ {
		if err := discard(g, edges[i], res, o); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func keep(g *core.Graph, id core.EdgeID, res *Result, o Options) error {
	e, err := g.Edge(id)
	if err != nil {
		return err
	}
	res.Kept = append(res.Kept, id)
	res.TotalWeight += e.Weight
	if o.OnKeep != nil {
		o.OnKeep(id)
	}
	return nil
}

func discard(g *core.Graph, id core.EdgeID, res *Result, o Options) error {
	if err := g.RemoveEdge(id); err != nil {
		return err
	}
	res.Discarded = append(res.Discarded, id)
	if o.OnDiscard != nil {
		o.OnDiscard(id)
	}
	return nil
}
