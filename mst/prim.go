package mst

import (
	"container/heap"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Prim reduces the attached passages of g to a minimum spanning tree grown
// outward from the Root cell, detaching every passage that is not kept.
//
// Steps:
//  1. Reject nil graphs, an off-grid Root and disconnected grids.
//  2. Mark Root visited and push its passages onto a min-heap.
//  3. Pop the lightest passage; skip it if its far cell is visited,
//     otherwise keep it, visit the far cell and push that cell's passages.
//  4. Once cells-1 passages are kept, detach every passage not kept, in
//     EdgeID order.
//
// Ties break on EdgeID, so equal inputs always yield the same tree.
//
// Errors: ErrGraphNil, core.ErrCellNotFound, ErrDisconnected.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := newOptions(opts...)
	root, err := g.CellAt(o.Root)
	if err != nil {
		return nil, err
	}
	if len(gridgraph.Regions(g)) != 1 {
		return nil, ErrDisconnected
	}

	n := g.CellCount()
	visited := make([]bool, n)
	kept := make(map[core.EdgeID]bool, n-1)
	res := &Result{Kept: make([]core.EdgeID, 0, n-1)}

	pq := &edgePQ{g: g}
	heap.Init(pq)
	push := func(c core.CellID) error {
		visited[c] = true
		incident, err := g.IncidentEdges(c)
		if err != nil {
			return err
		}
		for _, id := range incident {
			far, err := g.Other(id, c)
			if err != nil {
				return err
			}
			if !visited[far] {
				heap.Push(pq, frontierEdge{id: id, far: far})
			}
		}
		return nil
	}
	if err = push(root); err != nil {
		return nil, err
	}

	for pq.Len() > 0 && len(res.Kept) < n-1 {
		fe := heap.Pop(pq).(frontierEdge)
		if visited[fe.far] {
			continue
		}
		kept[fe.id] = true
		if err = keep(g, fe.id, res, o); err != nil {
			return nil, err
		}
		if err = push(fe.far); err != nil {
			return nil, err
		}
	}

	for _, id := range g.Edges() {
		if kept[id] {
			continue
		}
		if err = discard(g, id, res, o); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// frontierEdge is a passage leading from the tree to cell far.
type frontierEdge struct {
	id  core.EdgeID
	far core.CellID
}

// edgePQ is a min-heap of frontier passages ordered by weight, then EdgeID.
type edgePQ struct {
	g     *core.Graph
	items []frontierEdge
}

func (pq edgePQ) Len() int { return len(pq.items) }

func (pq edgePQ) Less(i, j int) bool {
	a, _ := pq.g.Edge(pq.items[i].id)
	b, _ := pq.g.Edge(pq.items[j].id)
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.ID < b.ID
}

func (pq edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(frontierEdge)) }

func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
