package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvmaze/converters"
	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/mst"
)

var (
	p00 = core.Position{X: 0, Y: 0}
	p10 = core.Position{X: 1, Y: 0}
	p01 = core.Position{X: 0, Y: 1}
	p11 = core.Position{X: 1, Y: 1}
)

// fixedSquare is the 2×2 grid with passages weighing 50, 40, 30 and 100.
func fixedSquare(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(2, 2)
	require.NoError(t, err)
	for _, e := range []struct {
		a, b core.Position
		w    float64
	}{
		{p00, p10, 50},
		{p00, p01, 40},
		{p10, p11, 30},
		{p01, p11, 100},
	} {
		_, err = g.AddEdgeAt(e.a, e.b, e.w)
		require.NoError(t, err)
	}
	return g
}

// assertPerfect checks cells-1 passages forming a single region.
func assertPerfect(t *testing.T, g *core.Graph) {
	t.Helper()
	assert.Equal(t, g.CellCount()-1, g.EdgeCount())
	assert.Len(t, gridgraph.Regions(g), 1)
}

func TestKruskal_FixedSquare(t *testing.T) {
	g := fixedSquare(t)
	var discarded []core.EdgeID
	res, err := mst.Kruskal(g, mst.WithOnDiscard(func(id core.EdgeID) { discarded = append(discarded, id) }))
	require.NoError(t, err)

	assert.Equal(t, []core.EdgeID{2, 1, 0}, res.Kept, "ascending weight 30, 40, 50")
	assert.Equal(t, []core.EdgeID{3}, res.Discarded)
	assert.Equal(t, res.Discarded, discarded)
	assert.Equal(t, 120.0, res.TotalWeight)

	bottomLeft, _ := g.CellAt(p01)
	assert.False(t, g.HasNeighbor(bottomLeft, core.Right), "(0,1) no longer reaches (1,1)")
	assert.True(t, g.HasNeighbor(bottomLeft, core.Up), "(0,1) still reaches (0,0)")

	rec, _ := g.Edge(3)
	assert.True(t, rec.Detached())
	assertPerfect(t, g)
}

func TestPrim_FixedSquare(t *testing.T) {
	g := fixedSquare(t)
	res, err := mst.Prim(g, mst.WithRoot(p11))
	require.NoError(t, err)

	assert.Equal(t, []core.EdgeID{2, 0, 1}, res.Kept, "grown from (1,1): 30, 50, 40")
	assert.Equal(t, []core.EdgeID{3}, res.Discarded)
	assert.Equal(t, 120.0, res.TotalWeight)
	assertPerfect(t, g)
}

// TestSpanningTree_Random checks the tree property across sizes and biases.
func TestSpanningTree_Random(t *testing.T) {
	for _, method := range []mst.Method{mst.MethodKruskal, mst.MethodPrim} {
		for _, bias := range []float64{-1, 0, 0.7} {
			for _, dims := range [][2]int{{2, 2}, {7, 3}, {10, 10}} {
				g, err := gridgraph.NewCandidateGraph(dims[0], dims[1], gridgraph.WithBias(bias), gridgraph.WithSeed(17))
				require.NoError(t, err)
				total := g.EdgeCount()

				res, err := mst.Compute(g, mst.WithMethod(method))
				require.NoError(t, err, "%s %v %v", method, bias, dims)
				assert.Len(t, res.Kept, g.CellCount()-1)
				assert.Len(t, res.Discarded, total-len(res.Kept))
				assertPerfect(t, g)
			}
		}
	}
}

// TestPathCompression_SameTree: compression changes walks, not the result.
func TestPathCompression_SameTree(t *testing.T) {
	g1, err := gridgraph.NewCandidateGraph(12, 9, gridgraph.WithSeed(4))
	require.NoError(t, err)
	g2 := g1.Clone()

	r1, err := mst.Kruskal(g1)
	require.NoError(t, err)
	r2, err := mst.Kruskal(g2, mst.WithPathCompression())
	require.NoError(t, err)
	assert.Equal(t, r1.Kept, r2.Kept)
	assert.Equal(t, r1.Discarded, r2.Discarded)
}

// TestAgreesWithGonum compares tree weights with gonum's Kruskal and Prim.
func TestAgreesWithGonum(t *testing.T) {
	cand, err := gridgraph.NewCandidateGraph(9, 6, gridgraph.WithSeed(2024), gridgraph.WithBias(-0.3))
	require.NoError(t, err)
	ref, err := converters.ToGonum(cand)
	require.NoError(t, err)
	want := path.Kruskal(simple.NewWeightedUndirectedGraph(0, 0), ref)

	kg, pg := cand.Clone(), cand.Clone()
	kr, err := mst.Kruskal(kg)
	require.NoError(t, err)
	pr, err := mst.Prim(pg, mst.WithRoot(core.Position{X: 4, Y: 3}))
	require.NoError(t, err)

	assert.InDelta(t, want, kr.TotalWeight, 1e-9)
	assert.InDelta(t, want, pr.TotalWeight, 1e-9)
	// random float weights are distinct, so the tree is unique
	assert.ElementsMatch(t, kr.Kept, pr.Kept)
}

func TestErrors(t *testing.T) {
	_, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrGraphNil)
	_, err = mst.Prim(nil)
	assert.ErrorIs(t, err, mst.ErrGraphNil)

	g, _ := core.NewGraph(3, 1)
	_, _ = g.AddEdgeAt(core.Position{X: 0}, core.Position{X: 1}, 1)
	_, err = mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, err = mst.Prim(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Equal(t, 1, g.EdgeCount(), "disconnected input is left untouched")

	sq := fixedSquare(t)
	_, err = mst.Prim(sq, mst.WithRoot(core.Position{X: 5}))
	assert.ErrorIs(t, err, core.ErrCellNotFound)
	_, err = mst.Compute(sq, mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}
