package gridgraph_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// TestNewCandidateGraph_Errors rejects undersized grids and bad bias.
func TestNewCandidateGraph_Errors(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows int
		opts       []gridgraph.Option
		err        error
	}{
		{"OneColumn", 1, 5, nil, gridgraph.ErrInvalidDimensions},
		{"OneRow", 5, 1, nil, gridgraph.ErrInvalidDimensions},
		{"Zero", 0, 0, nil, gridgraph.ErrInvalidDimensions},
		{"BiasHigh", 3, 3, []gridgraph.Option{gridgraph.WithBias(1.5)}, gridgraph.ErrInvalidBias},
		{"BiasLow", 3, 3, []gridgraph.Option{gridgraph.WithBias(-1.01)}, gridgraph.ErrInvalidBias},
		{"BiasNaN", 3, 3, []gridgraph.Option{gridgraph.WithBias(math.NaN())}, gridgraph.ErrInvalidBias},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewCandidateGraph(tc.cols, tc.rows, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewCandidateGraph(%d,%d) error = %v; want %v", tc.cols, tc.rows, err, tc.err)
			}
		})
	}
}

// TestCandidateOrder pins the creation order on a 3×2 grid.
func TestCandidateOrder(t *testing.T) {
	g, err := gridgraph.NewCandidateGraph(3, 2, gridgraph.WithSeed(1))
	require.NoError(t, err)

	p := func(x, y int) core.Position { return core.Position{X: x, Y: y} }
	want := []core.EdgeKey{
		core.KeyOf(p(0, 0), p(1, 0)),
		core.KeyOf(p(1, 0), p(2, 0)),
		core.KeyOf(p(0, 0), p(0, 1)),
		core.KeyOf(p(0, 1), p(1, 1)),
		core.KeyOf(p(1, 0), p(1, 1)),
		core.KeyOf(p(1, 1), p(2, 1)),
		core.KeyOf(p(2, 0), p(2, 1)),
	}
	ids := g.Edges()
	require.Len(t, ids, gridgraph.CandidateCount(3, 2))
	for i, id := range ids {
		k, err := g.Key(id)
		require.NoError(t, err)
		assert.Equal(t, want[i], k, "edge %d", i)
	}
}

// TestEveryAdjacentPairJoined checks degree and count on several sizes.
func TestEveryAdjacentPairJoined(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {5, 3}, {4, 7}} {
		cols, rows := dims[0], dims[1]
		g, err := gridgraph.NewCandidateGraph(cols, rows, gridgraph.WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, gridgraph.CandidateCount(cols, rows), g.EdgeCount())

		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				c, _ := g.CellAt(core.Position{X: x, Y: y})
				for _, d := range core.Directions {
					want := g.InBounds(core.Position{X: x, Y: y}.Add(d.Offset()))
					assert.Equal(t, want, g.HasNeighbor(c, d), "cell (%d,%d) %s", x, y, d)
				}
			}
		}
	}
}

// TestBiasedWeightRanges: weights stay inside the shifted ranges.
func TestBiasedWeightRanges(t *testing.T) {
	for _, bias := range []float64{-1, -0.5, 0, 0.5, 1} {
		g, err := gridgraph.NewCandidateGraph(6, 6, gridgraph.WithBias(bias), gridgraph.WithSeed(11))
		require.NoError(t, err)
		shift := gridgraph.BiasScale * bias
		for _, id := range g.Edges() {
			e, _ := g.Edge(id)
			vertical, _ := g.Vertical(id)
			lo, hi := gridgraph.MinBaseWeight+shift, gridgraph.MaxBaseWeight+shift
			if vertical {
				lo, hi = gridgraph.MinBaseWeight-shift, gridgraph.MaxBaseWeight-shift
			}
			assert.GreaterOrEqual(t, e.Weight, lo, "bias %v", bias)
			assert.Less(t, e.Weight, hi, "bias %v", bias)
		}
	}
}

// TestSeedReproducible: equal seeds give equal weights.
func TestSeedReproducible(t *testing.T) {
	g1, err := gridgraph.NewCandidateGraph(4, 4, gridgraph.WithSeed(99))
	require.NoError(t, err)
	g2, err := gridgraph.NewCandidateGraph(4, 4, gridgraph.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	for _, id := range g1.Edges() {
		assert.True(t, core.EdgesEqual(g1, id, g2, id))
	}
}

// TestWithWeightFn overrides the random weights.
func TestWithWeightFn(t *testing.T) {
	flat := func(_ *rand.Rand, a, b core.Position) float64 { return float64(a.X + b.X) }
	g, err := gridgraph.NewCandidateGraph(2, 2, gridgraph.WithWeightFn(flat))
	require.NoError(t, err)
	e, _ := g.Edge(g.Edges()[0])
	assert.Equal(t, 1.0, e.Weight)
}

// TestRegions groups cells joined by passages.
func TestRegions(t *testing.T) {
	g, _ := core.NewGraph(3, 2)
	require.Len(t, gridgraph.Regions(g), 6, "no passages: every cell alone")

	_, _ = g.AddEdgeAt(core.Position{X: 0, Y: 0}, core.Position{X: 1, Y: 0}, 1)
	_, _ = g.AddEdgeAt(core.Position{X: 1, Y: 0}, core.Position{X: 1, Y: 1}, 1)
	regions := gridgraph.Regions(g)
	require.Len(t, regions, 4)
	assert.ElementsMatch(t, []core.CellID{0, 1, 4}, regions[0])

	full, err := gridgraph.NewCandidateGraph(3, 2, gridgraph.WithSeed(5))
	require.NoError(t, err)
	assert.Len(t, gridgraph.Regions(full), 1)
}
