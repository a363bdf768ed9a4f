package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/mst"
)

func pos(x, y int) core.Position { return core.Position{X: x, Y: y} }

// fixedMaze is the 2×2 maze whose passages are (0,0)-(1,0), (0,0)-(0,1)
// and (1,0)-(1,1); the wall sits between (0,1) and (1,1).
func fixedMaze(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(2, 2)
	require.NoError(t, err)
	for _, e := range []struct {
		a, b core.Position
		w    float64
	}{
		{pos(0, 0), pos(1, 0), 50},
		{pos(0, 0), pos(0, 1), 40},
		{pos(1, 0), pos(1, 1), 30},
		{pos(0, 1), pos(1, 1), 100},
	} {
		_, err = g.AddEdgeAt(e.a, e.b, e.w)
		require.NoError(t, err)
	}
	_, err = mst.Kruskal(g)
	require.NoError(t, err)
	return g
}

// randomMaze carves a seeded cols×rows maze.
func randomMaze(t testing.TB, cols, rows int, seed int64) *core.Graph {
	t.Helper()
	g, err := gridgraph.NewCandidateGraph(cols, rows, gridgraph.WithSeed(seed))
	require.NoError(t, err)
	_, err = mst.Kruskal(g)
	require.NoError(t, err)
	return g
}
