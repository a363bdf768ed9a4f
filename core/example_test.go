package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// ExampleGraph carves a short corridor and walks it.
func ExampleGraph() {
	g, _ := core.NewGraph(3, 1)
	_, _ = g.AddEdgeAt(core.Position{X: 0, Y: 0}, core.Position{X: 1, Y: 0}, 1)
	_, _ = g.AddEdgeAt(core.Position{X: 1, Y: 0}, core.Position{X: 2, Y: 0}, 1)

	c, _ := g.CellAt(core.Position{X: 0, Y: 0})
	for g.HasNeighbor(c, core.Right) {
		c, _ = g.Neighbor(c, core.Right)
		fmt.Println(g.MustPosition(c))
	}
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// (1,0)
	// (2,0)
	// edges: 2
}
