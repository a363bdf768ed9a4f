package maze

import (
	"fmt"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvmaze/converters"
)

// Validate checks the spanning-tree property: exactly cells-1 passages and
// a single connected component. Connectivity is computed by gonum over the
// exported graph, independently of the generator's own bookkeeping.
func (m *Maze) Validate() error {
	n := m.g.CellCount()
	if got := m.g.EdgeCount(); got != n-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrNotPerfect, got, n)
	}
	gg, err := converters.ToGonum(m.g)
	if err != nil {
		return err
	}
	if comps := topo.ConnectedComponents(gg); len(comps) != 1 {
		return fmt.Errorf("%w: %d components", ErrNotPerfect, len(comps))
	}
	return nil
}
