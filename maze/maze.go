package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/mst"
	"github.com/katalvlaran/lvmaze/traverse"
)

// Maze is a perfect maze over a cols×rows grid. Searches start at (0,0) and
// aim for (cols-1, rows-1).
//
// A Maze is immutable once built; Regenerate returns a new one.
type Maze struct {
	g      *core.Graph
	bias   float64
	opts   Options
	result *mst.Result
}

// New generates a random rows×cols maze. bias in [-1, 1] favors vertical
// passages when positive and horizontal ones when negative.
//
// Errors: ErrInvalidArgument (wrapping gridgraph.ErrInvalidDimensions or
// gridgraph.ErrInvalidBias).
func New(rows, cols int, bias float64, opts ...Option) (*Maze, error) {
	o := newOptions(opts)
	cand, err := gridgraph.NewCandidateGraph(cols, rows,
		gridgraph.WithBias(bias),
		gridgraph.WithRand(o.Rand),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return build(cand, bias, o)
}

// FromGraph carves a maze out of a caller-built candidate graph whose
// weights are already set. g is cloned and left untouched.
//
// Errors: ErrInvalidArgument for grids under 2×2; mst.ErrDisconnected.
func FromGraph(g *core.Graph, opts ...Option) (*Maze, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidArgument)
	}
	if g.Cols() < 2 || g.Rows() < 2 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, gridgraph.ErrInvalidDimensions)
	}
	return build(g.Clone(), 0, newOptions(opts))
}

func build(cand *core.Graph, bias float64, o Options) (*Maze, error) {
	res, err := mst.Compute(cand, o.treeOptions()...)
	if err != nil {
		return nil, err
	}
	return &Maze{g: cand, bias: bias, opts: o, result: res}, nil
}

// Regenerate returns a new random maze with the same dimensions, random
// source and method, and the given bias.
func (m *Maze) Regenerate(bias float64) (*Maze, error) {
	return New(m.g.Rows(), m.g.Cols(), bias,
		WithRand(m.opts.Rand),
		WithMethod(m.opts.Method),
		func(o *Options) { o.PathCompression = m.opts.PathCompression },
	)
}

// Start returns (0,0).
func (m *Maze) Start() core.Position { return core.Position{} }

// Target returns the bottom-right cell.
func (m *Maze) Target() core.Position {
	return core.Position{X: m.g.Cols() - 1, Y: m.g.Rows() - 1}
}

// Dimensions returns (cols, rows).
func (m *Maze) Dimensions() (cols, rows int) { return m.g.Cols(), m.g.Rows() }

// Bias returns the bias the maze was generated with.
func (m *Maze) Bias() float64 { return m.bias }

// Graph returns the maze's passages. Callers must not mutate it.
func (m *Maze) Graph() *core.Graph { return m.g }

// Passages returns the kept passages in the order generation accepted them.
func (m *Maze) Passages() []core.EdgeID {
	out := make([]core.EdgeID, len(m.result.Kept))
	copy(out, m.result.Kept)
	return out
}

// Walls returns the number of candidate passages generation detached.
func (m *Maze) Walls() int { return len(m.result.Discarded) }

// TotalWeight returns the summed weight of kept passages.
func (m *Maze) TotalWeight() float64 { return m.result.TotalWeight }

// BeginAutomaticSearch starts a breadth-first (true) or depth-first (false)
// search from Start to Target.
func (m *Maze) BeginAutomaticSearch(breadthFirst bool, opts ...traverse.Option) (*traverse.AutomaticSearch, error) {
	if breadthFirst {
		return traverse.NewBreadthFirst(m.g, m.Start(), m.Target(), opts...)
	}
	return traverse.NewDepthFirst(m.g, m.Start(), m.Target(), opts...)
}

// BeginManualSearch places a player on Start.
func (m *Maze) BeginManualSearch(opts ...traverse.Option) (*traverse.ManualSearch, error) {
	return traverse.NewManualSearch(m.g, m.Start(), m.Target(), opts...)
}
