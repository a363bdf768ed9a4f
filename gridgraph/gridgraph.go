package gridgraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvmaze/core"
)

// BiasedWeight returns a WeightFn that draws uniformly from
// [MinBaseWeight, MaxBaseWeight), then subtracts BiasScale*bias from
// vertical passages and adds it to horizontal ones. A positive bias makes
// vertical passages cheaper to keep; a negative bias favors horizontal ones.
//
// Returns ErrInvalidBias if bias lies outside [-1, 1] or is NaN.
func BiasedWeight(bias float64) (WeightFn, error) {
	if !(bias >= -1 && bias <= 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBias, bias)
	}
	shift := BiasScale * bias

	return func(rng *rand.Rand, a, b core.Position) float64 {
		w := MinBaseWeight + rng.Float64()*(MaxBaseWeight-MinBaseWeight)
		if a.X == b.X {
			return w - shift
		}
		return w + shift
	}, nil
}

// CandidateCount returns the number of passages between orthogonally
// adjacent cells of a cols×rows grid: rows*(cols-1) + cols*(rows-1).
func CandidateCount(cols, rows int) int {
	return rows*(cols-1) + cols*(rows-1)
}

// NewCandidateGraph builds a cols×rows core.Graph holding every passage
// between orthogonally adjacent cells, weighted by the configured WeightFn.
//
// Edges are created, and thus numbered, in this order:
//  1. the horizontal passages of row 0, left to right;
//  2. for each row y ≥ 1: the vertical passage above (0,y), then for each
//     x ≥ 1 the horizontal passage (x-1,y)-(x,y) followed by the vertical
//     passage (x,y-1)-(x,y).
//
// Errors: ErrInvalidDimensions (cols or rows < 2), ErrInvalidBias.
// Complexity: O(cols×rows) time and memory.
func NewCandidateGraph(cols, rows int, opts ...Option) (*core.Graph, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, cols, rows)
	}
	o := newGridOptions(opts...)
	weight := o.Weight
	if weight == nil {
		var err error
		if weight, err = BiasedWeight(o.Bias); err != nil {
			return nil, err
		}
	}

	g, err := core.NewGraph(cols, rows)
	if err != nil {
		return nil, err
	}
	link := func(a, b core.Position) error {
		_, err := g.AddEdgeAt(a, b, weight(o.Rand, a, b))
		return err
	}

	for x := 1; x < cols; x++ {
		if err = link(core.Position{X: x - 1, Y: 0}, core.Position{X: x, Y: 0}); err != nil {
			return nil, err
		}
	}
	for y := 1; y < rows; y++ {
		if err = link(core.Position{X: 0, Y: y - 1}, core.Position{X: 0, Y: y}); err != nil {
			return nil, err
		}
		for x := 1; x < cols; x++ {
			if err = link(core.Position{X: x - 1, Y: y}, core.Position{X: x, Y: y}); err != nil {
				return nil, err
			}
			if err = link(core.Position{X: x, Y: y - 1}, core.Position{X: x, Y: y}); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
