package gridgraph

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/lvmaze/core"
)

// Weight range drawn for every candidate passage before the bias shift.
const (
	MinBaseWeight = 25.0
	MaxBaseWeight = 75.0
	// BiasScale is the largest shift a bias of ±1 applies to a weight.
	BiasScale = 25.0
)

// WeightFn assigns a generation weight to the candidate passage between
// adjacent positions a and b.
type WeightFn func(rng *rand.Rand, a, b core.Position) float64

// GridOptions configures candidate graph construction.
type GridOptions struct {
	// Rand supplies randomness to Weight. Nil means a clock-seeded source.
	Rand *rand.Rand
	// Weight overrides the biased weight function.
	Weight WeightFn
	// Bias feeds the default weight function; ignored when Weight is set.
	Bias float64
}

// Option mutates GridOptions.
type Option func(*GridOptions)

// DefaultGridOptions returns unbiased weights over a clock-seeded source.
func DefaultGridOptions() GridOptions {
	return GridOptions{}
}

// WithBias sets the direction bias, in [-1, 1].
func WithBias(bias float64) Option {
	return func(o *GridOptions) { o.Bias = bias }
}

// WithSeed fixes the random source. Seed 0 keeps the clock-seeded default.
func WithSeed(seed int64) Option {
	return func(o *GridOptions) {
		if seed != 0 {
			o.Rand = rand.New(rand.NewSource(seed))
		}
	}
}

// WithRand injects a random source; nil is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *GridOptions) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithWeightFn replaces the biased weight function, e.g. with fixed
// weights for tests.
func WithWeightFn(fn WeightFn) Option {
	return func(o *GridOptions) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

func newGridOptions(opts ...Option) GridOptions {
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
