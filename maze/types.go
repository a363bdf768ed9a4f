package maze

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvmaze/mst"
)

var (
	// ErrInvalidArgument indicates dimensions below 2×2 or a bias outside
	// [-1, 1]. The underlying gridgraph error is wrapped alongside.
	ErrInvalidArgument = errors.New("maze: invalid argument")

	// ErrNotPerfect indicates a graph that is not a spanning tree of its grid.
	ErrNotPerfect = errors.New("maze: not a perfect maze")
)

// Options configures maze generation.
type Options struct {
	// Rand drives edge weights; shared by every Regenerate of the maze.
	Rand *rand.Rand
	// Method picks the spanning-tree algorithm.
	Method mst.Method
	// PathCompression is passed through to Kruskal.
	PathCompression bool
}

// Option mutates Options.
type Option func(*Options)

// WithSeed fixes the random source; 0 keeps the clock-seeded default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed != 0 {
			o.Rand = rand.New(rand.NewSource(seed))
		}
	}
}

// WithRand injects a random source; nil is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithMethod selects Kruskal (default) or Prim.
func WithMethod(m mst.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithPathCompression enables path compression during Kruskal.
func WithPathCompression() Option {
	return func(o *Options) { o.PathCompression = true }
}

func newOptions(opts []Option) Options {
	o := Options{Method: mst.MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// treeOptions translates Options into mst options.
func (o Options) treeOptions() []mst.Option {
	out := []mst.Option{mst.WithMethod(o.Method)}
	if o.PathCompression {
		out = append(out, mst.WithPathCompression())
	}
	return out
}
