package mst

import (
	"errors"

	"github.com/katalvlaran/lvmaze/core"
)

var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrDisconnected indicates the candidate passages cannot span every cell.
	ErrDisconnected = errors.New("mst: candidate graph is disconnected")

	// ErrUnknownPosition indicates a position outside the partition.
	ErrUnknownPosition = errors.New("mst: position not in partition")

	// ErrUnknownMethod indicates an unsupported Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// Method names a spanning-tree algorithm.
type Method string

const (
	// MethodKruskal sorts all passages and joins partition classes.
	MethodKruskal Method = "kruskal"
	// MethodPrim grows the tree outward from Root with a min-heap.
	MethodPrim Method = "prim"
)

// Options configures a spanning-tree run.
type Options struct {
	// Method selects the algorithm used by Compute.
	Method Method

	// PathCompression repoints every position on a find walk straight at its
	// representative. Off by default; the kept edge set is the same either way.
	PathCompression bool

	// Root is the cell Prim grows from. Kruskal ignores it.
	Root core.Position

	// OnKeep is called for every passage added to the tree, in order.
	OnKeep func(core.EdgeID)

	// OnDiscard is called for every passage detached from the grid, in order.
	OnDiscard func(core.EdgeID)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Kruskal without path compression, rooted at (0,0).
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// WithMethod selects the algorithm for Compute.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithPathCompression enables path compression in Partition.Find.
func WithPathCompression() Option {
	return func(o *Options) { o.PathCompression = true }
}

// WithRoot sets Prim's starting cell.
func WithRoot(p core.Position) Option {
	return func(o *Options) { o.Root = p }
}

// WithOnKeep registers a hook observing kept passages.
func WithOnKeep(fn func(core.EdgeID)) Option {
	return func(o *Options) { o.OnKeep = fn }
}

// WithOnDiscard registers a hook observing detached passages.
func WithOnDiscard(fn func(core.EdgeID)) Option {
	return func(o *Options) { o.OnDiscard = fn }
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result summarizes one spanning-tree run.
type Result struct {
	// Kept lists the tree passages in the order they were accepted.
	Kept []core.EdgeID
	// Discarded lists the detached passages in the order they were dropped.
	Discarded []core.EdgeID
	// TotalWeight is the sum of kept weights.
	TotalWeight float64
}

// Compute dispatches to Kruskal or Prim according to WithMethod.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrim:
		return Prim(g, opts...)
	default:
		return nil, ErrUnknownMethod
	}
}
