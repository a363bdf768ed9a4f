package traverse

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvmaze/core"
)

// Sentinel errors for traversal.
var (
	// ErrNotComplete is returned when a result is requested before the
	// target has been reached.
	ErrNotComplete = errors.New("traverse: search not yet complete")

	// ErrAlreadyComplete is returned when a completed search is stepped.
	ErrAlreadyComplete = errors.New("traverse: search already complete")

	// ErrFrontierExhausted is returned when an automatic search runs out of
	// pending cells before reaching the target. It wraps worklist.ErrEmpty.
	ErrFrontierExhausted = errors.New("traverse: frontier exhausted before reaching target")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")
)

// Kind identifies the traversal variant.
type Kind uint8

const (
	// BreadthFirst is an AutomaticSearch over a Queue.
	BreadthFirst Kind = iota
	// DepthFirst is an AutomaticSearch over a Stack.
	DepthFirst
	// Manual is a ManualSearch.
	Manual
)

// String returns "bfs", "dfs" or "manual".
func (k Kind) String() string {
	switch k {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case Manual:
		return "manual"
	}
	return "unknown"
}

// Traverser is the contract shared by AutomaticSearch and ManualSearch.
// The set of implementations is closed.
type Traverser interface {
	// Complete reports whether the target has been reached.
	Complete() bool
	// SolutionPath returns the start→target route; ErrNotComplete before completion.
	SolutionPath() ([]core.Position, error)
	// WrongMoves returns processed count minus solution length; ErrNotComplete before completion.
	WrongMoves() (int, error)
	// Reset starts a fresh search of the same variant and target from start on g.
	Reset(g *core.Graph, start core.Position) (Traverser, error)
	// Processed returns the cells processed so far, in order.
	Processed() []core.Position
	// Current returns the cell most recently reached.
	Current() core.Position
	// Target returns the goal cell.
	Target() core.Position
	// Kind returns the variant.
	Kind() Kind

	sealed()
}

// Options holds hooks and context shared by both searches.
type Options struct {
	// Ctx bounds AutomaticSearch.Run.
	Ctx context.Context

	// OnEnqueue is called when an automatic search adds a cell to its frontier.
	OnEnqueue func(core.Position)

	// OnProcess is called each time a cell is logged as processed.
	OnProcess func(core.Position)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(core.Position) {},
		OnProcess: func(core.Position) {},
	}
}

// WithContext sets the context checked between steps of Run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a frontier hook.
func WithOnEnqueue(fn func(core.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnProcess registers a processed-cell hook.
func WithOnProcess(fn func(core.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProcess = fn
		}
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// positions maps cell IDs to their coordinates.
func positions(g *core.Graph, ids []core.CellID) []core.Position {
	out := make([]core.Position, len(ids))
	for i, id := range ids {
		out[i] = g.MustPosition(id)
	}
	return out
}
