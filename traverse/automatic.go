package traverse

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/worklist"
)

// AutomaticSearch explores a graph one cell per Step. The WorkList policy
// decides the order: a Queue gives breadth-first, a Stack depth-first.
//
// States: searching and complete. A search whose start equals its target
// begins complete.
type AutomaticSearch struct {
	g             *core.Graph
	start, target core.CellID
	kind          Kind
	frontier      worklist.WorkList[core.CellID]
	cameFrom      map[core.CellID]core.EdgeID // first discovery wins
	processed     []core.CellID
	seen          mapset.Set[core.CellID]
	current       core.CellID
	complete      bool
	opts          Options
	applied       []Option
}

// NewBreadthFirst starts a queue-backed search from start to target.
func NewBreadthFirst(g *core.Graph, start, target core.Position, opts ...Option) (*AutomaticSearch, error) {
	return newAutomatic(g, start, target, BreadthFirst, opts)
}

// NewDepthFirst starts a stack-backed search from start to target.
func NewDepthFirst(g *core.Graph, start, target core.Position, opts ...Option) (*AutomaticSearch, error) {
	return newAutomatic(g, start, target, DepthFirst, opts)
}

func newAutomatic(g *core.Graph, start, target core.Position, kind Kind, opts []Option) (*AutomaticSearch, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s, err := g.CellAt(start)
	if err != nil {
		return nil, err
	}
	t, err := g.CellAt(target)
	if err != nil {
		return nil, err
	}

	a := &AutomaticSearch{
		g:        g,
		start:    s,
		target:   t,
		kind:     kind,
		cameFrom: make(map[core.CellID]core.EdgeID),
		seen:     mapset.New[core.CellID](),
		current:  s,
		opts:     newOptions(opts),
		applied:  opts,
	}
	if kind == DepthFirst {
		a.frontier = worklist.NewStack[core.CellID]()
	} else {
		a.frontier = worklist.NewQueue[core.CellID]()
	}
	if s == t {
		a.record(s)
		a.complete = true
		return a, nil
	}
	a.frontier.Add(s)

	return a, nil
}

// Step processes the next frontier cell.
//
// Errors: ErrAlreadyComplete, ErrFrontierExhausted.
// Complexity: O(deg) with deg ≤ 4.
func (a *AutomaticSearch) Step() error {
	if a.complete {
		return ErrAlreadyComplete
	}
	next, err := a.frontier.Next()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFrontierExhausted, err)
	}
	a.current = next
	a.record(next)
	if next == a.target {
		a.complete = true
		return nil
	}

	incident, err := a.g.IncidentEdges(next)
	if err != nil {
		return err
	}
	for _, eid := range incident {
		far, err := a.g.Other(eid, next)
		if err != nil {
			return err
		}
		if a.seen.Has(far) {
			continue
		}
		a.frontier.Add(far)
		a.opts.OnEnqueue(a.g.MustPosition(far))
		if _, ok := a.cameFrom[far]; !ok {
			a.cameFrom[far] = eid
		}
	}

	return nil
}

// Run steps until the target is reached or the context is done.
func (a *AutomaticSearch) Run() error {
	for !a.complete {
		if err := a.opts.Ctx.Err(); err != nil {
			return err
		}
		if err := a.Step(); err != nil {
			return err
		}
	}
	return nil
}

// record logs c as processed once.
func (a *AutomaticSearch) record(c core.CellID) {
	if a.seen.Has(c) {
		return
	}
	a.seen.Put(c)
	a.processed = append(a.processed, c)
	a.opts.OnProcess(a.g.MustPosition(c))
}

// Complete reports whether the target has been processed.
func (a *AutomaticSearch) Complete() bool { return a.complete }

// SolutionPath walks came-from passages back from the target and returns
// the route in start→target order.
func (a *AutomaticSearch) SolutionPath() ([]core.Position, error) {
	if !a.complete {
		return nil, ErrNotComplete
	}
	route := []core.CellID{a.target}
	for cur := a.target; cur != a.start; {
		eid, ok := a.cameFrom[cur]
		if !ok {
			return nil, fmt.Errorf("traverse: no came-from passage for %v", a.g.MustPosition(cur))
		}
		prev, err := a.g.Other(eid, cur)
		if err != nil {
			return nil, err
		}
		route = append(route, prev)
		cur = prev
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return positions(a.g, route), nil
}

// WrongMoves counts processed cells that are not on the solution path.
func (a *AutomaticSearch) WrongMoves() (int, error) {
	route, err := a.SolutionPath()
	if err != nil {
		return 0, err
	}
	return len(a.processed) - len(route), nil
}

// Reset returns a new search of the same kind toward the same target.
func (a *AutomaticSearch) Reset(g *core.Graph, start core.Position) (Traverser, error) {
	if g == nil {
		g = a.g
	}
	return newAutomatic(g, start, a.Target(), a.kind, a.applied)
}

// Processed returns processed cells in processing order, without duplicates.
func (a *AutomaticSearch) Processed() []core.Position { return positions(a.g, a.processed) }

// Current returns the most recently processed cell, or start before the first step.
func (a *AutomaticSearch) Current() core.Position { return a.g.MustPosition(a.current) }

// Target returns the goal cell.
func (a *AutomaticSearch) Target() core.Position { return a.g.MustPosition(a.target) }

// Kind returns BreadthFirst or DepthFirst.
func (a *AutomaticSearch) Kind() Kind { return a.kind }

// Pending returns the frontier size.
func (a *AutomaticSearch) Pending() int { return a.frontier.Len() }

func (a *AutomaticSearch) sealed() {}
