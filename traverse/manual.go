package traverse

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/core"
)

// ManualSearch follows directional input through a maze.
//
// solution holds the candidate route from start to the current cell. A move
// that exactly reverses the previous one pops the route instead of growing
// it, so dead ends walked into and back out of leave no trace. Only
// single-step reversals collapse; in a perfect maze that is enough to keep
// solution acyclic.
type ManualSearch struct {
	g         *core.Graph
	current   core.CellID
	target    core.CellID
	solution  []core.CellID
	processed []core.CellID
	complete  bool
	opts      Options
	applied   []Option
}

// NewManualSearch places the player on start.
func NewManualSearch(g *core.Graph, start, target core.Position, opts ...Option) (*ManualSearch, error) {
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
	m := &ManualSearch{
		g:        g,
		current:  s,
		target:   t,
		solution: []core.CellID{s},
		opts:     newOptions(opts),
		applied:  opts,
	}
	if s == t {
		m.log(s)
		m.complete = true
	}

	return m, nil
}

// Step moves one cell in direction d. A direction without a passage is
// ignored and reported as moved == false.
//
// Errors: ErrAlreadyComplete, core.ErrInvalidDirection.
func (m *ManualSearch) Step(d core.Direction) (moved bool, err error) {
	if m.complete {
		return false, ErrAlreadyComplete
	}
	next, err := m.g.Neighbor(m.current, d)
	if errors.Is(err, core.ErrNoNeighbor) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	m.log(m.current)
	m.current = next
	if n := len(m.solution); n >= 2 && m.solution[n-2] == next {
		m.solution = m.solution[:n-1]
	} else {
		m.solution = append(m.solution, next)
	}

	if next == m.target {
		m.log(next)
		m.processed = dedupe(m.processed)
		m.complete = true
	}

	return true, nil
}

func (m *ManualSearch) log(c core.CellID) {
	m.processed = append(m.processed, c)
	m.opts.OnProcess(m.g.MustPosition(c))
}

// dedupe keeps the first occurrence of every cell.
func dedupe(ids []core.CellID) []core.CellID {
	seen := mapset.New[core.CellID]()
	out := ids[:0]
	for _, id := range ids {
		if seen.Has(id) {
			continue
		}
		seen.Put(id)
		out = append(out, id)
	}
	return out
}

// Complete reports whether the player stands on the target.
func (m *ManualSearch) Complete() bool { return m.complete }

// SolutionPath returns the collapsed route from start to target.
func (m *ManualSearch) SolutionPath() ([]core.Position, error) {
	if !m.complete {
		return nil, ErrNotComplete
	}
	return positions(m.g, m.solution), nil
}

// WrongMoves counts distinct visited cells that are not on the route.
func (m *ManualSearch) WrongMoves() (int, error) {
	if !m.complete {
		return 0, ErrNotComplete
	}
	return len(m.processed) - len(m.solution), nil
}

// Reset returns a new manual search toward the same target.
func (m *ManualSearch) Reset(g *core.Graph, start core.Position) (Traverser, error) {
	if g == nil {
		g = m.g
	}
	return NewManualSearch(g, start, m.Target(), m.applied...)
}

// Trail returns the route walked so far, before completion included.
func (m *ManualSearch) Trail() []core.Position { return positions(m.g, m.solution) }

// Processed returns every logged cell; duplicates remain until completion.
func (m *ManualSearch) Processed() []core.Position { return positions(m.g, m.processed) }

// Current returns the player's cell.
func (m *ManualSearch) Current() core.Position { return m.g.MustPosition(m.current) }

// Target returns the goal cell.
func (m *ManualSearch) Target() core.Position { return m.g.MustPosition(m.target) }

// Kind returns Manual.
func (m *ManualSearch) Kind() Kind { return Manual }

func (m *ManualSearch) sealed() {}
