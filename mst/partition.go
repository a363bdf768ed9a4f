package mst

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// Partition is a union-find structure over grid positions. Each position
// maps to a representative; a position that maps to itself is the
// representative of its class.
//
// Union carries no rank or size heuristic, so a Find walk can be O(n) in the
// worst case. Path compression may be enabled to flatten walks.
type Partition struct {
	reps     map[core.Position]core.Position
	compress bool
}

// NewPartition places every position in its own class.
func NewPartition(positions []core.Position, compress bool) *Partition {
	p := &Partition{
		reps:     make(map[core.Position]core.Position, len(positions)),
		compress: compress,
	}
	for _, pos := range positions {
		p.reps[pos] = pos
	}
	return p
}

// Find returns the representative of pos's class. Repeated calls with no
// Union in between return the same representative.
func (p *Partition) Find(pos core.Position) (core.Position, error) {
	cur, ok := p.reps[pos]
	if !ok {
		return core.Position{}, fmt.Errorf("%w: %v", ErrUnknownPosition, pos)
	}
	root := pos
	for cur != root {
		root = cur
		cur = p.reps[root]
	}
	if p.compress {
		for walk := pos; walk != root; {
			next := p.reps[walk]
			p.reps[walk] = root
			walk = next
		}
	}
	return root, nil
}

// Union merges the classes of a and b by repointing a's representative at
// b. It reports whether the classes were distinct.
func (p *Partition) Union(a, b core.Position) (bool, error) {
	ra, err := p.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := p.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}
	p.reps[ra] = b
	return true, nil
}

// Same reports whether a and b share a representative.
func (p *Partition) Same(a, b core.Position) (bool, error) {
	ra, err := p.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := p.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Classes counts the distinct representatives.
func (p *Partition) Classes() int {
	n := 0
	for pos, rep := range p.reps {
		if pos == rep {
			n++
		}
	}
	return n
}

// Len returns the number of positions tracked.
func (p *Partition) Len() int { return len(p.reps) }
