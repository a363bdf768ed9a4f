package traverse

import "github.com/katalvlaran/lvmaze/core"

// Event is an external stimulus delivered to a Traverser.
// The set of events is closed: Tick and Move.
type Event interface {
	event()
}

// Tick advances an incomplete AutomaticSearch by one step.
type Tick struct{}

// Move advances an incomplete ManualSearch one cell in Dir.
type Move struct {
	Dir core.Direction
}

func (Tick) event() {}
func (Move) event() {}

// Apply delivers ev to t. Ticks only drive automatic searches and moves only
// drive manual searches; a mismatched or post-completion event is a no-op.
// stepped reports whether t advanced.
func Apply(t Traverser, ev Event) (stepped bool, err error) {
	if t == nil || t.Complete() {
		return false, nil
	}
	switch ev := ev.(type) {
	case Tick:
		a, ok := t.(*AutomaticSearch)
		if !ok {
			return false, nil
		}
		if err = a.Step(); err != nil {
			return false, err
		}
		return true, nil
	case Move:
		m, ok := t.(*ManualSearch)
		if !ok {
			return false, nil
		}
		return m.Step(ev.Dir)
	}
	return false, nil
}

var (
	_ Traverser = (*AutomaticSearch)(nil)
	_ Traverser = (*ManualSearch)(nil)
)
