// Package game wires a maze and its current traversal into a session that
// reacts to discrete ticks and key presses, the way an interactive front end
// drives it.
package game

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/traverse"
)

// Keys understood by HandleKey. Arrow keys are the direction names.
const (
	KeyManual     = "m"
	KeyRegenerate = "n"
	KeyDepth      = "d"
	KeyBreadth    = "b"
	KeyVisited    = "v"
)

// Session owns one maze and the traversal running over it.
// A Session is driven from a single goroutine.
type Session struct {
	id          uuid.UUID
	maze        *maze.Maze
	trav        traverse.Traverser
	bias        float64
	showVisited bool
	log         logrus.FieldLogger
	mazeOpts    []maze.Option
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session events to l. Sessions are silent by default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMazeOptions forwards options to maze generation.
func WithMazeOptions(opts ...maze.Option) Option {
	return func(s *Session) { s.mazeOpts = append(s.mazeOpts, opts...) }
}

// WithShowVisited sets whether View reports every visited cell.
func WithShowVisited(show bool) Option {
	return func(s *Session) { s.showVisited = show }
}

// NewSession generates a rows×cols maze and starts a manual search on it.
func NewSession(rows, cols int, bias float64, opts ...Option) (*Session, error) {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	s := &Session{
		id:          uuid.New(),
		bias:        bias,
		showVisited: true,
		log:         quiet,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("session", s.id.String())

	m, err := maze.New(rows, cols, bias, s.mazeOpts...)
	if err != nil {
		return nil, err
	}
	s.maze = m
	if s.trav, err = m.BeginManualSearch(s.traverseOptions()...); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"rows": rows, "cols": cols, "bias": bias}).Info("maze generated")

	return s, nil
}

func (s *Session) traverseOptions() []traverse.Option {
	return []traverse.Option{
		traverse.WithOnProcess(func(p core.Position) {
			s.log.WithField("cell", p.String()).Trace("processed")
		}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Maze returns the current maze.
func (s *Session) Maze() *maze.Maze { return s.maze }

// Traverser returns the current traversal.
func (s *Session) Traverser() traverse.Traverser { return s.trav }

// ShowVisited reports whether View lists every visited cell.
func (s *Session) ShowVisited() bool { return s.showVisited }

// Tick advances an automatic search by one step.
func (s *Session) Tick() error {
	stepped, err := traverse.Apply(s.trav, traverse.Tick{})
	if err != nil {
		return err
	}
	if stepped && s.trav.Complete() {
		s.logSolved()
	}
	return nil
}

// HandleKey reacts to one key press.
//
// While a search is running: arrow names move the player, "m" restarts a
// manual search, "d" and "b" start depth- and breadth-first searches, "n"
// regenerates the maze keeping the current search kind, and "v" toggles the
// visited-cell view. Once the search is complete only "n" is honored, and it
// always returns to a manual search. Unknown keys are ignored.
func (s *Session) HandleKey(key string) error {
	if s.trav.Complete() {
		if key == KeyRegenerate {
			return s.regenerate(traverse.Manual)
		}
		return nil
	}

	if d, err := core.ParseDirection(key); err == nil {
		moved, err := traverse.Apply(s.trav, traverse.Move{Dir: d})
		if err != nil {
			return err
		}
		if moved && s.trav.Complete() {
			s.logSolved()
		}
		return nil
	}

	switch key {
	case KeyManual:
		return s.switchTo(traverse.Manual)
	case KeyDepth:
		return s.switchTo(traverse.DepthFirst)
	case KeyBreadth:
		return s.switchTo(traverse.BreadthFirst)
	case KeyRegenerate:
		return s.regenerate(s.trav.Kind())
	case KeyVisited:
		s.showVisited = !s.showVisited
		s.log.WithField("show_visited", s.showVisited).Debug("view toggled")
	default:
		s.log.WithField("key", key).Debug("key ignored")
	}
	return nil
}

// switchTo replaces the traversal with a fresh one of kind k on the current maze.
func (s *Session) switchTo(k traverse.Kind) error {
	t, err := s.begin(s.maze, k)
	if err != nil {
		return err
	}
	s.trav = t
	s.log.WithField("mode", k.String()).Info("search started")
	return nil
}

func (s *Session) regenerate(k traverse.Kind) error {
	m, err := s.maze.Regenerate(s.bias)
	if err != nil {
		return err
	}
	t, err := s.begin(m, k)
	if err != nil {
		return err
	}
	s.maze, s.trav = m, t
	s.log.WithField("mode", k.String()).Info("maze regenerated")
	return nil
}

func (s *Session) begin(m *maze.Maze, k traverse.Kind) (traverse.Traverser, error) {
	switch k {
	case traverse.Manual:
		return m.BeginManualSearch(s.traverseOptions()...)
	case traverse.BreadthFirst, traverse.DepthFirst:
		return m.BeginAutomaticSearch(k == traverse.BreadthFirst, s.traverseOptions()...)
	}
	return nil, fmt.Errorf("game: unknown search kind %d", k)
}

func (s *Session) logSolved() {
	wrong, _ := s.trav.WrongMoves()
	route, _ := s.trav.SolutionPath()
	s.log.WithFields(logrus.Fields{
		"mode":        s.trav.Kind().String(),
		"wrong_moves": wrong,
		"route_len":   len(route),
	}).Info("maze solved")
}
