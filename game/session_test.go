package game_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/game"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/traverse"
)

func newSession(t *testing.T, opts ...game.Option) *game.Session {
	t.Helper()
	opts = append([]game.Option{game.WithMazeOptions(maze.WithSeed(7))}, opts...)
	s, err := game.NewSession(6, 6, 0, opts...)
	require.NoError(t, err)
	return s
}

func press(t *testing.T, s *game.Session, keys ...string) {
	t.Helper()
	for _, k := range keys {
		require.NoError(t, s.HandleKey(k))
	}
}

// solve ticks an automatic search to completion.
func solve(t *testing.T, s *game.Session) {
	t.Helper()
	for i := 0; !s.Traverser().Complete(); i++ {
		require.Less(t, i, 1000, "search did not finish")
		require.NoError(t, s.Tick())
	}
}

func TestNewSession_Defaults(t *testing.T) {
	s := newSession(t)
	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, traverse.Manual, s.Traverser().Kind())
	assert.True(t, s.ShowVisited())

	v := s.View()
	assert.Equal(t, 6, v.Cols)
	assert.Equal(t, 6, v.Rows)
	assert.Equal(t, core.Position{}, v.Current)
	assert.Equal(t, core.Position{X: 5, Y: 5}, v.Target)
	assert.False(t, v.Complete)
}

func TestNewSession_InvalidArgument(t *testing.T) {
	_, err := game.NewSession(1, 6, 0)
	assert.ErrorIs(t, err, maze.ErrInvalidArgument)
	_, err = game.NewSession(6, 6, 4)
	assert.ErrorIs(t, err, maze.ErrInvalidArgument)
}

func TestSession_ModeKeys(t *testing.T) {
	s := newSession(t)
	for _, tc := range []struct {
		key  string
		want traverse.Kind
	}{
		{game.KeyBreadth, traverse.BreadthFirst},
		{game.KeyDepth, traverse.DepthFirst},
		{game.KeyManual, traverse.Manual},
	} {
		press(t, s, tc.key)
		assert.Equal(t, tc.want, s.Traverser().Kind(), "key %q", tc.key)
	}
}

func TestSession_TickSolvesAndLogs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := newSession(t, game.WithLogger(logger))

	press(t, s, game.KeyBreadth)
	solve(t, s)

	v := s.View()
	require.True(t, v.Complete)
	assert.Equal(t, core.Position{}, v.Solution[0])
	assert.Equal(t, v.Target, v.Solution[len(v.Solution)-1])
	assert.Equal(t, len(v.Visited)-len(v.Solution), v.WrongMoves)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "maze solved", last.Message)
	assert.Equal(t, "bfs", last.Data["mode"])
	assert.Equal(t, v.WrongMoves, last.Data["wrong_moves"])
	assert.Equal(t, s.ID().String(), last.Data["session"])
}

func TestSession_CompleteOnlyHonorsRegenerate(t *testing.T) {
	s := newSession(t)
	press(t, s, game.KeyDepth)
	solve(t, s)
	solved := s.Maze()

	press(t, s, game.KeyBreadth, game.KeyVisited, "up")
	assert.Equal(t, traverse.DepthFirst, s.Traverser().Kind())
	assert.True(t, s.ShowVisited())
	assert.Same(t, solved, s.Maze())

	press(t, s, game.KeyRegenerate)
	assert.NotSame(t, solved, s.Maze())
	assert.Equal(t, traverse.Manual, s.Traverser().Kind())
	assert.False(t, s.Traverser().Complete())
}

func TestSession_RegenerateKeepsKind(t *testing.T) {
	s := newSession(t)
	press(t, s, game.KeyDepth)
	require.NoError(t, s.Tick())
	before := s.Maze()

	press(t, s, game.KeyRegenerate)
	assert.NotSame(t, before, s.Maze())
	assert.Equal(t, traverse.DepthFirst, s.Traverser().Kind())
	assert.Empty(t, s.Traverser().Processed(), "fresh search on the new maze")
	assert.NoError(t, s.Maze().Validate())
}

func TestSession_ArrowKeysSolve(t *testing.T) {
	s := newSession(t)
	ref, err := s.Maze().BeginAutomaticSearch(true)
	require.NoError(t, err)
	require.NoError(t, ref.Run())
	route, err := ref.SolutionPath()
	require.NoError(t, err)

	require.NoError(t, s.Tick(), "ticks do not move the player")
	assert.Equal(t, core.Position{}, s.View().Current)

	for i := 1; i < len(route); i++ {
		d, err := core.DirectionBetween(route[i-1], route[i])
		require.NoError(t, err)
		press(t, s, d.String())
	}
	v := s.View()
	require.True(t, v.Complete)
	assert.Equal(t, route, v.Solution)
	assert.Zero(t, v.WrongMoves)
}

func TestSession_VisitedToggle(t *testing.T) {
	s := newSession(t)
	press(t, s, game.KeyBreadth)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Tick())
	}
	require.Len(t, s.View().Visited, 3)

	press(t, s, game.KeyVisited)
	assert.False(t, s.ShowVisited())
	v := s.View()
	require.Len(t, v.Visited, 1)
	assert.Equal(t, v.Current, v.Visited[0])

	press(t, s, game.KeyManual)
	assert.Empty(t, s.View().Visited)
}

func TestSession_UnknownKeyIgnored(t *testing.T) {
	s := newSession(t)
	before := s.Traverser()
	press(t, s, "q", "", "north")
	assert.Same(t, before, s.Traverser())
}

func TestSession_Render(t *testing.T) {
	s := newSession(t, game.WithShowVisited(false))
	out := s.Render()
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "T")
	assert.NotContains(t, out, ".")
}
