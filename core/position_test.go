package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/core"
)

func TestDirections(t *testing.T) {
	origin := core.Position{X: 5, Y: 5}
	cases := []struct {
		dir      core.Direction
		name     string
		want     core.Position
		vertical bool
	}{
		{core.Up, "up", core.Position{X: 5, Y: 4}, true},
		{core.Down, "down", core.Position{X: 5, Y: 6}, true},
		{core.Left, "left", core.Position{X: 4, Y: 5}, false},
		{core.Right, "right", core.Position{X: 6, Y: 5}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, origin.Add(tc.dir.Offset()))
			assert.Equal(t, tc.name, tc.dir.String())
			assert.Equal(t, tc.vertical, tc.dir.Vertical())
			assert.Equal(t, origin, origin.Add(tc.dir.Offset()).Add(tc.dir.Opposite().Offset()))

			parsed, err := core.ParseDirection(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.dir, parsed)

			between, err := core.DirectionBetween(origin, tc.want)
			require.NoError(t, err)
			assert.Equal(t, tc.dir, between)
		})
	}
}

func TestDirection_OutOfRange(t *testing.T) {
	d := core.Direction(7)
	assert.False(t, d.Valid())
	assert.True(t, core.Right.Valid())
	assert.Equal(t, core.Position{}, d.Offset())
	assert.Equal(t, d, d.Opposite())
	assert.Equal(t, "Direction(7)", d.String())
}

func TestParseDirection_Invalid(t *testing.T) {
	d, err := core.ParseDirection("LEFT")
	require.NoError(t, err)
	assert.Equal(t, core.Left, d)

	_, err = core.ParseDirection("north")
	assert.ErrorIs(t, err, core.ErrInvalidDirection)
}

func TestDirectionBetween_Errors(t *testing.T) {
	p := core.Position{X: 1, Y: 1}
	_, err := core.DirectionBetween(p, p)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	_, err = core.DirectionBetween(p, core.Position{X: 2, Y: 2})
	assert.ErrorIs(t, err, core.ErrNotAdjacent)
}

func TestKeyOf_Canonical(t *testing.T) {
	a, b := core.Position{X: 1, Y: 0}, core.Position{X: 0, Y: 0}
	k := core.KeyOf(a, b)
	assert.Equal(t, k, core.KeyOf(b, a))
	assert.Equal(t, b, k.Lo)
	assert.True(t, k.Contains(a))

	other, err := k.Other(a)
	require.NoError(t, err)
	assert.Equal(t, b, other)
	_, err = k.Other(core.Position{X: 7, Y: 7})
	assert.ErrorIs(t, err, core.ErrNotEndpoint)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, core.Manhattan(core.Position{}, core.Position{}))
	assert.Equal(t, 5, core.Manhattan(core.Position{X: 3, Y: 0}, core.Position{X: 0, Y: 2}))
	assert.True(t, core.Position{X: 9, Y: 0}.Less(core.Position{X: 0, Y: 1}))
	assert.Equal(t, "(2,3)", core.Position{X: 2, Y: 3}.String())
}
