// File: position.go
// Role: Grid coordinates, unit directions and canonical edge keys.
// Determinism:
//   - Position.Less is a total order (Y, then X); EdgeKey uses it to sort endpoints.

package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection indicates a direction other than up, down, left or right.
var ErrInvalidDirection = errors.New("core: direction is not one of up, down, left, right")

// Position is an (x, y) grid coordinate in image convention: x grows to the
// right, y grows downward.
type Position struct {
	X, Y int
}

// Add returns p shifted by offset.
func (p Position) Add(offset Position) Position {
	return Position{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Sub returns the displacement that leads from q to p.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Less orders positions row by row, then column by column.
func (p Position) Less(q Position) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func Manhattan(p, q Position) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Direction is one of the four unit moves on the grid.
type Direction uint8

const (
	// Up moves toward y-1.
	Up Direction = iota
	// Down moves toward y+1.
	Down
	// Left moves toward x-1.
	Left
	// Right moves toward x+1.
	Right
)

// Directions lists every Direction in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// offsets is indexed by Direction.
var offsets = [4]Position{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var directionNames = [4]string{Up: "up", Down: "down", Left: "left", Right: "right"}

// Valid reports whether d is one of Up, Down, Left and Right.
func (d Direction) Valid() bool { return d <= Right }

// Offset returns the unit displacement of d, or the zero Position for an
// invalid d.
func (d Direction) Offset() Position {
	if !d.Valid() {
		return Position{}
	}
	return offsets[d]
}

// Opposite returns the direction that undoes d. An invalid d is returned
// unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool { return d == Up || d == Down }

// String returns the lower-case direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection maps "up", "down", "left" and "right" (case-insensitive)
// to a Direction.
func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if strings.EqualFold(name, n) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}

// DirectionBetween returns the direction of the unit step from → to.
// Returns ErrSelfLoop for equal positions and ErrNotAdjacent otherwise.
func DirectionBetween(from, to Position) (Direction, error) {
	if from == to {
		return 0, ErrSelfLoop
	}
	delta := to.Sub(from)
	for i, off := range offsets {
		if delta == off {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, from, to)
}

// EdgeKey is the canonical, order-independent identity of an undirected
// edge: its endpoint positions sorted by Position.Less.
type EdgeKey struct {
	Lo, Hi Position
}

// KeyOf builds the EdgeKey for endpoints a and b in either order.
func KeyOf(a, b Position) EdgeKey {
	if b.Less(a) {
		a, b = b, a
	}
	return EdgeKey{Lo: a, Hi: b}
}

// Contains reports whether p is one of the key's endpoints.
func (k EdgeKey) Contains(p Position) bool { return k.Lo == p || k.Hi == p }

// Other returns the endpoint that is not p.
func (k EdgeKey) Other(p Position) (Position, error) {
	switch p {
	case k.Lo:
		return k.Hi, nil
	case k.Hi:
		return k.Lo, nil
	}
	return Position{}, ErrNotEndpoint
}

// String renders the key as "(x,y)-(x,y)".
func (k EdgeKey) String() string { return k.Lo.String() + "-" + k.Hi.String() }
