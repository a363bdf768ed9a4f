package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates a grid narrower or shorter than 2 cells.
	ErrInvalidDimensions = errors.New("gridgraph: grid must be at least 2x2")
	// ErrInvalidBias indicates a bias outside [-1, 1].
	ErrInvalidBias = errors.New("gridgraph: bias must be within [-1, 1]")
)
