package world

import "errors"

var (
	// ErrInvalidConfig is returned for generation settings that cannot produce a map.
	ErrInvalidConfig = errors.New("invalid map config")

	// ErrOutOfBounds is returned when a coordinate falls outside the grid.
	// It signals a programming error, not a gameplay condition.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
