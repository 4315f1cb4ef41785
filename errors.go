package balltree

import "errors"

var (
	// ErrEmptyInput is returned when a tree is built from zero points.
	ErrEmptyInput = errors.New("balltree: empty input")

	// ErrDimensionMismatch is returned when points of differing dimension
	// are combined.
	ErrDimensionMismatch = errors.New("balltree: dimension mismatch")

	// ErrDivideByZero is returned when a point is scaled by a zero divisor.
	ErrDivideByZero = errors.New("balltree: divide by zero")

	// ErrIndexOutOfRange is returned for a coordinate or axis index outside
	// [0, dimension).
	ErrIndexOutOfRange = errors.New("balltree: index out of range")

	// ErrInvalidConfig is returned by point generation and config loading
	// when a parameter is out of range.
	ErrInvalidConfig = errors.New("balltree: invalid config")
)
