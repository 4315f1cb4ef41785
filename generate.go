package balltree

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// GeneratePoints samples n points of dimension dim with coordinates drawn
// uniformly from [low, high]. Points are numbered 0..n-1.
func GeneratePoints(n, dim int, low, high float64, src rand.Source) ([]Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be >= 1, got %d", ErrInvalidConfig, n)
	}
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension must be >= 1, got %d", ErrInvalidConfig, dim)
	}
	if err := validateBounds(low, high); err != nil {
		return nil, err
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = NewRandomPoint(i, dim, low, high, src)
	}
	return points, nil
}

func validateBounds(low, high float64) error {
	if math.IsNaN(low) || math.IsInf(low, 0) || math.IsNaN(high) || math.IsInf(high, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%g, %g]", ErrInvalidConfig, low, high)
	}
	if low > high {
		return fmt.Errorf("%w: low %g > high %g", ErrInvalidConfig, low, high)
	}
	return nil
}
