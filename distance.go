package balltree

import "gonum.org/v1/gonum/floats"

// Distance returns the Euclidean (L2) distance between a and b.
func Distance(a, b Point) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a.coords, b.coords, 2), nil
}

// SquaredDistance returns the squared Euclidean distance between a and b,
// computed as the squared norm of a - b.
func SquaredDistance(a, b Point) (float64, error) {
	diff, err := Sub(a, b)
	if err != nil {
		return 0, err
	}
	return diff.SquaredNorm(), nil
}
