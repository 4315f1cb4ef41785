package balltree

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Point is an immutable vector in R^d. Points built from input data carry
// an identifier; points produced by arithmetic (centroids, split points)
// are synthetic and have none.
type Point struct {
	id     int
	hasID  bool
	coords []float64
}

// NewPoint returns a point with the given identifier. coords is copied.
func NewPoint(id int, coords []float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)
	return Point{id: id, hasID: true, coords: c}
}

// NewRandomPoint returns a point whose coordinates are drawn independently
// from the uniform distribution over [low, high]. src may be nil, in which
// case the global math/rand/v2 source is used.
func NewRandomPoint(id, dim int, low, high float64, src rand.Source) Point {
	u := distuv.Uniform{Min: low, Max: high, Src: src}
	c := make([]float64, dim)
	for i := range c {
		c[i] = u.Rand()
	}
	return Point{id: id, hasID: true, coords: c}
}

// ConstantPoint returns a synthetic point with every coordinate set to value.
func ConstantPoint(dim int, value float64) Point {
	c := make([]float64, dim)
	for i := range c {
		c[i] = value
	}
	return Point{coords: c}
}

// ID returns the point's identifier. ok is false for synthetic points.
func (p Point) ID() (id int, ok bool) { return p.id, p.hasID }

// Dimension returns the number of coordinates.
func (p Point) Dimension() int { return len(p.coords) }

// Coordinate returns the i-th coordinate, 0-indexed.
func (p Point) Coordinate(i int) (float64, error) {
	if i < 0 || i >= len(p.coords) {
		return 0, fmt.Errorf("%w: coordinate %d of %d-dimensional point", ErrIndexOutOfRange, i, len(p.coords))
	}
	return p.coords[i], nil
}

// Coordinates returns a copy of the coordinate vector.
func (p Point) Coordinates() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)
	return c
}

// SquaredNorm returns the sum of squared coordinates.
func (p Point) SquaredNorm() float64 {
	return floats.Dot(p.coords, p.coords)
}

func (p Point) String() string {
	if p.hasID {
		return fmt.Sprintf("p[%d] = %.3f", p.id, p.coords)
	}
	return fmt.Sprintf("p[-] = %.3f", p.coords)
}

func checkDims(a, b Point) error {
	if len(a.coords) != len(b.coords) {
		return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a.coords), len(b.coords))
	}
	return nil
}

// Add returns the element-wise sum a + b as a synthetic point.
func Add(a, b Point) (Point, error) {
	if err := checkDims(a, b); err != nil {
		return Point{}, err
	}
	return Point{coords: floats.AddTo(make([]float64, len(a.coords)), a.coords, b.coords)}, nil
}

// Sub returns the element-wise difference a - b as a synthetic point.
func Sub(a, b Point) (Point, error) {
	if err := checkDims(a, b); err != nil {
		return Point{}, err
	}
	return Point{coords: floats.SubTo(make([]float64, len(a.coords)), a.coords, b.coords)}, nil
}

// Scale returns a / divisor element-wise as a synthetic point.
func Scale(a Point, divisor float64) (Point, error) {
	if divisor == 0 {
		return Point{}, ErrDivideByZero
	}
	return Point{coords: floats.ScaleTo(make([]float64, len(a.coords)), 1/divisor, a.coords)}, nil
}

// Midpoint returns (a + b) / 2 as a synthetic point.
func Midpoint(a, b Point) (Point, error) {
	sum, err := Add(a, b)
	if err != nil {
		return Point{}, err
	}
	return Scale(sum, 2)
}
