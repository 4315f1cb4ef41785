package balltree

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestNewPoint_CopiesCoordinates(t *testing.T) {
	coords := []float64{1, 2, 3}
	p := NewPoint(4, coords)
	coords[0] = 99

	if got, _ := p.Coordinate(0); got != 1 {
		t.Errorf("Coordinate(0) = %v after caller mutation, want 1", got)
	}
	out := p.Coordinates()
	out[1] = 99
	if got, _ := p.Coordinate(1); got != 2 {
		t.Errorf("Coordinate(1) = %v after mutating Coordinates(), want 2", got)
	}
	if id, ok := p.ID(); !ok || id != 4 {
		t.Errorf("ID() = (%d, %v), want (4, true)", id, ok)
	}
	if p.Dimension() != 3 {
		t.Errorf("Dimension() = %d, want 3", p.Dimension())
	}
}

func TestConstantPoint(t *testing.T) {
	p := ConstantPoint(4, 2.5)
	if !slices.Equal(p.Coordinates(), []float64{2.5, 2.5, 2.5, 2.5}) {
		t.Errorf("coordinates = %v, want all 2.5", p.Coordinates())
	}
	if _, ok := p.ID(); ok {
		t.Error("constant point should be synthetic")
	}
}

func TestCoordinate_OutOfRange(t *testing.T) {
	p := NewPoint(0, []float64{1, 2})
	for _, i := range []int{-1, 2, 10} {
		if _, err := p.Coordinate(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Coordinate(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := NewPoint(0, []float64{1, 2, -3})
	b := NewPoint(1, []float64{3, 6, 1})

	tests := []struct {
		name string
		fn   func() (Point, error)
		want []float64
	}{
		{"Add", func() (Point, error) { return Add(a, b) }, []float64{4, 8, -2}},
		{"Sub", func() (Point, error) { return Sub(a, b) }, []float64{-2, -4, -4}},
		{"SubReversed", func() (Point, error) { return Sub(b, a) }, []float64{2, 4, 4}},
		{"Midpoint", func() (Point, error) { return Midpoint(a, b) }, []float64{2, 4, -1}},
		{"Scale", func() (Point, error) { return Scale(b, 2) }, []float64{1.5, 3, 0.5}},
	}
	for _, tt := range tests {
		got, err := tt.fn()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if !slices.Equal(got.Coordinates(), tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, got.Coordinates(), tt.want)
		}
		if _, ok := got.ID(); ok {
			t.Errorf("%s should produce a synthetic point", tt.name)
		}
	}

	// Operands are never modified.
	if !slices.Equal(a.Coordinates(), []float64{1, 2, -3}) {
		t.Errorf("a mutated to %v", a.Coordinates())
	}
}

func TestArithmetic_DimensionMismatch(t *testing.T) {
	a := NewPoint(0, []float64{1, 2})
	b := NewPoint(1, []float64{1, 2, 3})
	if _, err := Add(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Add err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := Sub(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Sub err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := Midpoint(a, b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Midpoint err = %v, want ErrDimensionMismatch", err)
	}
}

func TestScale_DivideByZero(t *testing.T) {
	if _, err := Scale(NewPoint(0, []float64{1}), 0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("err = %v, want ErrDivideByZero", err)
	}
}

func TestSquaredNorm(t *testing.T) {
	p := NewPoint(0, []float64{1, -2, 3})
	if got := p.SquaredNorm(); got != 14 {
		t.Errorf("SquaredNorm() = %v, want 14", got)
	}
	if got := ConstantPoint(3, 0).SquaredNorm(); got != 0 {
		t.Errorf("zero vector SquaredNorm() = %v, want 0", got)
	}
}

func TestNewRandomPoint_WithinBounds(t *testing.T) {
	src := rand.NewPCG(1, 2)
	for i := 0; i < 100; i++ {
		p := NewRandomPoint(i, 8, -10, 10, src)
		if p.Dimension() != 8 {
			t.Fatalf("Dimension() = %d, want 8", p.Dimension())
		}
		for _, v := range p.Coordinates() {
			if v < -10 || v > 10 {
				t.Fatalf("coordinate %v outside [-10, 10]", v)
			}
		}
	}
}

func TestNewRandomPoint_Reproducible(t *testing.T) {
	a := NewRandomPoint(0, 5, 0, 1, rand.NewPCG(7, 7))
	b := NewRandomPoint(0, 5, 0, 1, rand.NewPCG(7, 7))
	if !slices.Equal(a.Coordinates(), b.Coordinates()) {
		t.Errorf("same seed gave %v and %v", a.Coordinates(), b.Coordinates())
	}
}

func TestPointString(t *testing.T) {
	if got := NewPoint(3, []float64{1, 2.5}).String(); got != "p[3] = [1.000 2.500]" {
		t.Errorf("String() = %q", got)
	}
	if got := ConstantPoint(1, 0).String(); got != "p[-] = [0.000]" {
		t.Errorf("String() = %q", got)
	}
}
