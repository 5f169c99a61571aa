package beam

import (
	"errors"
	"math"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(5)
	if err != nil {
		t.Fatalf("NewGrid(5) error = %v", err)
	}

	if g.Len() != 5 {
		t.Errorf("Len() = %d, want 5", g.Len())
	}
	if g.Spacing() != 0.25 {
		t.Errorf("Spacing() = %v, want 0.25", g.Spacing())
	}

	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, w := range want {
		if g.At(i) != w {
			t.Errorf("At(%d) = %v, want %v", i, g.At(i), w)
		}
	}
}

func TestNewGridEndpoints(t *testing.T) {
	for _, n := range []int{5, 7, 100, 1000} {
		g, err := NewGrid(n)
		if err != nil {
			t.Fatalf("NewGrid(%d) error = %v", n, err)
		}
		if g.At(0) != 0 {
			t.Errorf("NewGrid(%d): left endpoint = %v, want 0", n, g.At(0))
		}
		if g.At(n-1) != 1 {
			t.Errorf("NewGrid(%d): right endpoint = %v, want 1", n, g.At(n-1))
		}
		if math.Abs(g.Spacing()-1/float64(n-1)) > 1e-15 {
			t.Errorf("NewGrid(%d): spacing = %v, want %v", n, g.Spacing(), 1/float64(n-1))
		}
	}
}

func TestNewGridTooSmall(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 4} {
		if _, err := NewGrid(n); !errors.Is(err, ErrInvalidDomainSize) {
			t.Errorf("NewGrid(%d) error = %v, want ErrInvalidDomainSize", n, err)
		}
	}
}

func TestGridPointsReturnsCopy(t *testing.T) {
	g, err := NewGrid(5)
	if err != nil {
		t.Fatalf("NewGrid(5) error = %v", err)
	}

	pts := g.Points()
	pts[2] = 42
	if g.At(2) == 42 {
		t.Error("mutating Points() result altered the grid")
	}
}
