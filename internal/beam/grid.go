// Package beam assembles and solves the finite-difference discretisation of
// the Euler-Bernoulli beam deflection equation u'''' = -q on the unit
// interval, clamped at the left end and free at the right end.
package beam

import "fmt"

// Grid is a uniform one-dimensional grid over [0,1]. It is immutable once
// constructed; accessors return copies.
type Grid struct {
	x []float64
	h float64
}

// NewGrid returns a grid of n uniformly spaced points spanning [0,1] with
// spacing 1/(n-1). n must be at least MinGridPoints.
func NewGrid(n int) (*Grid, error) {
	if n < MinGridPoints {
		return nil, fmt.Errorf("n=%d (need at least %d): %w", n, MinGridPoints, ErrInvalidDomainSize)
	}

	h := 1.0 / float64(n-1)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * h
	}
	// Pin the right endpoint so rounding in the product above cannot leave
	// the domain short of 1.
	x[n-1] = 1

	return &Grid{x: x, h: h}, nil
}

// Len returns the number of grid points.
func (g *Grid) Len() int { return len(g.x) }

// Spacing returns the uniform point spacing h.
func (g *Grid) Spacing() float64 { return g.h }

// At returns the coordinate of point i.
func (g *Grid) At(i int) float64 { return g.x[i] }

// Points returns a copy of the grid coordinates.
func (g *Grid) Points() []float64 {
	out := make([]float64, len(g.x))
	copy(out, g.x)
	return out
}
