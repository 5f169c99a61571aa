package beam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// fourthDerivStencil holds the central five-point coefficients approximating
// h^4 * u'''' at an interior point.
var fourthDerivStencil = [5]float64{1, -4, 6, -4, 1}

// Assemble builds the dense operator matrix and load vector for the
// discretised beam equation on an n-point grid with the given body force.
// Interior rows 2..n-3 carry the five-point stencil and a load of
// -bodyForce*h^4; rows 0, 1, n-2 and n-1 encode the four homogeneous
// boundary conditions. Assembly is a pure function: both return values are
// freshly allocated on every call.
func Assemble(n int, bodyForce float64) (*mat.Dense, *mat.VecDense, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, nil, err
	}
	return AssembleOn(g, bodyForce)
}

// AssembleOn is Assemble for a pre-built grid.
func AssembleOn(g *Grid, bodyForce float64) (*mat.Dense, *mat.VecDense, error) {
	if math.IsNaN(bodyForce) || math.IsInf(bodyForce, 0) {
		return nil, nil, fmt.Errorf("body force %v: %w", bodyForce, ErrNonFiniteInput)
	}

	n := g.Len()
	h := g.Spacing()
	a := mat.NewDense(n, n, nil)
	f := mat.NewVecDense(n, nil)

	load := -bodyForce * h * h * h * h
	for i := 2; i <= n-3; i++ {
		for k, c := range fourthDerivStencil {
			a.Set(i, i-2+k, c)
		}
		f.SetVec(i, load)
	}

	// The boundary loads stay zero: all four conditions are homogeneous.
	setClampedValueRow(a)
	setClampedSlopeRow(a)
	setFreeMomentRow(a, n)
	setFreeShearRow(a, n)

	return a, f, nil
}

// setClampedValueRow writes row 0: u(0) = 0 at the clamped end.
func setClampedValueRow(a *mat.Dense) {
	a.Set(0, 0, 1)
}

// setClampedSlopeRow writes row 1: u'(0) = 0 via a forward difference.
func setClampedSlopeRow(a *mat.Dense) {
	a.Set(1, 0, 1)
	a.Set(1, 1, -1)
}

// setFreeMomentRow writes row n-2: vanishing bending moment u''(1) = 0 via
// a backward second difference over the last three points.
func setFreeMomentRow(a *mat.Dense, n int) {
	a.Set(n-2, n-3, 1)
	a.Set(n-2, n-2, -2)
	a.Set(n-2, n-1, 1)
}

// setFreeShearRow writes row n-1: vanishing shear u'''(1) = 0 via a backward
// third difference over the last four points.
func setFreeShearRow(a *mat.Dense, n int) {
	a.Set(n-1, n-4, -1)
	a.Set(n-1, n-3, 3)
	a.Set(n-1, n-2, -3)
	a.Set(n-1, n-1, 1)
}
