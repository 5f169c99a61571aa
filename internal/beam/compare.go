package beam

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Comparison summarises the mismatch between a discrete solution and the
// analytical reference curve.
type Comparison struct {
	MaxAbsError float64
	RMSError    float64
}

// Compare interpolates the discrete solution at each reference x coordinate
// and reports the maximum and root-mean-square absolute error.
func Compare(g *Grid, u *mat.VecDense, ref Curve) Comparison {
	if len(ref) == 0 {
		return Comparison{}
	}

	errs := make([]float64, len(ref))
	var sumSq float64
	for i, s := range ref {
		errs[i] = math.Abs(InterpolateAt(g, u, s.X) - s.U)
		sumSq += errs[i] * errs[i]
	}
	return Comparison{
		MaxAbsError: floats.Max(errs),
		RMSError:    math.Sqrt(sumSq / float64(len(ref))),
	}
}

// InterpolateAt evaluates the piecewise-linear interpolant of the nodal
// values u at coordinate x, clamping x to [0,1].
func InterpolateAt(g *Grid, u *mat.VecDense, x float64) float64 {
	n := g.Len()
	if x <= 0 {
		return u.AtVec(0)
	}
	if x >= 1 {
		return u.AtVec(n - 1)
	}

	pos := x / g.Spacing()
	i := int(pos)
	if i >= n-1 {
		i = n - 2
	}
	t := pos - float64(i)
	return (1-t)*u.AtVec(i) + t*u.AtVec(i+1)
}
