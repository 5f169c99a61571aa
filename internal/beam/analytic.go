package beam

import (
	"fmt"
	"math"
)

// Sample is one point of a deflection curve.
type Sample struct {
	X float64
	U float64
}

// Curve is an ordered sequence of deflection samples over [0,1].
type Curve []Sample

// Deflection evaluates the closed-form solution of u'''' = -bodyForce under
// the clamped-free boundary conditions:
//
//	u(x) = -q * x^2 * (1/4 - x/6 + x^2/24)
func Deflection(bodyForce, x float64) float64 {
	return -bodyForce * x * x * (0.25 - x/6 + x*x/24)
}

// Reference samples the analytical deflection curve at `samples` uniformly
// spaced points over [0,1]. The sampling is independent of any discrete
// grid; it exists to validate the finite-difference solution against.
func Reference(bodyForce float64, samples int) (Curve, error) {
	if samples < 2 {
		return nil, fmt.Errorf("need at least 2 reference samples, got %d", samples)
	}
	if math.IsNaN(bodyForce) || math.IsInf(bodyForce, 0) {
		return nil, fmt.Errorf("body force %v: %w", bodyForce, ErrNonFiniteInput)
	}

	step := 1.0 / float64(samples-1)
	curve := make(Curve, samples)
	for i := range curve {
		x := float64(i) * step
		if i == samples-1 {
			x = 1
		}
		curve[i] = Sample{X: x, U: Deflection(bodyForce, x)}
	}
	return curve, nil
}
