package beam

import (
	"time"
)

// Result bundles one complete assemble/solve/validate pass.
type Result struct {
	Grid       *Grid
	BodyForce  float64
	Deflection []float64
	Reference  Curve
	Comparison Comparison
	Elapsed    time.Duration
}

// TipDeflection returns the computed deflection at the free end x=1.
func (r *Result) TipDeflection() float64 {
	return r.Deflection[len(r.Deflection)-1]
}

// Run assembles the n-point system for the given body force, solves it, and
// compares the solution against an analytical reference curve with the given
// sample count. This is the one-shot entry point used by the CLIs.
func Run(n int, bodyForce float64, samples int) (*Result, error) {
	start := time.Now()

	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	a, f, err := AssembleOn(g, bodyForce)
	if err != nil {
		return nil, err
	}
	u, err := Solve(a, f)
	if err != nil {
		return nil, err
	}
	ref, err := Reference(bodyForce, samples)
	if err != nil {
		return nil, err
	}

	deflection := make([]float64, u.Len())
	copy(deflection, u.RawVector().Data)

	return &Result{
		Grid:       g,
		BodyForce:  bodyForce,
		Deflection: deflection,
		Reference:  ref,
		Comparison: Compare(g, u, ref),
		Elapsed:    time.Since(start),
	}, nil
}
