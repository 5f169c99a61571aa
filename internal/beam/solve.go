package beam

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/beam.report/internal/monitoring"
)

// Solve performs a dense LU solve of a*u = f and returns the nodal
// deflections. Neither input is mutated. The operator from Assemble grows
// ill-conditioned like n^4, which is expected and logged; a hard
// factorisation failure is reported as ErrSingularMatrix because it means
// the assembly produced a defective system.
//
// A banded factorisation over mat.BandDense would cut the O(n^3) cost for
// very large n; the dense path is kept because the default grids are small.
func Solve(a *mat.Dense, f *mat.VecDense) (*mat.VecDense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("operator is %dx%d, want square", r, c)
	}
	if f.Len() != r {
		return nil, fmt.Errorf("load vector has length %d, want %d", f.Len(), r)
	}

	var lu mat.LU
	lu.Factorize(a)

	u := mat.NewVecDense(r, nil)
	if err := lu.SolveVecTo(u, false, f); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("lu solve failed: %w", ErrSingularMatrix)
		}
		if c := float64(cond); math.IsInf(c, 0) || math.IsNaN(c) {
			return nil, fmt.Errorf("condition number %v: %w", c, ErrSingularMatrix)
		}
		// Ill-conditioned but solvable. Surface it for diagnosis rather
		// than failing: the caller still gets a usable deflection profile.
		monitoring.Logf("solve: operator condition number %.3g exceeds solver tolerance", float64(cond))
	}

	for i := 0; i < r; i++ {
		if v := u.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("entry %d is %v: %w", i, u.AtVec(i), ErrNonFiniteResult)
		}
	}

	return u, nil
}
