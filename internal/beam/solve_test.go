package beam

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/beam.report/internal/monitoring"
)

func init() {
	// Solves in this file intentionally touch ill-conditioned systems.
	monitoring.SetLogger(nil)
}

func solveFor(t *testing.T, n int, bodyForce float64) *mat.VecDense {
	t.Helper()
	a, f, err := Assemble(n, bodyForce)
	if err != nil {
		t.Fatalf("Assemble(%d, %v) error = %v", n, bodyForce, err)
	}
	u, err := Solve(a, f)
	if err != nil {
		t.Fatalf("Solve error = %v", err)
	}
	return u
}

func TestSolveLeftBoundaryConditions(t *testing.T) {
	// The operator's condition number grows like n^4, so the tolerance is
	// well above machine epsilon.
	for _, n := range []int{5, 50, 200} {
		u := solveFor(t, n, 1)

		if got := math.Abs(u.AtVec(0)); got > 1e-7 {
			t.Errorf("n=%d: |u[0]| = %v, want ~0 (clamped value)", n, got)
		}
		if got := math.Abs(u.AtVec(1) - u.AtVec(0)); got > 1e-7 {
			t.Errorf("n=%d: |u[1]-u[0]| = %v, want ~0 (clamped slope)", n, got)
		}
	}
}

func TestSolveSmallestGridFinite(t *testing.T) {
	u := solveFor(t, 5, 1)

	if u.Len() != 5 {
		t.Fatalf("solution length = %d, want 5", u.Len())
	}
	for i := 0; i < u.Len(); i++ {
		if v := u.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("u[%d] = %v, want finite", i, v)
		}
	}
}

func TestSolveLinearity(t *testing.T) {
	n := 50
	u1 := solveFor(t, n, 1)
	u2 := solveFor(t, n, 2)

	// Doubling the body force doubles the load vector exactly, and scaling
	// by a power of two is exact in floating point, so the solutions should
	// agree to within a hair of rounding.
	for i := 0; i < n; i++ {
		if !scalar.EqualWithinAbsOrRel(u2.AtVec(i), 2*u1.AtVec(i), 1e-14, 1e-12) {
			t.Errorf("u2[%d] = %v, want 2*u1[%d] = %v", i, u2.AtVec(i), i, 2*u1.AtVec(i))
		}
	}
}

func TestSolveDoesNotMutateInputs(t *testing.T) {
	a, f, err := Assemble(9, 1)
	if err != nil {
		t.Fatalf("Assemble error = %v", err)
	}
	aCopy := mat.DenseCopyOf(a)
	fCopy := mat.VecDenseCopyOf(f)

	if _, err := Solve(a, f); err != nil {
		t.Fatalf("Solve error = %v", err)
	}

	if !mat.Equal(a, aCopy) {
		t.Error("Solve mutated the operator matrix")
	}
	if !mat.Equal(f, fCopy) {
		t.Error("Solve mutated the load vector")
	}
}

func TestSolveSingularMatrix(t *testing.T) {
	a := mat.NewDense(5, 5, nil)
	f := mat.NewVecDense(5, nil)
	f.SetVec(2, 1)

	if _, err := Solve(a, f); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Solve(zero matrix) error = %v, want ErrSingularMatrix", err)
	}
}

func TestSolveDimensionChecks(t *testing.T) {
	rect := mat.NewDense(4, 5, nil)
	f5 := mat.NewVecDense(5, nil)
	if _, err := Solve(rect, f5); err == nil {
		t.Error("Solve should reject a non-square operator")
	}

	square := mat.NewDense(5, 5, nil)
	f4 := mat.NewVecDense(4, nil)
	if _, err := Solve(square, f4); err == nil {
		t.Error("Solve should reject a mismatched load vector")
	}
}
