package beam

import (
	"math"
	"testing"
)

func TestDeflectionClosedForm(t *testing.T) {
	// u(1) for q=1 is -(1/4 - 1/6 + 1/24) = -3/24 = -0.125.
	if got := Deflection(1, 1); math.Abs(got+0.125) > 1e-15 {
		t.Errorf("Deflection(1, 1) = %v, want -0.125", got)
	}
	if got := Deflection(1, 0); got != 0 {
		t.Errorf("Deflection(1, 0) = %v, want 0", got)
	}
	// Deflection scales linearly with the body force.
	if got, want := Deflection(4, 0.5), 4*Deflection(1, 0.5); math.Abs(got-want) > 1e-15 {
		t.Errorf("Deflection(4, 0.5) = %v, want %v", got, want)
	}
}

func TestReference(t *testing.T) {
	curve, err := Reference(1, 30)
	if err != nil {
		t.Fatalf("Reference(1, 30) error = %v", err)
	}

	if len(curve) != 30 {
		t.Fatalf("len(curve) = %d, want 30", len(curve))
	}
	if curve[0].X != 0 || curve[0].U != 0 {
		t.Errorf("curve[0] = %+v, want (0, 0)", curve[0])
	}
	last := curve[len(curve)-1]
	if last.X != 1 {
		t.Errorf("last sample x = %v, want 1", last.X)
	}
	if math.Abs(last.U+0.125) > 1e-15 {
		t.Errorf("last sample u = %v, want -0.125", last.U)
	}

	for i := 1; i < len(curve); i++ {
		if curve[i].X <= curve[i-1].X {
			t.Fatalf("curve x not strictly increasing at %d: %v <= %v", i, curve[i].X, curve[i-1].X)
		}
	}
}

func TestReferenceErrors(t *testing.T) {
	if _, err := Reference(1, 1); err == nil {
		t.Error("Reference should reject fewer than 2 samples")
	}
	if _, err := Reference(math.NaN(), 10); err == nil {
		t.Error("Reference should reject a non-finite body force")
	}
}
