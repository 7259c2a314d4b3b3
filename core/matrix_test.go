package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

func TestDegRadRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 30, 45, 90, 180, 270} {
		got := RadToDeg(DegToRad(deg))
		if !scalar.EqualWithinAbs(got, deg, 1e-12) {
			t.Errorf("RadToDeg(DegToRad(%g)) = %g", deg, got)
		}
	}
	if !scalar.EqualWithinAbs(DegToRad(180), math.Pi, 1e-12) {
		t.Errorf("DegToRad(180) = %g, want π", DegToRad(180))
	}
}

func TestMultiply_IdentityIsNeutral(t *testing.T) {
	m := ABCDMatrix{A: 2, B: 3, C: 5, D: 7}
	if got := Multiply(IdentityMatrix(), m); got != m {
		t.Errorf("I·m = %+v, want %+v", got, m)
	}
	if got := Multiply(m, IdentityMatrix()); got != m {
		t.Errorf("m·I = %+v, want %+v", got, m)
	}
}

func TestMultiply_Composition(t *testing.T) {
	// Propagation after a thin lens: P(d)·L(f).
	f, d := 0.2, 0.2
	got := Multiply(PropagationMatrix(d), LensMatrix(f))
	want := ABCDMatrix{A: 1 - d/f, B: d, C: -1 / f, D: 1}
	if !matricesEqual(got, want, 1e-12) {
		t.Errorf("P(d)·L(f) = %+v, want %+v", got, want)
	}
}

func TestBuildSystemMatrix_Empty(t *testing.T) {
	if got := BuildSystemMatrix(nil, 1.0); got != IdentityMatrix() {
		t.Errorf("empty system matrix = %+v, want identity", got)
	}
}

func TestBuildSystemMatrix_SingleLensAtOrigin(t *testing.T) {
	lenses := []model.Lens{{ID: "l1", Aperture: 0.1, FocalLength: 0.2, Position: 0, Transmittance: 1}}
	got := BuildSystemMatrix(lenses, 0.2)
	// Lens at the origin followed by propagation to the receiver:
	// P(0.2)·L(0.2).
	want := Multiply(PropagationMatrix(0.2), LensMatrix(0.2))
	if !matricesEqual(got, want, 1e-12) {
		t.Errorf("system matrix = %+v, want %+v", got, want)
	}
}

func TestBuildSystemMatrix_SortsByPosition(t *testing.T) {
	// Two lenses supplied out of order must compose as if sorted.
	lensNear := model.Lens{ID: "near", FocalLength: 0.1, Position: 0.05}
	lensFar := model.Lens{ID: "far", FocalLength: 0.3, Position: 0.4}

	unordered := BuildSystemMatrix([]model.Lens{lensFar, lensNear}, 0.6)
	ordered := BuildSystemMatrix([]model.Lens{lensNear, lensFar}, 0.6)
	if !matricesEqual(unordered, ordered, 1e-12) {
		t.Errorf("lens order changed the system matrix: %+v vs %+v", unordered, ordered)
	}
}

func TestOutputAngle_CollimatedOnAxis(t *testing.T) {
	// A single lens at the origin: C·0 + D·θ with D == 1 reproduces
	// the input angle.
	lenses := []model.Lens{{ID: "l1", FocalLength: 0.2, Position: 0}}
	m := BuildSystemMatrix(lenses, 0.2)

	theta := DegToRad(12)
	if got := OutputAngle(m, 0, theta); !scalar.EqualWithinAbs(got, theta, 1e-12) {
		t.Errorf("OutputAngle = %g, want %g", got, theta)
	}
}

func matricesEqual(a, b ABCDMatrix, tol float64) bool {
	return scalar.EqualWithinAbs(a.A, b.A, tol) &&
		scalar.EqualWithinAbs(a.B, b.B, tol) &&
		scalar.EqualWithinAbs(a.C, b.C, tol) &&
		scalar.EqualWithinAbs(a.D, b.D, tol)
}
