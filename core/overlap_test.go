package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

func TestCircleCircleOverlap_FullContainment(t *testing.T) {
	// A small spot inside a much larger circular receiver captures the
	// whole spot area.
	spotR := 0.01
	got := CircleCircleOverlap(spotR, 0.5, 0.02)
	want := math.Pi * spotR * spotR
	if !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("contained overlap = %g, want spot area %g", got, want)
	}
}

func TestCircleCircleOverlap_Disjoint(t *testing.T) {
	if got := CircleCircleOverlap(0.1, 0.2, 0.3); got != 0 {
		t.Errorf("disjoint circles overlap = %g, want 0", got)
	}
	if got := CircleCircleOverlap(0.1, 0.2, 0.5); got != 0 {
		t.Errorf("separated circles overlap = %g, want 0", got)
	}
}

func TestCircleCircleOverlap_TangentNeverNegative(t *testing.T) {
	// 0.1+0.2 rounds to 0.30000000000000004 in float64, so d=0.3 lands
	// a hair inside the partial-overlap branch. The segment formula must
	// not leak a negative area out of that sliver.
	if got := CircleCircleOverlap(0.1, 0.2, 0.3); got != 0 {
		t.Errorf("tangent circles overlap = %g, want 0", got)
	}
	// Externally tangent with an exactly representable sum.
	if got := CircleCircleOverlap(0.25, 0.25, 0.5); got != 0 {
		t.Errorf("tangent equal circles overlap = %g, want 0", got)
	}
	for _, d := range []float64{0.29, 0.295, 0.299, 0.2999999} {
		if got := CircleCircleOverlap(0.1, 0.2, d); got < 0 {
			t.Errorf("overlap at d=%g is negative: %g", d, got)
		}
	}
}

func TestCircleCircleOverlap_HalfwayIsSymmetric(t *testing.T) {
	// Equal circles at partial overlap: the formula must be symmetric
	// in its radii.
	a := CircleCircleOverlap(0.2, 0.3, 0.25)
	b := CircleCircleOverlap(0.3, 0.2, 0.25)
	if !scalar.EqualWithinAbs(a, b, 1e-12) {
		t.Errorf("overlap not symmetric: %g vs %g", a, b)
	}
	if a <= 0 || a >= math.Pi*0.2*0.2 {
		t.Errorf("partial overlap %g outside (0, smaller circle area)", a)
	}
}

func TestCircleCircleOverlap_EqualCirclesCoincident(t *testing.T) {
	r := 0.25
	got := CircleCircleOverlap(r, r, 0)
	if !scalar.EqualWithinAbs(got, math.Pi*r*r, 1e-12) {
		t.Errorf("coincident circles overlap = %g, want full area", got)
	}
}

func TestCircleRectOverlap_CentredSpotCapsAtSpotArea(t *testing.T) {
	// Small centred spot on a large cell: the bounding-box overlap is
	// the full square, capped at the circular spot area.
	r := 0.0005
	got := CircleRectOverlap(0, 0, r, 0.05, 0.05)
	want := math.Pi * r * r
	if !scalar.EqualWithinAbs(got, want, 1e-15) {
		t.Errorf("centred overlap = %g, want spot area %g", got, want)
	}
}

func TestCircleRectOverlap_NoOverlap(t *testing.T) {
	if got := CircleRectOverlap(1.0, 0, 0.01, 0.05, 0.05); got != 0 {
		t.Errorf("far-off spot overlap = %g, want 0", got)
	}
}

func TestCircleRectOverlap_EdgeAppliesShapeCorrection(t *testing.T) {
	// Spot straddling the cell edge: the clipped box centre moves more
	// than r/2 from the spot centre, so the π/4 correction applies.
	r := 0.02
	cy := 0.025 + r*0.9 // most of the spot outside a 0.05-wide cell
	got := CircleRectOverlap(cy, 0, r, 0.05, 0.05)

	overlapW := (0.025) - (cy - r)
	wantBox := overlapW * (2 * r)
	want := wantBox * circleBoxRatio
	if !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("edge overlap = %g, want π/4-corrected %g", got, want)
	}
}

func TestReceiverOverlap_DispatchesOnShape(t *testing.T) {
	circ := model.NewCircularCell(0.1, 0.2, 0.2)
	rect := model.NewRectangularCell(0.1, 0.1, 0.2, 0.2)

	r := 0.001
	spotArea := math.Pi * r * r
	if got := ReceiverOverlap(circ, 0, 0, r); !scalar.EqualWithinAbs(got, spotArea, 1e-12) {
		t.Errorf("circular receiver overlap = %g, want %g", got, spotArea)
	}
	if got := ReceiverOverlap(rect, 0, 0, r); !scalar.EqualWithinAbs(got, spotArea, 1e-12) {
		t.Errorf("rectangular receiver overlap = %g, want %g", got, spotArea)
	}
}
