package core

import (
	"testing"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

// The worked reference scenario: 10 cm lens focusing onto a 5×5 cm
// cell at the focal plane under 1000 W/m² at normal incidence.
func TestCalculatePower_ReferenceScenario(t *testing.T) {
	sys := singleLensSystem()
	res := CalculatePower(sys, model.LightSource{Intensity: 1000, ZenithAngleDeg: 0})

	if !res.IsValid {
		t.Fatalf("expected valid result, got %+v", res)
	}
	if res.InputPower <= 0 {
		t.Errorf("InputPower = %g, want > 0", res.InputPower)
	}
	if res.OutputPower <= 0 || res.OutputPower >= res.InputPower {
		t.Errorf("OutputPower = %g, want in (0, InputPower=%g)", res.OutputPower, res.InputPower)
	}
	if res.SystemEfficiency <= 0 || res.SystemEfficiency >= 1 {
		t.Errorf("SystemEfficiency = %g, want in (0,1)", res.SystemEfficiency)
	}
}

func TestCalculatePower_OutputNeverExceedsInput(t *testing.T) {
	sys := singleLensSystem()
	for _, angle := range []float64{0, 5, 15, 30, 45, 60, 75, 89, 90} {
		res := CalculatePower(sys, model.LightSource{Intensity: 1000, ZenithAngleDeg: angle})
		if !res.IsValid {
			t.Fatalf("angle %g: expected valid result", angle)
		}
		if res.OutputPower > res.InputPower {
			t.Errorf("angle %g: OutputPower %g exceeds InputPower %g", angle, res.OutputPower, res.InputPower)
		}
		if res.SystemEfficiency < 0 || res.SystemEfficiency > 1 {
			t.Errorf("angle %g: SystemEfficiency = %g outside [0,1]", angle, res.SystemEfficiency)
		}
	}
}

func TestCalculatePower_OutputDecreasesWithZenithAngle(t *testing.T) {
	// Cosine and aperture-projection losses dominate: past normal
	// incidence the output must strictly decrease.
	// Angles small enough that the displaced spot stays on the cell;
	// once it walks off entirely the output pins at zero.
	sys := singleLensSystem()
	angles := []float64{0, 2, 4, 6}

	prev := -1.0
	for i, angle := range angles {
		res := CalculatePower(sys, model.LightSource{Intensity: 1000, ZenithAngleDeg: angle})
		if !res.IsValid {
			t.Fatalf("angle %g: expected valid result", angle)
		}
		if i > 0 && res.OutputPower >= prev {
			t.Errorf("OutputPower at %g° = %g, want < %g (at %g°)",
				angle, res.OutputPower, prev, angles[i-1])
		}
		prev = res.OutputPower
	}
}

func TestCalculatePower_GrazingIncidenceYieldsZero(t *testing.T) {
	// 90° projects the aperture to zero: no input power, zero
	// efficiency, and no division by zero anywhere.
	sys := singleLensSystem()
	res := CalculatePower(sys, model.LightSource{Intensity: 1000, ZenithAngleDeg: 90})
	if !res.IsValid {
		t.Fatalf("expected valid result at the 90° boundary, got %+v", res)
	}
	if res.InputPower != 0 {
		t.Errorf("InputPower = %g, want 0 at grazing incidence", res.InputPower)
	}
	if res.SystemEfficiency != 0 {
		t.Errorf("SystemEfficiency = %g, want 0 when input power is 0", res.SystemEfficiency)
	}
}

func TestCalculatePower_InvalidSystemIsZeroedSentinel(t *testing.T) {
	sys := singleLensSystem()
	sys.Lenses = nil

	res := CalculatePower(sys, model.LightSource{Intensity: 1000, ZenithAngleDeg: 0})
	if res.IsValid {
		t.Fatalf("expected IsValid=false for a lensless system")
	}
	if res != (model.PowerCalculationResult{}) {
		t.Errorf("expected zero-value sentinel, got %+v", res)
	}
}
