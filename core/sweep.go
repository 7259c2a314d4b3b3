package core

import "github.com/signalsfoundry/concentrator-simulator/model"

// SweepAngle evaluates the power engine across a linear zenith-angle
// range and returns one result per angle from startDeg to endDeg
// inclusive, stepping by stepDeg. The end point is included only when
// repeated addition of the step lands on it exactly; there is no
// snapping. A non-positive step or endDeg < startDeg returns an empty
// slice.
//
// The sweep is a pure function of its inputs; each point is an
// independent evaluation and the returned order follows the angles.
func SweepAngle(system model.OpticalSystem, intensity, startDeg, endDeg, stepDeg float64) []model.AngleSweepResult {
	if stepDeg <= 0 || endDeg < startDeg {
		return nil
	}

	var results []model.AngleSweepResult
	for angle := startDeg; angle <= endDeg; angle += stepDeg {
		power := CalculatePower(system, model.LightSource{
			Intensity:      intensity,
			ZenithAngleDeg: angle,
		})
		results = append(results, model.AngleSweepResult{
			AngleDeg:         angle,
			OutputPower:      power.OutputPower,
			SystemEfficiency: power.SystemEfficiency,
		})
	}
	return results
}
