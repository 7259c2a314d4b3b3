package core

import (
	"math"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

// CalculatePower runs the full optical-power budget for a single-lens
// system: trace the focal spot, project the input power through the
// lens transmittance, the concentration gain and the incidence cosine,
// and convert what lands on the receiver at its efficiency.
//
// A malformed system (anything TraceRays rejects) yields a zeroed
// result with IsValid=false. For physically sane inputs OutputPower
// never exceeds InputPower: every factor in the chain is bounded by
// its reference quantity.
func CalculatePower(system model.OpticalSystem, source model.LightSource) model.PowerCalculationResult {
	trace := TraceRays(system, source)
	if !trace.IsValid {
		return model.PowerCalculationResult{}
	}
	lens := system.Lenses[0]

	effectiveAperture := EffectiveAperture(lens.Aperture, source.ZenithAngleDeg)
	inputArea := math.Pi * (effectiveAperture / 2) * (effectiveAperture / 2)
	inputPower := source.Intensity * inputArea

	incidenceCos := math.Cos(trace.OutputAngleRad)
	if incidenceCos < 0 {
		incidenceCos = 0
	}

	opticalIntensity := source.Intensity * trace.TotalTransmittance
	effectiveIntensity := opticalIntensity * trace.ConcentrationRatio * incidenceCos

	incidentPower := effectiveIntensity * trace.EffectiveArea
	outputPower := incidentPower * system.Receiver.Efficiency

	efficiency := 0.0
	if inputPower > 0 {
		efficiency = outputPower / inputPower
	}

	return model.PowerCalculationResult{
		InputPower:         inputPower,
		OutputPower:        outputPower,
		SpotDiameter:       trace.SpotDiameter,
		EffectiveArea:      trace.EffectiveArea,
		ConcentrationRatio: trace.ConcentrationRatio,
		SystemEfficiency:   efficiency,
		IsValid:            true,
	}
}
