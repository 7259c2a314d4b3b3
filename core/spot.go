package core

import (
	"math"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

// MinSpotDiameter is the floor applied to the focal-spot diameter. An
// exactly-focused beam would otherwise report a zero-diameter spot and
// break the area and concentration math; the floor is a numerical
// convention, not a physical claim.
const MinSpotDiameter = 0.001

// EffectiveAperture projects the clear aperture onto the incoming
// wavefront: full aperture at zenith angle 0, zero at 90 degrees.
// The boundary is handled explicitly because cos(π/2) is not exactly
// zero in float64 and grazing incidence must carry no power at all.
func EffectiveAperture(aperture, zenithAngleDeg float64) float64 {
	if zenithAngleDeg >= 90 {
		return 0
	}
	return aperture * math.Cos(DegToRad(zenithAngleDeg))
}

// TraceRays computes the focal-spot geometry at the receiver plane for
// a single-lens system under the given light source.
//
// The geometric model is exact only for exactly one lens; any other
// lens count (and any non-positive focal length slipping past
// validation) yields a zeroed result with IsValid=false rather than a
// partially computed one. Callers must check IsValid before reading
// the other fields.
func TraceRays(system model.OpticalSystem, source model.LightSource) model.RayTraceResult {
	if len(system.Lenses) != 1 {
		return model.RayTraceResult{}
	}
	lens := system.Lenses[0]
	if lens.FocalLength <= 0 {
		return model.RayTraceResult{}
	}

	zenithRad := DegToRad(source.ZenithAngleDeg)
	effectiveAperture := EffectiveAperture(lens.Aperture, source.ZenithAngleDeg)
	distance := system.Receiver.Position - lens.Position

	// Defocus blur grows linearly with the fractional distance from
	// the focal plane. Receiver at or before the lens degenerates to
	// the projected aperture itself: the beam has not converged yet.
	var spotDiameter float64
	switch {
	case distance <= 0:
		spotDiameter = effectiveAperture
	case distance == lens.FocalLength:
		spotDiameter = 0
	default:
		spotDiameter = effectiveAperture * math.Abs(distance-lens.FocalLength) / lens.FocalLength
	}
	if spotDiameter < MinSpotDiameter {
		spotDiameter = MinSpotDiameter
	}

	spotRadius := spotDiameter / 2
	spotArea := math.Pi * spotRadius * spotRadius

	// Tilt displaces the focal point laterally; the displacement at
	// the receiver plane scales with distance over focal length. The
	// model is planar, so the Z component stays zero.
	focalShiftY := lens.FocalLength * math.Tan(zenithRad)
	spotCenterY := focalShiftY * (distance / lens.FocalLength)

	inputArea := math.Pi * (effectiveAperture / 2) * (effectiveAperture / 2)
	concentration := 0.0
	if spotArea > 0 {
		concentration = inputArea / spotArea
	}

	effectiveArea := ReceiverOverlap(system.Receiver, spotCenterY, 0, spotRadius)

	matrix := BuildSystemMatrix(system.Lenses, system.Receiver.Position)
	outputAngle := OutputAngle(matrix, 0, zenithRad)

	return model.RayTraceResult{
		SpotDiameter:       spotDiameter,
		SpotArea:           spotArea,
		SpotCenterY:        spotCenterY,
		SpotCenterZ:        0,
		EffectiveArea:      effectiveArea,
		ConcentrationRatio: concentration,
		OutputAngleRad:     outputAngle,
		TotalTransmittance: lens.Transmittance,
		IsValid:            true,
	}
}
