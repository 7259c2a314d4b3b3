package model

// RayTraceResult is the focal-spot geometry at the receiver plane for
// a single evaluation. Results are constructed fresh per call and
// never mutated. IsValid must be checked before trusting any other
// field: a malformed system yields a zeroed result with IsValid=false.
type RayTraceResult struct {
	// SpotDiameter at the receiver plane. Never reported as exactly
	// zero: perfect focus is floored to a minimum diameter so the
	// area and concentration math stays finite.
	SpotDiameter float64

	// SpotArea is the circular area of the spot.
	SpotArea float64

	// SpotCenterY and SpotCenterZ locate the spot centre on the
	// receiver plane. The model is two-dimensional in the tilt plane,
	// so SpotCenterZ is always zero.
	SpotCenterY float64
	SpotCenterZ float64

	// EffectiveArea is the geometric overlap between the spot and the
	// receiver's active surface.
	EffectiveArea float64

	// ConcentrationRatio is input aperture area over spot area; zero
	// when the spot area is zero.
	ConcentrationRatio float64

	// OutputAngleRad is the paraxial exit angle derived from the
	// system's ray-transfer matrix.
	OutputAngleRad float64

	// TotalTransmittance is the cumulative lens transmittance.
	TotalTransmittance float64

	IsValid bool
}

// PowerCalculationResult is the power and efficiency outcome for one
// system and light source.
type PowerCalculationResult struct {
	InputPower  float64
	OutputPower float64

	SpotDiameter       float64
	EffectiveArea      float64
	ConcentrationRatio float64

	// SystemEfficiency is OutputPower / InputPower, zero when the
	// input power is zero.
	SystemEfficiency float64

	IsValid bool
}

// AngleSweepResult is one point of an incidence-angle response curve.
type AngleSweepResult struct {
	AngleDeg         float64
	OutputPower      float64
	SystemEfficiency float64
}
