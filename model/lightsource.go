package model

// LightSource describes the collimated sunlight entering the system.
type LightSource struct {
	// Intensity is the areal power density in W/m². Must be > 0.
	Intensity float64

	// ZenithAngleDeg is the angle between the incoming light and the
	// optical axis, in degrees. 0 is normal incidence; 90 projects the
	// aperture to zero and is a valid boundary, not an error.
	ZenithAngleDeg float64
}

// Site is a geographic location used by the sun tracker to derive the
// zenith angle of a LightSource over time.
type Site struct {
	LatitudeDeg  float64
	LongitudeDeg float64
	ElevationM   float64
}
