package core

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// solarConstant is the extraterrestrial solar irradiance in W/m².
const solarConstant = 1353.0

// SunTracker derives the zenith angle and clear-sky intensity of
// sunlight at a fixed site over time. It is the time-varying input to
// the power engine during a day simulation: each tick produces a fresh
// LightSource from the tracker's outputs.
type SunTracker struct {
	// LatitudeDeg and LongitudeDeg locate the site; north and east
	// are positive.
	LatitudeDeg  float64
	LongitudeDeg float64

	// ElevationM is the site elevation above sea level in metres.
	ElevationM float64
}

// ZenithAt returns the sun's zenith angle in degrees at time t,
// clamped to [0,90]. A sun at or below the horizon reports 90, which
// projects the collecting aperture to zero.
func (st SunTracker) ZenithAt(t time.Time) float64 {
	pos := suncalc.GetPosition(t, st.LatitudeDeg, st.LongitudeDeg)
	zenith := 90.0 - RadToDeg(pos.Altitude)
	if zenith < 0 {
		return 0
	}
	if zenith > 90 {
		return 90
	}
	return zenith
}

// DirectIntensityAt estimates the clear-sky direct normal irradiance
// in W/m² at time t. Air mass follows the Kasten–Young approximation
// and the atmospheric attenuation uses the elevation-adjusted Meinel
// model. Returns 0 when the sun is at or below the horizon.
func (st SunTracker) DirectIntensityAt(t time.Time) float64 {
	pos := suncalc.GetPosition(t, st.LatitudeDeg, st.LongitudeDeg)
	if pos.Altitude <= 0 {
		return 0
	}
	zenithDeg := 90.0 - RadToDeg(pos.Altitude)

	airMass := 1 / (math.Cos(DegToRad(zenithDeg)) +
		0.50572*math.Pow(96.07995-zenithDeg, -1.6364))

	const a = 0.14
	h := st.ElevationM / 1000.0
	return solarConstant * ((1-a*h)*math.Pow(0.7, math.Pow(airMass, 0.678)) + a*h)
}
