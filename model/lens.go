package model

// Lens is a thin lens on the optical axis. It is a plain value: the
// engine never mutates a Lens in place, callers replace the whole
// record when editing a system.
//
// All lengths share one unit (metres in the bundled scenarios). The
// axial Position is measured from an arbitrary origin along the axis.
type Lens struct {
	// ID is an opaque identifier, unique within an OpticalSystem.
	// The engine only consumes IDs; it never generates them.
	ID string

	// Aperture is the clear diameter of the lens. Must be > 0.
	Aperture float64

	// FocalLength of the thin lens. Must be > 0.
	FocalLength float64

	// Position is the axial coordinate of the lens plane. Must be >= 0.
	Position float64

	// Transmittance is the fraction of incident power passing through
	// the lens, in [0,1].
	Transmittance float64
}

// NewLens builds a lens record. Range rules are enforced by the
// validation layer, not here, so loaders can construct first and
// report all violations at once.
func NewLens(id string, aperture, focalLength, position, transmittance float64) Lens {
	return Lens{
		ID:            id,
		Aperture:      aperture,
		FocalLength:   focalLength,
		Position:      position,
		Transmittance: transmittance,
	}
}
