package model

// OpticalSystem is an ordered-by-position collection of lenses plus
// exactly one photovoltaic receiver. Lens order in the slice does not
// matter; the engine sorts by Position before tracing. The
// exactly-one-lens invariant is enforced by validation, not by the
// type itself.
type OpticalSystem struct {
	Lenses   []Lens
	Receiver PhotovoltaicCell
}

// NewOpticalSystem assembles a system from its parts.
func NewOpticalSystem(lenses []Lens, receiver PhotovoltaicCell) OpticalSystem {
	return OpticalSystem{Lenses: lenses, Receiver: receiver}
}

// Installation binds an optical system to a geographic site and a
// light source. It is the unit stored in the knowledge base and driven
// by the simulator's tick loop.
type Installation struct {
	ID   string
	Name string

	Site   Site
	System OpticalSystem
	Source LightSource
}
