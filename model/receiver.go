package model

// ReceiverShape tags the active geometry of a PhotovoltaicCell.
type ReceiverShape int

const (
	// ShapeRectangular uses Width and Height.
	ShapeRectangular ReceiverShape = iota
	// ShapeCircular uses Diameter.
	ShapeCircular
)

// String returns the lowercase shape name used in scenario files.
func (s ReceiverShape) String() string {
	switch s {
	case ShapeRectangular:
		return "rectangular"
	case ShapeCircular:
		return "circular"
	default:
		return "unknown"
	}
}

// PhotovoltaicCell is the receiver at the end of the optical path.
// Shape selects which dimension fields are meaningful: Width/Height
// for rectangular cells, Diameter for circular ones. The inactive
// dimensions are carried for completeness but never read; construct
// cells via NewRectangularCell / NewCircularCell so the active set is
// always populated.
type PhotovoltaicCell struct {
	Shape ReceiverShape

	// Width and Height of a rectangular cell (> 0 when rectangular).
	Width  float64
	Height float64

	// Diameter of a circular cell (> 0 when circular).
	Diameter float64

	// Efficiency converts captured optical power to usable output,
	// in (0,1].
	Efficiency float64

	// Position is the axial coordinate of the receiver plane. It must
	// lie strictly beyond the lens.
	Position float64
}

// NewRectangularCell builds a rectangular receiver.
func NewRectangularCell(width, height, efficiency, position float64) PhotovoltaicCell {
	return PhotovoltaicCell{
		Shape:      ShapeRectangular,
		Width:      width,
		Height:     height,
		Efficiency: efficiency,
		Position:   position,
	}
}

// NewCircularCell builds a circular receiver.
func NewCircularCell(diameter, efficiency, position float64) PhotovoltaicCell {
	return PhotovoltaicCell{
		Shape:      ShapeCircular,
		Diameter:   diameter,
		Efficiency: efficiency,
		Position:   position,
	}
}
