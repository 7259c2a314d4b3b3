package core

import (
	"fmt"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

// ValidateLens checks a lens against its numeric-range rules and
// returns one human-readable violation per broken rule, in rule order.
// An empty slice is the sole success signal; validation never panics
// and no rule short-circuits another.
func ValidateLens(lens model.Lens) []string {
	var violations []string
	if lens.Aperture <= 0 {
		violations = append(violations, fmt.Sprintf("aperture must be positive, got %g", lens.Aperture))
	}
	if lens.FocalLength <= 0 {
		violations = append(violations, fmt.Sprintf("focal length must be positive, got %g", lens.FocalLength))
	}
	if lens.Position < 0 {
		violations = append(violations, fmt.Sprintf("position must be non-negative, got %g", lens.Position))
	}
	if lens.Transmittance < 0 || lens.Transmittance > 1 {
		violations = append(violations, fmt.Sprintf("transmittance must be within [0,1], got %g", lens.Transmittance))
	}
	return violations
}

// ValidatePhotovoltaicCell checks the receiver: dimension positivity
// for the active shape, efficiency in (0,1] (zero efficiency is
// rejected), and a non-negative position.
func ValidatePhotovoltaicCell(cell model.PhotovoltaicCell) []string {
	var violations []string
	switch cell.Shape {
	case model.ShapeRectangular:
		if cell.Width <= 0 {
			violations = append(violations, fmt.Sprintf("width must be positive, got %g", cell.Width))
		}
		if cell.Height <= 0 {
			violations = append(violations, fmt.Sprintf("height must be positive, got %g", cell.Height))
		}
	case model.ShapeCircular:
		if cell.Diameter <= 0 {
			violations = append(violations, fmt.Sprintf("diameter must be positive, got %g", cell.Diameter))
		}
	default:
		violations = append(violations, fmt.Sprintf("unknown receiver shape %d", cell.Shape))
	}
	if cell.Efficiency <= 0 || cell.Efficiency > 1 {
		violations = append(violations, fmt.Sprintf("efficiency must be within (0,1], got %g", cell.Efficiency))
	}
	if cell.Position < 0 {
		violations = append(violations, fmt.Sprintf("position must be non-negative, got %g", cell.Position))
	}
	return violations
}

// ValidateOpticalSystem checks system topology on top of the per-part
// rules: exactly one lens, and the receiver strictly beyond it.
// Per-lens and receiver violations are collected with positional
// prefixes so callers can attribute them.
func ValidateOpticalSystem(system model.OpticalSystem) []string {
	var violations []string

	if len(system.Lenses) != 1 {
		violations = append(violations, fmt.Sprintf("system must contain exactly one lens, got %d", len(system.Lenses)))
	}

	for i, lens := range system.Lenses {
		for _, v := range ValidateLens(lens) {
			violations = append(violations, fmt.Sprintf("lens %d: %s", i, v))
		}
	}

	for _, v := range ValidatePhotovoltaicCell(system.Receiver) {
		violations = append(violations, fmt.Sprintf("receiver: %s", v))
	}

	for i, lens := range system.Lenses {
		if system.Receiver.Position <= lens.Position {
			violations = append(violations, fmt.Sprintf("receiver position %g must be strictly beyond lens %d at %g",
				system.Receiver.Position, i, lens.Position))
		}
	}

	return violations
}
