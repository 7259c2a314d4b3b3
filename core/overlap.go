package core

import (
	"math"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

// circleBoxRatio approximates how much of a square is covered by its
// inscribed circle (π/4). Used by the rectangular overlap heuristic.
const circleBoxRatio = math.Pi / 4

// CircleCircleOverlap returns the exact intersection area of two
// circles with radii r1 and r2 whose centres are d apart.
func CircleCircleOverlap(r1, r2, d float64) float64 {
	if r1 <= 0 || r2 <= 0 {
		return 0
	}
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		// Full containment: the smaller circle's area.
		r := math.Min(r1, r2)
		return math.Pi * r * r
	}

	// Two circular segments via the law of cosines. The partial
	// overlap branch guarantees d > 0, but guard the denominators
	// anyway.
	if d == 0 {
		r := math.Min(r1, r2)
		return math.Pi * r * r
	}
	a1 := clampAcosArg((d*d + r1*r1 - r2*r2) / (2 * d * r1))
	a2 := clampAcosArg((d*d + r2*r2 - r1*r1) / (2 * d * r2))
	kernel := (-d + r1 + r2) * (d + r1 - r2) * (d - r1 + r2) * (d + r1 + r2)
	if kernel < 0 {
		kernel = 0
	}
	area := r1*r1*math.Acos(a1) + r2*r2*math.Acos(a2) - 0.5*math.Sqrt(kernel)
	// Circles numerically tangent can slip past the disjoint guard
	// (d fractionally below r1+r2) and make the segment sum come out
	// a hair negative. Tangency has zero area.
	if area < 0 {
		return 0
	}
	return area
}

// CircleRectOverlap approximates the intersection area between a
// circular spot of radius r centred at (cy, cz) and an axis-aligned
// rectangle of the given width and height centred at the origin.
//
// The overlap of the spot's bounding square with the rectangle is
// computed exactly; a π/4 correction then accounts for the circular
// shape unless the overlap is centred close to the spot (within half
// the radius), in which case the box overlap is taken whole. Both
// branches cap at the spot's circular area. This is deliberately the
// classic bounding-box heuristic, not exact circle-rectangle geometry.
func CircleRectOverlap(cy, cz, r, width, height float64) float64 {
	if r <= 0 || width <= 0 || height <= 0 {
		return 0
	}

	overlapW := math.Min(cy+r, width/2) - math.Max(cy-r, -width/2)
	overlapH := math.Min(cz+r, height/2) - math.Max(cz-r, -height/2)
	if overlapW <= 0 || overlapH <= 0 {
		return 0
	}

	boxArea := overlapW * overlapH
	spotArea := math.Pi * r * r

	boxCenterY := (math.Min(cy+r, width/2) + math.Max(cy-r, -width/2)) / 2
	boxCenterZ := (math.Min(cz+r, height/2) + math.Max(cz-r, -height/2)) / 2
	dy := boxCenterY - cy
	dz := boxCenterZ - cz
	centreDist := math.Sqrt(dy*dy + dz*dz)

	if centreDist <= r/2 {
		return math.Min(boxArea, spotArea)
	}
	return math.Min(boxArea*circleBoxRatio, spotArea)
}

// ReceiverOverlap returns the effective captured area: the geometric
// intersection between the spot and the receiver's active surface.
func ReceiverOverlap(cell model.PhotovoltaicCell, cy, cz, r float64) float64 {
	switch cell.Shape {
	case model.ShapeCircular:
		d := math.Sqrt(cy*cy + cz*cz)
		return CircleCircleOverlap(r, cell.Diameter/2, d)
	case model.ShapeRectangular:
		return CircleRectOverlap(cy, cz, r, cell.Width, cell.Height)
	default:
		return 0
	}
}

func clampAcosArg(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
