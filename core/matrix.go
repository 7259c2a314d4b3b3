package core

import (
	"sort"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

// ABCDMatrix is a 2×2 paraxial ray-transfer operator relating an input
// ray's (transverse offset, angle) to the output ray's. It has no
// identity beyond its four coefficients.
type ABCDMatrix struct {
	A, B float64
	C, D float64
}

// IdentityMatrix returns the do-nothing ray-transfer operator.
func IdentityMatrix() ABCDMatrix {
	return ABCDMatrix{A: 1, B: 0, C: 0, D: 1}
}

// LensMatrix returns the thin-lens operator for focal length f.
// Undefined for f == 0; validation rejects that upstream and the trace
// layer guards it again.
func LensMatrix(f float64) ABCDMatrix {
	return ABCDMatrix{A: 1, B: 0, C: -1 / f, D: 1}
}

// PropagationMatrix returns free-space propagation over distance d.
func PropagationMatrix(d float64) ABCDMatrix {
	return ABCDMatrix{A: 1, B: d, C: 0, D: 1}
}

// Multiply returns the matrix product m1·m2, i.e. m1 applied after m2
// in the right-to-left ray-transfer composition convention.
func Multiply(m1, m2 ABCDMatrix) ABCDMatrix {
	return ABCDMatrix{
		A: m1.A*m2.A + m1.B*m2.C,
		B: m1.A*m2.B + m1.B*m2.D,
		C: m1.C*m2.A + m1.D*m2.C,
		D: m1.C*m2.B + m1.D*m2.D,
	}
}

// BuildSystemMatrix composes the ray-transfer matrix from the optical
// axis origin (position 0) to the receiver plane: a propagation to
// each lens in ascending position order, the lens itself, and a final
// propagation to the receiver when it lies beyond the last lens.
// An empty lens slice yields the identity.
func BuildSystemMatrix(lenses []model.Lens, receiverPosition float64) ABCDMatrix {
	system := IdentityMatrix()
	if len(lenses) == 0 {
		return system
	}

	sorted := make([]model.Lens, len(lenses))
	copy(sorted, lenses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	current := 0.0
	for _, lens := range sorted {
		if gap := lens.Position - current; gap > 0 {
			system = Multiply(PropagationMatrix(gap), system)
		}
		system = Multiply(LensMatrix(lens.FocalLength), system)
		current = lens.Position
	}

	if gap := receiverPosition - current; gap > 0 {
		system = Multiply(PropagationMatrix(gap), system)
	}
	return system
}

// OutputAngle returns the paraxial angular output C·y + D·θ for an
// input ray with transverse offset yIn and angle thetaIn (radians).
func OutputAngle(m ABCDMatrix, yIn, thetaIn float64) float64 {
	return m.C*yIn + m.D*thetaIn
}
