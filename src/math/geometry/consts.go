package geometry

import "math"

const (
	Infinity = math.MaxFloat64

	// Epsilon is the absolute per-component tolerance used by Equals and
	// IsUnit. Components closer than this are treated as identical.
	Epsilon = 1e-13
)

var (
	// Zero is the zero vector. It is also the zero value of Vector3.
	Zero = Vector3{}

	// UnitX, UnitY and UnitZ are the right-handed coordinate axes.
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)
