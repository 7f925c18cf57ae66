package geometry

import "math/rand"

// Random returns a vector with each component independently uniform in [0, 1),
// drawn from the default math/rand source.
func Random() Vector3 {
	return Vector3{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()}
}

// FromPoints returns the displacement vector b - a.
func FromPoints(a, b Vector3) Vector3 {
	return b.Subtract(a)
}

// FromBarycentric returns the cartesian point a + (b-a)*u + (c-a)*v for the
// triangle (a, b, c) with barycentric weights (u, v) and implicit w = 1-u-v.
func FromBarycentric(a, b, c Vector3, u, v float64) Vector3 {
	return a.Add(b.Subtract(a).Scale(u)).Add(c.Subtract(a).Scale(v))
}
