package geometry

// Plane is the half-space n·p + Offset <= 0, with Normal the (unit) plane
// normal n. Points with positive signed distance lie outside.
type Plane struct {
	Normal Vector3
	Offset float64
}

// PlaneFromPoints returns the plane through the points a, b, c with normal
// a→b × a→c, normalized. Collinear points produce a zero normal with NaN
// offset after normalization, which propagates like every other degenerate
// input in this package.
func PlaneFromPoints(a, b, c Vector3) Plane {
	n := FromPoints(a, b).Cross(FromPoints(a, c)).Normalize()
	return Plane{Normal: n, Offset: -n.Dot(a)}
}

// DistanceTo returns the signed distance from p to the plane.
func (pl Plane) DistanceTo(p Vector3) float64 {
	return pl.Normal.Dot(p) + pl.Offset
}

// PointInsidePlanes reports whether point lies inside every half-space, with
// margin slack on each signed distance.
func PointInsidePlanes(planes []Plane, point Vector3, margin float64) bool {
	for _, pl := range planes {
		if pl.DistanceTo(point)-margin > 0 {
			return false
		}
	}
	return true
}

// VerticesBehindPlane reports whether every vertex lies inside the plane's
// half-space, with margin slack.
func VerticesBehindPlane(plane Plane, vertices []Vector3, margin float64) bool {
	for _, p := range vertices {
		if plane.DistanceTo(p)-margin > 0 {
			return false
		}
	}
	return true
}
