package geometry

import (
	"math"

	"github.com/golang/geo/s1"
)

// ProjectTo returns the orthogonal projection of v onto axis. When axis is
// the zero vector the division by axis·axis yields NaN components, which
// propagate; callers needing a guard must check axis themselves.
func (v Vector3) ProjectTo(axis Vector3) Vector3 {
	return axis.Scale(v.Dot(axis) / axis.Dot(axis))
}

// RejectFrom returns the component of v perpendicular to axis, so that
// v.ProjectTo(axis).Add(v.RejectFrom(axis)) reconstructs v.
func (v Vector3) RejectFrom(axis Vector3) Vector3 {
	return v.Subtract(v.ProjectTo(axis))
}

// Reflect returns v mirrored across the axis b. Reflecting twice across the
// same axis returns the original vector.
func (v Vector3) Reflect(b Vector3) Vector3 {
	return v.ProjectTo(b).Scale(2).Subtract(v)
}

// Refract returns the refracted direction of the unit incident vector v
// against the unit surface normal, with eta the ratio of refractive indices
// η_in/η_out. The second return value is false under total internal
// reflection, where no transmitted direction exists. Unit-length inputs are
// the caller's responsibility and are not checked.
func (v Vector3) Refract(normal Vector3, eta float64) (Vector3, bool) {
	c := v.Dot(normal)
	k := 1 - eta*eta*(1-c*c)
	if k < 0 {
		return Vector3{}, false
	}
	return v.Scale(eta).Subtract(normal.Scale(eta*c + math.Sqrt(k))), true
}

// ScaleAlongAxis scales only the component of v parallel to axis by s,
// leaving the perpendicular component untouched.
func (v Vector3) ScaleAlongAxis(axis Vector3, s float64) Vector3 {
	p := v.ProjectTo(axis)
	return v.Subtract(p).Add(p.Scale(s))
}

// RotateX returns v rotated by angle radians about the X axis, right-handed.
func (v Vector3) RotateX(angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	return Vector3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY returns v rotated by angle radians about the Y axis, right-handed.
func (v Vector3) RotateY(angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	return Vector3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ returns v rotated by angle radians about the Z axis, right-handed.
func (v Vector3) RotateZ(angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	return Vector3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Rotate returns v rotated by angle radians about an arbitrary axis using the
// Rodrigues formula. The axis need not be normalized.
func (v Vector3) Rotate(axis Vector3, angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	u := axis.Normalize()
	return v.Scale(cos).
		Add(u.Cross(v).Scale(sin)).
		Add(u.Scale(u.Dot(v) * (1 - cos)))
}

// Angle returns the angle between v and b. The atan2 form stays accurate for
// nearly parallel and nearly anti-parallel operands where acos loses
// precision.
func (v Vector3) Angle(b Vector3) s1.Angle {
	return s1.Angle(math.Atan2(v.Cross(b).Norm(), v.Dot(b)))
}
