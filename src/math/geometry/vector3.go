// Package geometry provides a 3-component float64 vector for graphics and
// physics code: algebraic operations, projections, reflection and refraction,
// axis rotations and affine matrix application.
//
// Every non-suffixed method is pure and returns a new value. The *Self
// variants in inplace.go mutate the receiver for allocation-sensitive loops.
package geometry

import (
	"fmt"
	"math"
)

// Vector3 is an ordered triple (X, Y, Z). The zero value is the zero vector.
// The type never enforces finiteness or unit length; NaN and ±Inf components
// propagate through arithmetic as IEEE 754 dictates.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// XYZ is implemented by any type exposing three numeric components in x, y, z
// order. Vector3 implements it, so constructors accepting an XYZ also accept
// the vector type itself.
type XYZ interface {
	Components() (x, y, z float64)
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// FromArray returns the vector with components taken from a in order.
func FromArray(a [3]float64) Vector3 {
	return Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// FromSlice consumes the first three elements of s positionally. Missing
// trailing elements default to 0; excess elements are ignored.
func FromSlice(s []float64) Vector3 {
	var v Vector3
	if len(s) > 0 {
		v.X = s[0]
	}
	if len(s) > 1 {
		v.Y = s[1]
	}
	if len(s) > 2 {
		v.Z = s[2]
	}
	return v
}

// FromXYZ copies the components of src by value.
func FromXYZ(src XYZ) Vector3 {
	x, y, z := src.Components()
	return Vector3{X: x, Y: y, Z: z}
}

// Components returns the three components in order. It makes Vector3 satisfy
// the XYZ interface.
func (v Vector3) Components() (x, y, z float64) {
	return v.X, v.Y, v.Z
}

// Add returns the sum v + b.
func (v Vector3) Add(b Vector3) Vector3 {
	return Vector3{X: v.X + b.X, Y: v.Y + b.Y, Z: v.Z + b.Z}
}

// Subtract returns the difference v - b.
func (v Vector3) Subtract(b Vector3) Vector3 {
	return Vector3{X: v.X - b.X, Y: v.Y - b.Y, Z: v.Z - b.Z}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns v multiplied component-wise by the scalar s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Hadamard returns the component-wise product v ∘ b.
func (v Vector3) Hadamard(b Vector3) Vector3 {
	return Vector3{X: v.X * b.X, Y: v.Y * b.Y, Z: v.Z * b.Z}
}

// Dot returns the dot product v · b.
func (v Vector3) Dot(b Vector3) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Cross returns the cross product v × b. The result is anti-commutative and
// orthogonal to both operands.
func (v Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		X: v.Y*b.Z - v.Z*b.Y,
		Y: v.Z*b.X - v.X*b.Z,
		Z: v.X*b.Y - v.Y*b.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Norm2 returns the squared length of v, avoiding the sqrt of Norm.
func (v Vector3) Norm2() float64 {
	return v.Dot(v)
}

// Distance returns the Euclidean distance between v and b.
func (v Vector3) Distance(b Vector3) float64 {
	return v.Subtract(b).Norm()
}

// Normalize returns v scaled to unit length. When v is the zero vector or
// already of unit length the receiver is returned unchanged, so callers must
// not rely on getting a fresh value back.
func (v Vector3) Normalize() Vector3 {
	n2 := v.Norm2()
	if n2 == 0 || n2 == 1 {
		return v
	}
	return v.Scale(1 / math.Sqrt(n2))
}

// Lerp returns the linear interpolation v + t*(b - v). t is unrestricted;
// values outside [0, 1] extrapolate.
func (v Vector3) Lerp(b Vector3, t float64) Vector3 {
	return Vector3{
		X: v.X + t*(b.X-v.X),
		Y: v.Y + t*(b.Y-v.Y),
		Z: v.Z + t*(b.Z-v.Z),
	}
}

// Equals reports whether every component of v is within Epsilon of the
// corresponding component of b.
func (v Vector3) Equals(b Vector3) bool {
	if v == b {
		return true
	}
	return math.Abs(v.X-b.X) < Epsilon &&
		math.Abs(v.Y-b.Y) < Epsilon &&
		math.Abs(v.Z-b.Z) < Epsilon
}

// NotEquals is the negation of Equals.
func (v Vector3) NotEquals(b Vector3) bool {
	return !v.Equals(b)
}

// IsUnit reports whether v has unit length within Epsilon.
func (v Vector3) IsUnit() bool {
	return math.Abs(v.Norm2()-1) < Epsilon
}

// IsZero reports whether every component is within Epsilon of zero.
func (v Vector3) IsZero() bool {
	return v.Equals(Zero)
}

// ToArray returns the components as a fixed-size array in order.
func (v Vector3) ToArray() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// ToSlice returns the components as a freshly allocated slice in order.
func (v Vector3) ToSlice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Clone returns a copy of v. Redundant for a value type, kept for callers
// holding *Vector3.
func (v Vector3) Clone() Vector3 {
	return v
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Apply returns fn evaluated component-wise over (v, b).
func (v Vector3) Apply(fn func(a, b float64) float64, b Vector3) Vector3 {
	return Vector3{
		X: fn(v.X, b.X),
		Y: fn(v.Y, b.Y),
		Z: fn(v.Z, b.Z),
	}
}

// ApplyUnary returns fn evaluated component-wise over v.
func (v Vector3) ApplyUnary(fn func(a float64) float64) Vector3 {
	return Vector3{X: fn(v.X), Y: fn(v.Y), Z: fn(v.Z)}
}

// Min returns the component-wise minimum of v and b.
func (v Vector3) Min(b Vector3) Vector3 {
	return v.Apply(math.Min, b)
}

// Max returns the component-wise maximum of v and b.
func (v Vector3) Max(b Vector3) Vector3 {
	return v.Apply(math.Max, b)
}

// Abs returns the component-wise absolute value.
func (v Vector3) Abs() Vector3 {
	return v.ApplyUnary(math.Abs)
}

// Floor returns the component-wise floor.
func (v Vector3) Floor() Vector3 {
	return v.ApplyUnary(math.Floor)
}

// Ceil returns the component-wise ceiling.
func (v Vector3) Ceil() Vector3 {
	return v.ApplyUnary(math.Ceil)
}

// Clamp returns v with every component limited to [lo, hi].
func (v Vector3) Clamp(lo, hi float64) Vector3 {
	return v.ApplyUnary(func(a float64) float64 {
		return math.Min(math.Max(a, lo), hi)
	})
}
