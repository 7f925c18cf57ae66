package geometry

import "math"

// In-place counterparts of the pure operations. Each mutates the receiver's
// fields and returns the receiver for chaining, trading allocation for
// throughput in tight loops.
//
// A vector shared between callers and passed to one of these methods is
// mutated for all of them; across goroutines that same sharing needs external
// synchronization. The pure API has neither hazard.

// AddSelf adds b into v.
func (v *Vector3) AddSelf(b Vector3) *Vector3 {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	return v
}

// SubtractSelf subtracts b from v.
func (v *Vector3) SubtractSelf(b Vector3) *Vector3 {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	return v
}

// NegateSelf negates every component of v.
func (v *Vector3) NegateSelf() *Vector3 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

// ScaleSelf multiplies every component of v by s.
func (v *Vector3) ScaleSelf(s float64) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// HadamardSelf multiplies v component-wise by b.
func (v *Vector3) HadamardSelf(b Vector3) *Vector3 {
	v.X *= b.X
	v.Y *= b.Y
	v.Z *= b.Z
	return v
}

// NormalizeSelf scales v to unit length in place, with the same fast path as
// Normalize: a zero or already-unit vector is left untouched.
func (v *Vector3) NormalizeSelf() *Vector3 {
	n2 := v.Norm2()
	if n2 == 0 || n2 == 1 {
		return v
	}
	return v.ScaleSelf(1 / math.Sqrt(n2))
}
