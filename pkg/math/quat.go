package math

import "math"

// compressedQuatScale maps a signed 16-bit component onto [-1, 1].
const compressedQuatScale = 32767

// Quat represents a rotation quaternion. W is the scalar part.
// Pure3D stores the components in W, X, Y, Z order.
type Quat struct {
	W, X, Y, Z float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromCompressed rebuilds a quaternion from four signed 16-bit
// components in file order.
func QuatFromCompressed(w, x, y, z int16) Quat {
	return Quat{
		W: float32(w) / compressedQuatScale,
		X: float32(x) / compressedQuatScale,
		Y: float32(y) / compressedQuatScale,
		Z: float32(z) / compressedQuatScale,
	}
}

// Length returns the quaternion norm.
func (q Quat) Length() float32 {
	return float32(math.Sqrt(float64(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)))
}

// Normalize returns a unit quaternion, or identity for a degenerate input.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l < 1e-6 {
		return QuatIdentity()
	}
	return Quat{W: q.W / l, X: q.X / l, Y: q.Y / l, Z: q.Z / l}
}

// ToMat4 converts the quaternion to a rotation matrix in column-vector form.
func (q Quat) ToMat4() Mat4 {
	q = q.Normalize()
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z

	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	var m Mat4
	m.set(0, 0, 1-(yy+zz))
	m.set(0, 1, xy-wz)
	m.set(0, 2, xz+wy)
	m.set(1, 0, xy+wz)
	m.set(1, 1, 1-(xx+zz))
	m.set(1, 2, yz-wx)
	m.set(2, 0, xz-wy)
	m.set(2, 1, yz+wx)
	m.set(2, 2, 1-(xx+yy))
	m.set(3, 3, 1)
	return m
}
