package math

import "math"

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-12

// Mat4 is a 4x4 matrix in column-major order, acting on column vectors.
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Pure3D writes matrices row by row (M11..M44) for row vectors, with the
// translation in M41..M43. That byte order is exactly this layout, so a
// file matrix can be copied in unchanged; see FromRowMajor.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromRowMajor builds a matrix from sixteen values written M11..M44 for
// the row-vector convention.
func FromRowMajor(v [16]float32) Mat4 {
	return Mat4(v)
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

func (m Mat4) at(row, col int) float32 {
	return m[col*4+row]
}

func (m *Mat4) set(row, col int, v float32) {
	m[col*4+row] = v
}

// Mul returns m * other. Applied to a vector, other acts first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.at(row, k) * other.at(k, col)
			}
			out.set(row, col, sum)
		}
	}
	return out
}

// TransformPoint transforms a point (w=1), dividing by w when needed.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// Translation returns the translation component.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.set(col, row, m.at(row, col))
		}
	}
	return out
}

// Determinant returns the determinant, computed in float64.
func (m Mat4) Determinant() float64 {
	s, c := m.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// minors returns the 2x2 sub-determinants of the top two and bottom two
// rows used by both Determinant and Invert.
func (m Mat4) minors() (s, c [6]float64) {
	a := m.f64()
	s[0] = a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s[1] = a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s[2] = a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s[3] = a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s[4] = a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s[5] = a[0][2]*a[1][3] - a[1][2]*a[0][3]

	c[0] = a[2][0]*a[3][1] - a[3][0]*a[2][1]
	c[1] = a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c[2] = a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c[3] = a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c[4] = a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c[5] = a[2][2]*a[3][3] - a[3][2]*a[2][3]
	return s, c
}

func (m Mat4) f64() (a [4][4]float64) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			a[row][col] = float64(m.at(row, col))
		}
	}
	return a
}

// Invert returns the inverse matrix. ok is false when the matrix is
// singular, in which case the returned matrix is the zero value.
func (m Mat4) Invert() (inv Mat4, ok bool) {
	s, c := m.minors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if math.Abs(det) < singularEpsilon {
		return Mat4{}, false
	}
	a := m.f64()
	d := 1 / det

	b := [4][4]float64{
		{
			(a[1][1]*c[5] - a[1][2]*c[4] + a[1][3]*c[3]) * d,
			(-a[0][1]*c[5] + a[0][2]*c[4] - a[0][3]*c[3]) * d,
			(a[3][1]*s[5] - a[3][2]*s[4] + a[3][3]*s[3]) * d,
			(-a[2][1]*s[5] + a[2][2]*s[4] - a[2][3]*s[3]) * d,
		},
		{
			(-a[1][0]*c[5] + a[1][2]*c[2] - a[1][3]*c[1]) * d,
			(a[0][0]*c[5] - a[0][2]*c[2] + a[0][3]*c[1]) * d,
			(-a[3][0]*s[5] + a[3][2]*s[2] - a[3][3]*s[1]) * d,
			(a[2][0]*s[5] - a[2][2]*s[2] + a[2][3]*s[1]) * d,
		},
		{
			(a[1][0]*c[4] - a[1][1]*c[2] + a[1][3]*c[0]) * d,
			(-a[0][0]*c[4] + a[0][1]*c[2] - a[0][3]*c[0]) * d,
			(a[3][0]*s[4] - a[3][1]*s[2] + a[3][3]*s[0]) * d,
			(-a[2][0]*s[4] + a[2][1]*s[2] - a[2][3]*s[0]) * d,
		},
		{
			(-a[1][0]*c[3] + a[1][1]*c[1] - a[1][2]*c[0]) * d,
			(a[0][0]*c[3] - a[0][1]*c[1] + a[0][2]*c[0]) * d,
			(-a[3][0]*s[3] + a[3][1]*s[1] - a[3][2]*s[0]) * d,
			(a[2][0]*s[3] - a[2][1]*s[1] + a[2][2]*s[0]) * d,
		},
	}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			inv.set(row, col, float32(b[row][col]))
		}
	}
	return inv, true
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		d := m[i] - other[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}
