package math

// Mat3 is a 3x3 matrix in column-major order.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float32

// Identity3 returns a 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3 returns the upper-left 3x3 block of the matrix.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat3) Inverse() Mat3 {
	det := m.Determinant()
	if det == 0 {
		return Identity3()
	}
	invDet := 1.0 / det

	return Mat3{
		(m[4]*m[8] - m[7]*m[5]) * invDet,
		(m[7]*m[2] - m[1]*m[8]) * invDet,
		(m[1]*m[5] - m[4]*m[2]) * invDet,
		(m[6]*m[5] - m[3]*m[8]) * invDet,
		(m[0]*m[8] - m[6]*m[2]) * invDet,
		(m[3]*m[2] - m[0]*m[5]) * invDet,
		(m[3]*m[7] - m[6]*m[4]) * invDet,
		(m[6]*m[1] - m[0]*m[7]) * invDet,
		(m[0]*m[4] - m[3]*m[1]) * invDet,
	}
}

// MulVec3 multiplies the matrix by a Vec3.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// NormalMatrix returns the inverse-transpose of the upper-left 3x3 block,
// which transforms normals correctly under non-uniform scale.
// Returns identity if the block is singular.
func (m Mat4) NormalMatrix() Mat3 {
	return m.Mat3().Transpose().Inverse()
}
