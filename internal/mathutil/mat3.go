package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vector3d) Vector3d {
	return Vector3d{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}
