package mathutil

// Widen converts a single-precision vector to double precision.
// Every float32 is exactly representable as a float64, so this never loses
// information.
func Widen(v Vector3f) Vector3d {
	return Vector3d{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Narrow converts a double-precision vector to single precision, rounding
// each component to the nearest float32.
func Narrow(v Vector3d) Vector3f {
	return Vector3f{float32(v[0]), float32(v[1]), float32(v[2])}
}
