package mathutil

import "math"

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * Deg2RadFactor
}

// DirectionFromAngles returns the unit vector for an azimuth measured in the
// XY plane from +X and an elevation above that plane, both in degrees.
// +Z is up.
func DirectionFromAngles(azimuthDeg, elevationDeg float64) Vector3d {
	r := Mat3Mul(RotZ(Deg2Rad(azimuthDeg)), RotY(-Deg2Rad(elevationDeg)))
	return r.MulVec3(AxisX[float64]())
}
