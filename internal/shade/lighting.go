package shade

import (
	"math"

	"g3vec/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters. Directions point away
// from the surface, in tangent space where +Z is the surface normal.
type LightConfig struct {
	LightDir  mathutil.Vector3d
	RimDir    mathutil.Vector3d
	ViewDir   mathutil.Vector3d
	HalfMain  mathutil.Vector3d // precomputed half-vector for Blinn-Phong
	Albedo    mathutil.Vector3d
	SlopeTint mathutil.Vector3d // blended in on texels steeper than SlopeDeg
	SlopeDeg  float64
	Ambient   float64
	Hemi      float64
	Direct    float64
	Rim       float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64
	InvGamma  float64
}

// DefaultLightConfig returns the standard lighting for a key light at the
// given azimuth and elevation (degrees).
func DefaultLightConfig(azimuthDeg, elevationDeg float64) LightConfig {
	lightDir := mathutil.DirectionFromAngles(azimuthDeg, elevationDeg)
	rimDir := mathutil.DirectionFromAngles(azimuthDeg+150, 20)
	viewDir := mathutil.AxisZ[float64]()

	return LightConfig{
		LightDir:  lightDir,
		RimDir:    rimDir,
		ViewDir:   viewDir,
		HalfMain:  lightDir.Plus(viewDir).Normalized(),
		Albedo:    mathutil.New(0.62, 0.62, 0.66),
		SlopeTint: mathutil.New(0.80, 0.52, 0.30),
		SlopeDeg:  35,
		Ambient:   0.20,
		Hemi:      0.25,
		Direct:    0.90,
		Rim:       0.25,
		SpecInt:   0.30,
		SpecPow:   24.0,
		Exposure:  1.05,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vector3d) float64 {
	// Lambertian
	ndlMain := math.Max(normal.Dot(lc.LightDir), 0)
	ndlRim := math.Max(normal.Dot(lc.RimDir), 0)

	// Hemisphere fill
	hemi := normal.Dot(lc.ViewDir)*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := math.Max(normal.Dot(lc.HalfMain), 0)
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// BaseColor returns the albedo for a unit normal, tinted toward SlopeTint
// as the normal tilts past SlopeDeg from the view axis.
func (lc *LightConfig) BaseColor(normal mathutil.Vector3d) mathutil.Vector3d {
	if lc.SlopeDeg >= 90 {
		return lc.Albedo
	}
	angle := normal.AngleD(lc.ViewDir)
	if angle <= lc.SlopeDeg {
		return lc.Albedo
	}
	t := mathutil.Clamp((angle-lc.SlopeDeg)/(90-lc.SlopeDeg), 0, 1)
	return mathutil.Lerp(lc.Albedo, lc.SlopeTint, t)
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
