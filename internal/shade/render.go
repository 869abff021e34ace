// Package shade lights normal-map fields into preview images.
package shade

import (
	"image"
	"math"

	"g3vec/internal/hostvec"
	"g3vec/internal/mathutil"
	"g3vec/internal/normalmap"
)

// Render shades every texel of f. Zero (degenerate) normals become
// transparent pixels.
func Render(f *normalmap.Field, lc LightConfig) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	zero := mathutil.Zero[float32]()

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			n32 := f.At(x, y)
			if n32 == zero {
				continue
			}
			n := mathutil.Widen(n32)

			c := lc.BaseColor(n).Scale(lc.ComputeShade(n) * lc.Exposure)
			for k := range c {
				c[k] = math.Pow(mathutil.Clamp(ACESTonemap(c[k]), 0, 1), lc.InvGamma)
			}
			img.SetNRGBA(x, y, hostvec.ToNRGBA(mathutil.Narrow(c)))
		}
	}

	return img
}
