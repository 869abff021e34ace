// Package normalmap converts tangent-space normal-map images to vector
// fields and back.
package normalmap

import (
	"image"
	"image/color"

	"g3vec/internal/mathutil"
)

// Field is a row-major grid of unit normals.
type Field struct {
	Width  int
	Height int
	N      []mathutil.Vector3f
}

// NewField allocates a field of zero vectors.
func NewField(w, h int) *Field {
	return &Field{Width: w, Height: h, N: make([]mathutil.Vector3f, w*h)}
}

// At returns the normal at (x, y). Coordinates outside the field panic.
func (f *Field) At(x, y int) mathutil.Vector3f {
	return f.N[y*f.Width+x]
}

func (f *Field) Set(x, y int, n mathutil.Vector3f) {
	f.N[y*f.Width+x] = n
}

// Decode maps each pixel channel c to c/127.5 - 1 and normalizes the result.
// Texels that decode to (near) zero length stay zero.
func Decode(img *image.NRGBA) *Field {
	b := img.Bounds()
	f := NewField(b.Dx(), b.Dy())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			n := mathutil.Vector3f{
				float32(img.Pix[i])/127.5 - 1,
				float32(img.Pix[i+1])/127.5 - 1,
				float32(img.Pix[i+2])/127.5 - 1,
			}
			n.Normalize()
			f.N[y*f.Width+x] = n
		}
	}
	return f
}

// Encode is the inverse of Decode. Zero normals encode as mid-grey.
func Encode(f *Field) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			n := f.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{channel(n[0]), channel(n[1]), channel(n[2]), 255})
		}
	}
	return img
}

// Renormalize rescales every normal to unit length and returns how many
// were degenerate (and are now zero).
func (f *Field) Renormalize() int {
	degenerate := 0
	for i := range f.N {
		if f.N[i].Normalize() == 0 {
			degenerate++
		}
	}
	return degenerate
}

// Blend returns the per-texel interpolation between a and b, renormalized.
// Both fields must have the same size.
func Blend(a, b *Field, t float32) *Field {
	out := NewField(a.Width, a.Height)
	for i := range out.N {
		out.N[i] = mathutil.Lerp(a.N[i], b.N[i], t).Normalized()
	}
	return out
}

// WithStrength scales how far each normal leans away from flat (+Z).
// 0 gives a flat field, 1 returns the normals unchanged, >1 exaggerates.
// Zero normals stay zero.
func (f *Field) WithStrength(s float32) *Field {
	out := NewField(f.Width, f.Height)
	up := mathutil.AxisZ[float32]()
	zero := mathutil.Zero[float32]()
	for i, n := range f.N {
		if n == zero {
			continue
		}
		out.N[i] = mathutil.Lerp(up, n, s).Normalized()
	}
	return out
}

func channel(c float32) uint8 {
	return uint8(mathutil.Clamp((c+1)*127.5+0.5, 0, 255))
}
