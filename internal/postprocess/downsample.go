package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// FitSize returns the dimensions of a w×h image scaled so that its longer
// side is maxSize. Images already within maxSize are returned unchanged.
func FitSize(w, h, maxSize int) (int, int) {
	if w <= maxSize && h <= maxSize {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}

// Downsample shrinks img to fit maxSize with CatmullRom filtering.
// x/image/draw weights NRGBA sources by alpha and unpremultiplies on the
// NRGBA destination, so transparent texels leave no dark fringe.
func Downsample(img *image.NRGBA, maxSize int) *image.NRGBA {
	b := img.Bounds()
	tw, th := FitSize(b.Dx(), b.Dy(), maxSize)
	if tw == b.Dx() && th == b.Dy() {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
